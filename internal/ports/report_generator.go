package ports

import (
	"context"

	"github.com/aalvaropc/bankcore/internal/account"
)

// ReportGenerator renders an account statement and returns where it went.
type ReportGenerator interface {
	Generate(ctx context.Context, acc account.Account) (string, error)
}
