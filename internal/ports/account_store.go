package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/account"
)

// AccountStore persists accounts between commands.
type AccountStore interface {
	Load(ctx context.Context, id uuid.UUID) (account.Account, error)
	Save(ctx context.Context, acc account.Account) error
	List(ctx context.Context) ([]account.Account, error)
}
