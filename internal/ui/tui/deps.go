package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/ports"
	"github.com/aalvaropc/bankcore/internal/strategy/discount"
	"github.com/aalvaropc/bankcore/internal/strategy/payment"
)

// AccountLister is the read side the dashboard needs.
type AccountLister interface {
	List(ctx context.Context) ([]account.Account, error)
}

// Deps is filled by the CLI. Accounts is nil when no workspace was found.
type Deps struct {
	WorkspaceRoot string
	Accounts      AccountLister
	Discounts     *discount.Registry
	Payments      *payment.Processor

	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
