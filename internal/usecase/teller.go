package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/ports"
)

// InvestTarget names the position an investment goes into.
type InvestTarget string

const (
	InvestEquities InvestTarget = "equities"
	InvestFunds    InvestTarget = "funds"
)

var investTargets = map[InvestTarget]func(account.Investing, domain.Money) error{
	InvestEquities: account.Investing.InvestInEquities,
	InvestFunds:    account.Investing.InvestInFunds,
}

// Teller orchestrates account operations against the store. Capability operations
// discover support by type assertion; the processor itself only knows BasicOps.
//
// notifier and reports may be nil; their failures are logged, never returned.
type Teller struct {
	catalog   *account.Catalog
	store     ports.AccountStore
	notifier  ports.Notifier
	reports   ports.ReportGenerator
	processor *Processor
	log       *slog.Logger

	locks keyedLocks
}

type TellerOption func(*Teller)

func WithLogger(l *slog.Logger) TellerOption {
	return func(t *Teller) {
		if l != nil {
			t.log = l
		}
	}
}

func WithProcessor(p *Processor) TellerOption {
	return func(t *Teller) {
		if p != nil {
			t.processor = p
		}
	}
}

func NewTeller(catalog *account.Catalog, store ports.AccountStore, n ports.Notifier, rg ports.ReportGenerator, opts ...TellerOption) *Teller {
	t := &Teller{
		catalog:   catalog,
		store:     store,
		notifier:  n,
		reports:   rg,
		processor: NewProcessor(),
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Teller) Open(ctx context.Context, kind, holder string) (account.Account, error) {
	acc, err := t.catalog.Open(kind, holder)
	if err != nil {
		return nil, err
	}
	if err := t.store.Save(ctx, acc); err != nil {
		return nil, err
	}

	t.log.Info("teller.open.ok", "id", acc.ID(), "kind", acc.Kind(), "holder", acc.Holder())
	t.afterCommit(ctx, acc, fmt.Sprintf("your %s account %s is open", acc.Kind(), acc.ID()))
	return acc, nil
}

func (t *Teller) Get(ctx context.Context, id uuid.UUID) (account.Account, error) {
	return t.store.Load(ctx, id)
}

func (t *Teller) List(ctx context.Context) ([]account.Account, error) {
	return t.store.List(ctx)
}

func (t *Teller) Deposit(ctx context.Context, id uuid.UUID, amount domain.Money) (Transaction, error) {
	return t.transact(ctx, id, amount, t.processor.ProcessDeposit)
}

func (t *Teller) Withdraw(ctx context.Context, id uuid.UUID, amount domain.Money) (Transaction, error) {
	return t.transact(ctx, id, amount, t.processor.ProcessWithdraw)
}

func (t *Teller) transact(
	ctx context.Context,
	id uuid.UUID,
	amount domain.Money,
	process func(account.BasicOps, domain.Money) (Transaction, error),
) (Transaction, error) {
	unlock := t.locks.lock(id)
	defer unlock()

	acc, err := t.store.Load(ctx, id)
	if err != nil {
		return Transaction{}, err
	}

	tx, err := process(acc, amount)
	if err != nil {
		t.log.Info("teller.tx.rejected", "id", tx.ID, "type", tx.Type, "account", id, "reason", tx.Reason)
		return tx, err
	}
	if err := t.store.Save(ctx, acc); err != nil {
		return tx, err
	}

	t.log.Info("teller.tx.applied", "id", tx.ID, "type", tx.Type, "account", id, "amount", tx.Amount)
	t.afterCommit(ctx, acc, fmt.Sprintf("%s of %s applied; balance %s", tx.Type, tx.Amount, tx.BalanceAfter))
	return tx, nil
}

// Invest moves amount from the balance into the target position.
func (t *Teller) Invest(ctx context.Context, id uuid.UUID, target InvestTarget, amount domain.Money) (account.Account, error) {
	invest, ok := investTargets[target]
	if !ok {
		return nil, domain.NewDomainError(domain.KindInvalidInput, "unknown investment target %q", target)
	}

	return t.mutate(ctx, id, func(acc account.Account) (string, error) {
		inv, ok := acc.(account.Investing)
		if !ok {
			return "", unsupported(acc, account.CapInvesting)
		}
		if err := invest(inv, amount); err != nil {
			return "", err
		}
		return fmt.Sprintf("invested %s in %s; yield %s", amount, target, inv.CurrentYield()), nil
	})
}

func (t *Teller) RequestLoan(ctx context.Context, id uuid.UUID, amount domain.Money) (account.Account, error) {
	return t.mutate(ctx, id, func(acc account.Account) (string, error) {
		l, ok := acc.(account.Lending)
		if !ok {
			return "", unsupported(acc, account.CapLending)
		}
		if err := l.RequestLoan(amount); err != nil {
			return "", err
		}
		return fmt.Sprintf("loan of %s granted; balance %s", amount, acc.Balance()), nil
	})
}

// AccrueBonus credits one due bonus period and returns the amount credited.
func (t *Teller) AccrueBonus(ctx context.Context, id uuid.UUID) (domain.Money, account.Account, error) {
	bonus := domain.Zero
	acc, err := t.mutate(ctx, id, func(acc account.Account) (string, error) {
		sb, ok := acc.(account.SavingsBonus)
		if !ok {
			return "", unsupported(acc, account.CapSavingsBonus)
		}
		b, err := sb.AccrueBonus()
		if err != nil {
			return "", err
		}
		bonus = b
		return fmt.Sprintf("bonus of %s credited; next on %s", b, sb.NextBonusDate().Format("2006-01-02")), nil
	})
	return bonus, acc, err
}

func (t *Teller) mutate(ctx context.Context, id uuid.UUID, apply func(account.Account) (string, error)) (account.Account, error) {
	unlock := t.locks.lock(id)
	defer unlock()

	acc, err := t.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	msg, err := apply(acc)
	if err != nil {
		return nil, err
	}
	if err := t.store.Save(ctx, acc); err != nil {
		return nil, err
	}

	t.log.Info("teller.update.ok", "id", id, "event", msg)
	t.afterCommit(ctx, acc, msg)
	return acc, nil
}

func (t *Teller) afterCommit(ctx context.Context, acc account.Account, msg string) {
	if t.notifier != nil {
		if err := t.notifier.Send(ctx, acc.Holder(), msg); err != nil {
			t.log.Warn("teller.notify.failed", "account", acc.ID(), "err", err)
		}
	}
	if t.reports != nil {
		if _, err := t.reports.Generate(ctx, acc); err != nil {
			t.log.Warn("teller.report.failed", "account", acc.ID(), "err", err)
		}
	}
}

func unsupported(acc account.Account, c account.Capability) error {
	return domain.NewDomainError(domain.KindUnsupportedCapability,
		"%s account does not offer %s", acc.Kind(), c)
}

// keyedLocks serializes load-mutate-save per account id.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (k *keyedLocks) lock(id uuid.UUID) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = map[uuid.UUID]*sync.Mutex{}
	}
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
