package account

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/domain"
)

// Base carries identity and balance and implements BasicOps. The mutex guards the
// balance and the state of every capability component attached to the account.
type Base struct {
	id       uuid.UUID
	holder   string
	openedAt time.Time

	mu      sync.Mutex
	balance domain.Money
}

func newBase(s Snapshot) *Base {
	return &Base{
		id:       s.ID,
		holder:   s.Holder,
		openedAt: s.OpenedAt,
		balance:  s.Balance,
	}
}

func (b *Base) ID() uuid.UUID { return b.id }
func (b *Base) Holder() string { return b.holder }
func (b *Base) OpenedAt() time.Time { return b.openedAt }

func (b *Base) Balance() domain.Money {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balance
}

func (b *Base) CanWithdraw(amount domain.Money) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return canWithdraw(b.balance, amount)
}

func (b *Base) Withdraw(amount domain.Money) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.debitLocked("withdraw", amount)
}

func (b *Base) Deposit(amount domain.Money) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.creditLocked("deposit", amount)
}

func canWithdraw(balance, amount domain.Money) bool {
	return amount.IsPositive() && amount.LessOrEqual(balance)
}

func (b *Base) debitLocked(op string, amount domain.Money) error {
	if !amount.IsPositive() {
		return invalidAmount(op, amount)
	}
	if !canWithdraw(b.balance, amount) {
		return domain.NewDomainError(domain.KindInsufficientFunds,
			"%s %s: balance is %s", op, amount, b.balance)
	}
	b.balance = b.balance.Sub(amount)
	return nil
}

func (b *Base) creditLocked(op string, amount domain.Money) error {
	if !amount.IsPositive() {
		return invalidAmount(op, amount)
	}
	b.balance = b.balance.Add(amount)
	return nil
}

// snapshot reads the base fields and lets each component add its state, all under
// one lock acquisition.
func (b *Base) snapshot(kind Kind, caps Capabilities, parts ...func(*Snapshot)) Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Snapshot{
		ID:           b.id,
		Kind:         kind,
		Holder:       b.holder,
		Balance:      b.balance,
		OpenedAt:     b.openedAt,
		Capabilities: append(Capabilities(nil), caps...),
	}
	for _, fill := range parts {
		fill(&s)
	}
	return s
}

func invalidAmount(op string, amount domain.Money) error {
	return domain.NewDomainError(domain.KindInvalidAmount, "%s %s: amount must be positive", op, amount)
}
