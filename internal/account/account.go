// Package account implements the account variants as compositions of one shared
// base contract and zero or more capability interfaces.
//
// Every variant embeds *Base, so CanWithdraw, Withdraw and Deposit behave the same for
// all of them. A capability a variant does not offer is simply absent from its
// method set.
package account

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/domain"
)

// BasicOps is the contract every account honors.
type BasicOps interface {
	ID() uuid.UUID
	Holder() string
	Balance() domain.Money

	// CanWithdraw reports amount > 0 && amount <= balance.
	CanWithdraw(amount domain.Money) bool
	Withdraw(amount domain.Money) error
	Deposit(amount domain.Money) error
}

// Investing moves cash into invested positions.
type Investing interface {
	InvestInEquities(amount domain.Money) error
	InvestInFunds(amount domain.Money) error
	CurrentYield() domain.Money
}

// Lending grants loans up to a limit.
type Lending interface {
	RequestLoan(amount domain.Money) error
	LoanLimit() domain.Money
}

// SavingsBonus pays a periodic bonus on the balance.
type SavingsBonus interface {
	AccrueBonus() (domain.Money, error)
	NextBonusDate() time.Time
}

// Account is what the catalog builds and the store persists.
type Account interface {
	BasicOps
	Kind() Kind
	Capabilities() Capabilities
	OpenedAt() time.Time
	Snapshot() Snapshot
}

// Kind identifies an account variant. It is the catalog key.
type Kind string

const (
	KindChecking   Kind = "checking"
	KindSavings    Kind = "savings"
	KindInvestment Kind = "investment"
	KindFull       Kind = "full"
)

// Capability tags an interface a variant composes.
type Capability string

const (
	CapBasic        Capability = "basic"
	CapInvesting    Capability = "investing"
	CapLending      Capability = "lending"
	CapSavingsBonus Capability = "savings_bonus"
)

// Capabilities is the static capability set of a variant.
type Capabilities []Capability

func (c Capabilities) Has(want Capability) bool {
	for _, have := range c {
		if have == want {
			return true
		}
	}
	return false
}

func (c Capabilities) String() string {
	parts := make([]string, len(c))
	for i, tag := range c {
		parts[i] = string(tag)
	}
	return strings.Join(parts, "+")
}
