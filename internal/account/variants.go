package account

import (
	"time"

	"github.com/aalvaropc/bankcore/internal/domain"
)

var (
	checkingLoanLimit = domain.MoneyFromInt(10000)
	fullLoanLimit     = domain.MoneyFromInt(50000)
)

// loanLimits is what a stored LoanState.Limit must match for the shipped kinds.
var loanLimits = map[Kind]domain.Money{
	KindChecking: checkingLoanLimit,
	KindFull:     fullLoanLimit,
}

// Checking composes Basic and Lending.
type Checking struct {
	*Base
	*creditLine
}

func NewChecking(s Snapshot) *Checking {
	b := newBase(s)
	return &Checking{Base: b, creditLine: newCreditLine(b, checkingLoanLimit, s.Loan)}
}

func (*Checking) Kind() Kind { return KindChecking }

func (*Checking) Capabilities() Capabilities {
	return Capabilities{CapBasic, CapLending}
}

func (c *Checking) Snapshot() Snapshot {
	return c.Base.snapshot(c.Kind(), c.Capabilities(), c.creditLine.fill)
}

// Savings composes Basic and SavingsBonus.
type Savings struct {
	*Base
	*bonusSchedule
}

func NewSavings(s Snapshot, now func() time.Time) *Savings {
	b := newBase(s)
	return &Savings{Base: b, bonusSchedule: newBonusSchedule(b, now, s.Bonus)}
}

func (*Savings) Kind() Kind { return KindSavings }

func (*Savings) Capabilities() Capabilities {
	return Capabilities{CapBasic, CapSavingsBonus}
}

func (s *Savings) Snapshot() Snapshot {
	return s.Base.snapshot(s.Kind(), s.Capabilities(), s.bonusSchedule.fill)
}

// Investment composes Basic and Investing.
type Investment struct {
	*Base
	*portfolio
}

func NewInvestment(s Snapshot) *Investment {
	b := newBase(s)
	return &Investment{Base: b, portfolio: newPortfolio(b, s.Portfolio)}
}

func (*Investment) Kind() Kind { return KindInvestment }

func (*Investment) Capabilities() Capabilities {
	return Capabilities{CapBasic, CapInvesting}
}

func (i *Investment) Snapshot() Snapshot {
	return i.Base.snapshot(i.Kind(), i.Capabilities(), i.portfolio.fill)
}

// Full composes every capability.
type Full struct {
	*Base
	*creditLine
	*portfolio
	*bonusSchedule
}

func NewFull(s Snapshot, now func() time.Time) *Full {
	b := newBase(s)
	return &Full{
		Base:          b,
		creditLine:    newCreditLine(b, fullLoanLimit, s.Loan),
		portfolio:     newPortfolio(b, s.Portfolio),
		bonusSchedule: newBonusSchedule(b, now, s.Bonus),
	}
}

func (*Full) Kind() Kind { return KindFull }

func (*Full) Capabilities() Capabilities {
	return Capabilities{CapBasic, CapInvesting, CapLending, CapSavingsBonus}
}

func (f *Full) Snapshot() Snapshot {
	return f.Base.snapshot(f.Kind(), f.Capabilities(),
		f.creditLine.fill, f.portfolio.fill, f.bonusSchedule.fill)
}

var (
	_ Account = (*Checking)(nil)
	_ Lending = (*Checking)(nil)

	_ Account      = (*Savings)(nil)
	_ SavingsBonus = (*Savings)(nil)

	_ Account   = (*Investment)(nil)
	_ Investing = (*Investment)(nil)

	_ Account      = (*Full)(nil)
	_ Investing    = (*Full)(nil)
	_ Lending      = (*Full)(nil)
	_ SavingsBonus = (*Full)(nil)
)
