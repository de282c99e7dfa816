package account

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/bankcore/internal/domain"
)

var (
	yieldRate = decimal.RequireFromString("0.10")
	bonusRate = decimal.RequireFromString("0.005")
)

// creditLine implements Lending. State is guarded by base.mu.
type creditLine struct {
	base        *Base
	limit       domain.Money
	outstanding domain.Money
}

func newCreditLine(b *Base, limit domain.Money, s *LoanState) *creditLine {
	c := &creditLine{base: b, limit: limit}
	if s != nil {
		c.outstanding = s.Outstanding
	}
	return c
}

// RequestLoan credits amount to the balance when the outstanding principal stays
// within the limit.
func (c *creditLine) RequestLoan(amount domain.Money) error {
	c.base.mu.Lock()
	defer c.base.mu.Unlock()

	if !amount.IsPositive() {
		return invalidAmount("loan", amount)
	}
	if c.outstanding.Add(amount).GreaterThan(c.limit) {
		return domain.NewDomainError(domain.KindLoanLimitExceeded,
			"loan %s: outstanding %s, limit %s", amount, c.outstanding, c.limit)
	}
	if err := c.base.creditLocked("loan", amount); err != nil {
		return err
	}
	c.outstanding = c.outstanding.Add(amount)
	return nil
}

func (c *creditLine) LoanLimit() domain.Money { return c.limit }

func (c *creditLine) fill(s *Snapshot) {
	s.Loan = &LoanState{Limit: c.limit, Outstanding: c.outstanding}
}

// portfolio implements Investing. State is guarded by base.mu.
type portfolio struct {
	base     *Base
	equities domain.Money
	funds    domain.Money
}

func newPortfolio(b *Base, s *PortfolioState) *portfolio {
	p := &portfolio{base: b}
	if s != nil {
		p.equities = s.Equities
		p.funds = s.Funds
	}
	return p
}

func (p *portfolio) InvestInEquities(amount domain.Money) error {
	return p.invest("invest.equities", amount, &p.equities)
}

func (p *portfolio) InvestInFunds(amount domain.Money) error {
	return p.invest("invest.funds", amount, &p.funds)
}

func (p *portfolio) invest(op string, amount domain.Money, position *domain.Money) error {
	p.base.mu.Lock()
	defer p.base.mu.Unlock()

	if err := p.base.debitLocked(op, amount); err != nil {
		return err
	}
	*position = position.Add(amount)
	return nil
}

// CurrentYield is 10% of the invested total.
func (p *portfolio) CurrentYield() domain.Money {
	p.base.mu.Lock()
	defer p.base.mu.Unlock()
	return p.yieldLocked()
}

func (p *portfolio) yieldLocked() domain.Money {
	return p.equities.Add(p.funds).MulRate(yieldRate)
}

func (p *portfolio) fill(s *Snapshot) {
	s.Portfolio = &PortfolioState{Equities: p.equities, Funds: p.funds, Yield: p.yieldLocked()}
}

// bonusSchedule implements SavingsBonus. The bonus falls due monthly, counted from
// the opening date.
type bonusSchedule struct {
	base *Base
	now  func() time.Time
	last time.Time
}

func newBonusSchedule(b *Base, now func() time.Time, s *BonusState) *bonusSchedule {
	bs := &bonusSchedule{base: b, now: now, last: b.openedAt}
	if s != nil && !s.LastAccrual.IsZero() {
		bs.last = s.LastAccrual
	}
	return bs
}

// AccrueBonus credits one period's bonus (0.5% of the balance) once the bonus date
// has been reached. Missed periods are accrued one call at a time.
func (bs *bonusSchedule) AccrueBonus() (domain.Money, error) {
	bs.base.mu.Lock()
	defer bs.base.mu.Unlock()

	due := bs.nextLocked()
	if bs.now().Before(due) {
		return domain.Zero, domain.NewDomainError(domain.KindBonusNotDue,
			"next bonus date is %s", due.Format(time.DateOnly))
	}

	bonus := bs.base.balance.MulRate(bonusRate)
	bs.base.balance = bs.base.balance.Add(bonus)
	bs.last = due
	return bonus, nil
}

func (bs *bonusSchedule) NextBonusDate() time.Time {
	bs.base.mu.Lock()
	defer bs.base.mu.Unlock()
	return bs.nextLocked()
}

func (bs *bonusSchedule) nextLocked() time.Time {
	return bs.last.AddDate(0, 1, 0)
}

func (bs *bonusSchedule) fill(s *Snapshot) {
	s.Bonus = &BonusState{LastAccrual: bs.last, NextDate: bs.nextLocked()}
}
