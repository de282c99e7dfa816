// Package discount contains the customer discount tiers.
//
// Each tier is its own type; a new tier is a new type (or a configured Percent)
// registered at the composition root.
package discount

import (
	"github.com/shopspring/decimal"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/strategy"
)

// Strategy computes the discount granted on an amount.
type Strategy interface {
	Discount(amount domain.Money) domain.Money
}

// Registry resolves discount strategies by tier name.
type Registry = strategy.Registry[Strategy]

var hundred = decimal.NewFromInt(100)

func percentOf(amount domain.Money, pct int64) domain.Money {
	return amount.MulRate(decimal.NewFromInt(pct).Div(hundred))
}

// Regular grants 2%.
type Regular struct{}

func (Regular) Discount(amount domain.Money) domain.Money { return percentOf(amount, 2) }

// Premium grants 5%.
type Premium struct{}

func (Premium) Discount(amount domain.Money) domain.Money { return percentOf(amount, 5) }

// VIP grants 10%.
type VIP struct{}

func (VIP) Discount(amount domain.Money) domain.Money { return percentOf(amount, 10) }

// Business grants 15% to corporate ("Empresarial") customers.
type Business struct{}

func (Business) Discount(amount domain.Money) domain.Money { return percentOf(amount, 15) }

// Percent is a tier declared in configuration. Rate is a percentage, 12.5 for 12.5%.
type Percent struct {
	Rate domain.Money
}

func (p Percent) Discount(amount domain.Money) domain.Money {
	return amount.MulRate(p.Rate.Decimal().Div(hundred))
}

// Named pairs a strategy with the name it is registered under.
type Named struct {
	Name     string
	Strategy Strategy
}

// Defaults returns the shipped tiers in registration order.
func Defaults() []Named {
	return []Named{
		{Name: "Regular", Strategy: Regular{}},
		{Name: "Premium", Strategy: Premium{}},
		{Name: "VIP", Strategy: VIP{}},
		{Name: "Empresarial", Strategy: Business{}},
	}
}

// NewRegistry registers tiers in order; the first duplicate name aborts.
func NewRegistry(tiers ...Named) (*Registry, error) {
	reg := strategy.New[Strategy]("discount")
	for _, t := range tiers {
		if err := reg.Register(t.Name, t.Strategy); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// FromConfig turns configured tiers into Percent strategies.
func FromConfig(tiers []domain.DiscountTier) ([]Named, error) {
	out := make([]Named, 0, len(tiers))
	for _, t := range tiers {
		if t.Percent.IsNegative() || t.Percent.GreaterThan(domain.MoneyFromInt(100)) {
			return nil, domain.NewDomainError(domain.KindInvalidInput,
				"discount %q: percent %s must be between 0 and 100", t.Name, t.Percent)
		}
		out = append(out, Named{Name: t.Name, Strategy: Percent{Rate: t.Percent}})
	}
	return out, nil
}

// FinalPrice returns amount minus the discount s grants on it.
func FinalPrice(amount domain.Money, s Strategy) domain.Money {
	return amount.Sub(s.Discount(amount))
}
