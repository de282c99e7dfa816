// Package payment contains the payment methods and the processor that dispatches
// to them by name.
package payment

import (
	"iter"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/strategy"
)

// Method settles an amount. Process has no side effects and returns the
// acknowledged amount. DisplayName is the registry key.
type Method interface {
	Process(amount domain.Money) domain.Money
	DisplayName() string
}

type PayPal struct{}

func (PayPal) Process(amount domain.Money) domain.Money { return amount }
func (PayPal) DisplayName() string { return "PayPal" }

type PicPay struct{}

func (PicPay) Process(amount domain.Money) domain.Money { return amount }
func (PicPay) DisplayName() string { return "PicPay" }

type CreditCard struct{}

func (CreditCard) Process(amount domain.Money) domain.Money { return amount }
func (CreditCard) DisplayName() string { return "Cartão de Crédito" }

type PIX struct{}

func (PIX) Process(amount domain.Money) domain.Money { return amount }
func (PIX) DisplayName() string { return "PIX" }

// Defaults returns the shipped methods in registration order.
func Defaults() []Method {
	return []Method{PayPal{}, PicPay{}, CreditCard{}, PIX{}}
}

// NewRegistry registers each method under its DisplayName.
func NewRegistry(methods ...Method) (*strategy.Registry[Method], error) {
	reg := strategy.New[Method]("payment method")
	for _, m := range methods {
		if err := reg.Register(m.DisplayName(), m); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Payment is the acknowledgment of a processed payment.
type Payment struct {
	ID     uuid.UUID
	Method string
	Amount domain.Money
}

// Processor pays through whichever method the injected registry resolves.
type Processor struct {
	methods *strategy.Registry[Method]
	newID   func() uuid.UUID
}

type Option func(*Processor)

// WithIDs overrides payment id generation (useful for tests).
func WithIDs(gen func() uuid.UUID) Option {
	return func(p *Processor) { p.newID = gen }
}

func NewProcessor(methods *strategy.Registry[Method], opts ...Option) *Processor {
	p := &Processor{methods: methods, newID: uuid.New}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pay validates the amount, resolves methodName and processes the payment.
func (p *Processor) Pay(amount domain.Money, methodName string) (Payment, error) {
	if !amount.IsPositive() {
		return Payment{}, domain.NewDomainError(domain.KindInvalidAmount, "payment amount %s must be positive", amount)
	}

	m, err := p.methods.Resolve(methodName)
	if err != nil {
		return Payment{}, err
	}

	return Payment{
		ID:     p.newID(),
		Method: m.DisplayName(),
		Amount: m.Process(amount),
	}, nil
}

// Methods yields the available methods in registration order.
func (p *Processor) Methods() iter.Seq[Method] {
	return p.methods.List()
}
