package usecase

import (
	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/domain"
)

type TxType string

const (
	TxDeposit  TxType = "deposit"
	TxWithdraw TxType = "withdraw"
)

// TxState is a step of the transaction lifecycle:
// requested -> validated -> applied, or requested -> validated -> rejected.
type TxState string

const (
	TxRequested TxState = "requested"
	TxValidated TxState = "validated"
	TxApplied   TxState = "applied"
	TxRejected  TxState = "rejected"
)

// Transaction is the outcome of one processed operation. It is not persisted.
type Transaction struct {
	ID           uuid.UUID    `json:"id"`
	Type         TxType       `json:"type"`
	AccountID    uuid.UUID    `json:"account_id"`
	Amount       domain.Money `json:"amount"`
	State        TxState      `json:"state"`
	Trail        []TxState    `json:"trail"`
	Reason       string       `json:"reason,omitempty"`
	BalanceAfter domain.Money `json:"balance_after"`
}

func (tx *Transaction) moveTo(s TxState) {
	tx.State = s
	tx.Trail = append(tx.Trail, s)
}

// Processor runs deposits and withdrawals against the base account contract.
// It works the same for every account variant.
type Processor struct {
	newID func() uuid.UUID
}

type ProcessorOption func(*Processor)

// WithTxIDs overrides transaction id generation (useful for tests).
func WithTxIDs(gen func() uuid.UUID) ProcessorOption {
	return func(p *Processor) { p.newID = gen }
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{newID: uuid.New}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Processor) ProcessWithdraw(acc account.BasicOps, amount domain.Money) (Transaction, error) {
	tx := p.request(TxWithdraw, acc, amount)

	var err error
	switch {
	case !amount.IsPositive():
		err = domain.NewDomainError(domain.KindInvalidAmount, "withdraw %s: amount must be positive", amount)
	case !acc.CanWithdraw(amount):
		err = domain.NewDomainError(domain.KindInsufficientFunds, "withdraw %s: balance is %s", amount, acc.Balance())
	}

	tx.moveTo(TxValidated)
	if err == nil {
		err = acc.Withdraw(amount)
	}
	return p.finish(tx, acc, err)
}

func (p *Processor) ProcessDeposit(acc account.BasicOps, amount domain.Money) (Transaction, error) {
	tx := p.request(TxDeposit, acc, amount)

	var err error
	if !amount.IsPositive() {
		err = domain.NewDomainError(domain.KindInvalidAmount, "deposit %s: amount must be positive", amount)
	}

	tx.moveTo(TxValidated)
	if err == nil {
		err = acc.Deposit(amount)
	}
	return p.finish(tx, acc, err)
}

func (p *Processor) request(typ TxType, acc account.BasicOps, amount domain.Money) Transaction {
	tx := Transaction{
		ID:        p.newID(),
		Type:      typ,
		AccountID: acc.ID(),
		Amount:    amount,
	}
	tx.moveTo(TxRequested)
	return tx
}

func (p *Processor) finish(tx Transaction, acc account.BasicOps, err error) (Transaction, error) {
	if err != nil {
		tx.moveTo(TxRejected)
		tx.Reason = err.Error()
		tx.BalanceAfter = acc.Balance()
		return tx, err
	}
	tx.moveTo(TxApplied)
	tx.BalanceAfter = acc.Balance()
	return tx, nil
}
