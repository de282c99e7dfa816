package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/domain"
)

func fixedClock() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) }

func openAll(t *testing.T, balance domain.Money) []account.Account {
	t.Helper()
	cat := account.DefaultCatalog(account.WithClock(fixedClock))

	var out []account.Account
	for _, kind := range cat.Kinds() {
		acc, err := cat.Open(kind, "Ana")
		require.NoError(t, err)
		if balance.IsPositive() {
			require.NoError(t, acc.Deposit(balance))
		}
		out = append(out, acc)
	}
	return out
}

func TestProcessWithdraw_SameOutcomeForEveryVariant(t *testing.T) {
	p := NewProcessor()

	for _, acc := range openAll(t, domain.MoneyFromInt(1000)) {
		tx, err := p.ProcessWithdraw(acc, domain.MoneyFromInt(500))
		require.NoError(t, err, acc.Kind())
		assert.Equal(t, TxApplied, tx.State)
		assert.Equal(t, []TxState{TxRequested, TxValidated, TxApplied}, tx.Trail)
		assert.Equal(t, "500.00", tx.BalanceAfter.String())

		tx, err = p.ProcessWithdraw(acc, domain.MoneyFromInt(600))
		require.Error(t, err, acc.Kind())
		assert.True(t, domain.IsKind(err, domain.KindInsufficientFunds))
		assert.Equal(t, TxRejected, tx.State)
		assert.Equal(t, []TxState{TxRequested, TxValidated, TxRejected}, tx.Trail)
		assert.NotEmpty(t, tx.Reason)
		assert.Equal(t, "500.00", acc.Balance().String(), "rejected withdraw must not touch the balance")
	}
}

func TestProcessDeposit_RejectsNonPositive(t *testing.T) {
	p := NewProcessor()

	for _, acc := range openAll(t, domain.Zero) {
		for _, amount := range []domain.Money{domain.MoneyFromInt(-10), domain.Zero} {
			tx, err := p.ProcessDeposit(acc, amount)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindInvalidAmount))
			assert.Equal(t, TxRejected, tx.State)
			assert.True(t, acc.Balance().IsZero())
		}
	}
}

func TestProcessWithdraw_NonPositiveIsInvalidAmount(t *testing.T) {
	acc := openAll(t, domain.MoneyFromInt(10))[0]

	_, err := NewProcessor().ProcessWithdraw(acc, domain.MoneyFromInt(-1))
	assert.True(t, domain.IsKind(err, domain.KindInvalidAmount))
	assert.Equal(t, "10.00", acc.Balance().String())
}

func TestProcessor_TransactionFields(t *testing.T) {
	id := uuid.MustParse("7b0c3c8e-3c4f-4c34-9f0d-0a9a3c8b7d11")
	p := NewProcessor(WithTxIDs(func() uuid.UUID { return id }))
	acc := openAll(t, domain.Zero)[0]

	tx, err := p.ProcessDeposit(acc, domain.NewMoney(12, 34))
	require.NoError(t, err)

	assert.Equal(t, id, tx.ID)
	assert.Equal(t, TxDeposit, tx.Type)
	assert.Equal(t, acc.ID(), tx.AccountID)
	assert.Equal(t, "12.34", tx.Amount.String())
	assert.Equal(t, "12.34", tx.BalanceAfter.String())
	assert.Empty(t, tx.Reason)
}
