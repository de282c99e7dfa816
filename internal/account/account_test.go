package account

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/bankcore/internal/domain"
)

var opened = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func withBalance(balance domain.Money) Snapshot {
	return Snapshot{ID: uuid.New(), Holder: "João Silva", Balance: balance, OpenedAt: opened}
}

// every variant, built with the same starting balance
func variants(balance domain.Money) map[Kind]Account {
	now := fixedClock(opened)
	return map[Kind]Account{
		KindChecking:   NewChecking(withBalance(balance)),
		KindSavings:    NewSavings(withBalance(balance), now),
		KindInvestment: NewInvestment(withBalance(balance)),
		KindFull:       NewFull(withBalance(balance), now),
	}
}

func TestSubstitutability_WithdrawDependsOnlyOnAmountAndBalance(t *testing.T) {
	balances := []string{"0", "0.01", "500", "1000"}
	amounts := []string{"-10", "0", "0.01", "499.99", "500", "500.01", "1000", "1000.01"}

	for _, b := range balances {
		for _, a := range amounts {
			balance := domain.MustParseMoney(b)
			amount := domain.MustParseMoney(a)
			allowed := amount.IsPositive() && amount.LessOrEqual(balance)

			for kind, acc := range variants(balance) {
				assert.Equal(t, allowed, acc.CanWithdraw(amount), "%s can withdraw %s from %s", kind, a, b)

				err := acc.Withdraw(amount)
				assert.Equal(t, allowed, err == nil, "%s withdraw %s from %s: %v", kind, a, b, err)
				if allowed {
					assert.True(t, balance.Sub(amount).Equal(acc.Balance()), kind)
				} else {
					assert.True(t, balance.Equal(acc.Balance()), "%s balance must be untouched", kind)
				}
			}
		}
	}
}

func TestWithdraw_Scenario(t *testing.T) {
	for kind, acc := range variants(domain.MoneyFromInt(1000)) {
		require.NoError(t, acc.Withdraw(domain.MoneyFromInt(500)), kind)
		assert.Equal(t, "500.00", acc.Balance().String(), kind)

		err := acc.Withdraw(domain.MoneyFromInt(600))
		assert.True(t, domain.IsKind(err, domain.KindInsufficientFunds), kind)
		assert.Equal(t, "500.00", acc.Balance().String(), kind)
	}
}

func TestDeposit_RejectsNonPositive(t *testing.T) {
	for kind, acc := range variants(domain.MoneyFromInt(500)) {
		err := acc.Deposit(domain.MustParseMoney("-10"))
		assert.True(t, domain.IsKind(err, domain.KindInvalidAmount), kind)
		err = acc.Deposit(domain.Zero)
		assert.True(t, domain.IsKind(err, domain.KindInvalidAmount), kind)
		assert.Equal(t, "500.00", acc.Balance().String(), kind)

		require.NoError(t, acc.Deposit(domain.MustParseMoney("0.50")), kind)
		assert.Equal(t, "500.50", acc.Balance().String(), kind)
	}
}

func TestWithdraw_InvalidAmountClassification(t *testing.T) {
	for kind, acc := range variants(domain.MoneyFromInt(100)) {
		err := acc.Withdraw(domain.MustParseMoney("-1"))
		assert.True(t, domain.IsKind(err, domain.KindInvalidAmount), kind)
	}
}

func TestBalanceNeverNegative_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for kind, acc := range variants(domain.Zero) {
		for i := 0; i < 500; i++ {
			amount := domain.NewMoney(int64(rng.Intn(200)-20), int64(rng.Intn(100)))
			if rng.Intn(2) == 0 {
				_ = acc.Deposit(amount)
			} else {
				_ = acc.Withdraw(amount)
			}
			require.False(t, acc.Balance().IsNegative(), "%s went negative at step %d", kind, i)
		}
	}
}

func TestConcurrentWithdrawsNeverOverdraw(t *testing.T) {
	acc := NewChecking(withBalance(domain.MoneyFromInt(100)))

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if acc.Withdraw(domain.MoneyFromInt(10)) == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, ok)
	assert.True(t, acc.Balance().IsZero())
}

func TestCapabilitiesAreStatic(t *testing.T) {
	want := map[Kind]string{
		KindChecking:   "basic+lending",
		KindSavings:    "basic+savings_bonus",
		KindInvestment: "basic+investing",
		KindFull:       "basic+investing+lending+savings_bonus",
	}
	for kind, acc := range variants(domain.Zero) {
		assert.Equal(t, kind, acc.Kind())
		assert.Equal(t, want[kind], acc.Capabilities().String(), kind)
	}
}

func TestCapabilityInterfacesMatchTags(t *testing.T) {
	for kind, acc := range variants(domain.Zero) {
		caps := acc.Capabilities()

		_, investing := acc.(Investing)
		_, lending := acc.(Lending)
		_, bonus := acc.(SavingsBonus)

		assert.Equal(t, caps.Has(CapInvesting), investing, kind)
		assert.Equal(t, caps.Has(CapLending), lending, kind)
		assert.Equal(t, caps.Has(CapSavingsBonus), bonus, kind)
	}
}
