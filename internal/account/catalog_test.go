package account

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/bankcore/internal/domain"
)

func testCatalog() *Catalog {
	id := uuid.MustParse("0b6f3c84-8a51-4a39-a0e4-7d1c1b2f5e90")
	return DefaultCatalog(
		WithClock(fixedClock(opened.Add(500*time.Millisecond))),
		WithIDs(func() uuid.UUID { return id }),
	)
}

func TestCatalog_OpenEveryKind(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, []string{"checking", "savings", "investment", "full"}, c.Kinds())

	for _, kind := range c.Kinds() {
		acc, err := c.Open(kind, "  Maria  ")
		require.NoError(t, err, kind)
		assert.Equal(t, Kind(kind), acc.Kind())
		assert.Equal(t, "Maria", acc.Holder())
		assert.True(t, acc.Balance().IsZero())
		assert.Equal(t, opened, acc.OpenedAt())
		assert.Equal(t, "0b6f3c84-8a51-4a39-a0e4-7d1c1b2f5e90", acc.ID().String())
	}
}

func TestCatalog_OpenIsCaseInsensitive(t *testing.T) {
	acc, err := testCatalog().Open("SAVINGS", "Ana")
	require.NoError(t, err)
	assert.Equal(t, KindSavings, acc.Kind())
}

func TestCatalog_OpenErrors(t *testing.T) {
	c := testCatalog()

	_, err := c.Open("brokerage", "Ana")
	assert.True(t, domain.IsKind(err, domain.KindUnknownStrategy))

	_, err = c.Open("checking", " ")
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}

func TestCatalog_RestoreRoundTrip(t *testing.T) {
	c := testCatalog()
	acc, err := c.Open("full", "Ana")
	require.NoError(t, err)

	full := acc.(*Full)
	require.NoError(t, full.Deposit(domain.MoneyFromInt(1000)))
	require.NoError(t, full.InvestInFunds(domain.MoneyFromInt(100)))
	require.NoError(t, full.RequestLoan(domain.MoneyFromInt(250)))

	b, err := json.Marshal(acc.Snapshot())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(b, &snap))

	restored, err := c.Restore(snap)
	require.NoError(t, err)

	again, err := json.Marshal(restored.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, string(b), string(again))
	assert.Equal(t, "1150.00", restored.Balance().String())
}

func TestCatalog_RestoreRejectsBadSnapshots(t *testing.T) {
	c := testCatalog()

	_, err := c.Restore(Snapshot{Kind: KindChecking})
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	_, err = c.Restore(Snapshot{ID: uuid.New(), Kind: KindChecking, Balance: domain.MustParseMoney("-1")})
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	_, err = c.Restore(Snapshot{ID: uuid.New(), Kind: "brokerage"})
	assert.True(t, domain.IsKind(err, domain.KindUnknownStrategy))
}

func TestCatalog_RestoreChecksStoredLoanLimit(t *testing.T) {
	c := testCatalog()
	acc, err := c.Open("checking", "Ana")
	require.NoError(t, err)
	require.NoError(t, acc.(Lending).RequestLoan(domain.MoneyFromInt(500)))

	snap := acc.Snapshot()
	require.NotNil(t, snap.Loan)
	assert.Equal(t, "10000.00", snap.Loan.Limit.String())

	_, err = c.Restore(snap)
	require.NoError(t, err)

	tampered := snap
	tampered.Loan = &LoanState{Limit: domain.MoneyFromInt(999999), Outstanding: snap.Loan.Outstanding}
	_, err = c.Restore(tampered)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	over := snap
	over.Loan = &LoanState{Limit: snap.Loan.Limit, Outstanding: domain.MoneyFromInt(10001)}
	_, err = c.Restore(over)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}

// salary is a variant defined outside the package's shipped set.
type salary struct{ *Base }

func (*salary) Kind() Kind { return "salary" }
func (*salary) Capabilities() Capabilities { return Capabilities{CapBasic} }
func (s *salary) Snapshot() Snapshot { return s.Base.snapshot(s.Kind(), s.Capabilities()) }

func TestCatalog_NewVariantByRegistration(t *testing.T) {
	c := testCatalog()
	require.NoError(t, c.Register("salary", func(s Snapshot, _ func() time.Time) Account {
		return &salary{Base: newBase(s)}
	}))

	acc, err := c.Open("salary", "Ana")
	require.NoError(t, err)
	require.NoError(t, acc.Deposit(domain.MoneyFromInt(10)))
	assert.False(t, acc.CanWithdraw(domain.MoneyFromInt(11)))

	err = c.Register("Salary", nil)
	assert.True(t, domain.IsKind(err, domain.KindDuplicateStrategy))
}
