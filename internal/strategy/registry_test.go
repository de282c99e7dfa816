package strategy

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/bankcore/internal/domain"
)

type doubler struct{ tag string }

func (d doubler) Compute(m domain.Money) domain.Money { return m.Add(m) }

func TestRegister_CaseInsensitiveResolve(t *testing.T) {
	reg := New[doubler]("payment method")
	pix := doubler{tag: "pix"}

	require.NoError(t, reg.Register("PIX", pix))

	lower, err := reg.Resolve("pix")
	require.NoError(t, err)
	upper, err := reg.Resolve("PIX")
	require.NoError(t, err)

	assert.Equal(t, pix, lower)
	assert.Equal(t, pix, upper)
	assert.Equal(t, 1, reg.Len())
}

func TestRegister_DuplicateNormalizedNameRejected(t *testing.T) {
	reg := New[doubler]("payment method")
	require.NoError(t, reg.Register("PIX", doubler{tag: "first"}))

	err := reg.Register("pix", doubler{tag: "second"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindDuplicateStrategy))
	assert.True(t, errors.Is(err, domain.ErrDuplicateStrategy))

	got, err := reg.Resolve("Pix")
	require.NoError(t, err)
	assert.Equal(t, "first", got.tag, "existing strategy must not be overwritten")
	assert.Equal(t, 1, reg.Len())
}

func TestRegister_UnicodeFolding(t *testing.T) {
	reg := New[doubler]("payment method")
	require.NoError(t, reg.Register("Cartão de Crédito", doubler{tag: "card"}))

	got, err := reg.Resolve("CARTÃO DE CRÉDITO")
	require.NoError(t, err)
	assert.Equal(t, "card", got.tag)

	_, err = reg.Resolve("cartao de credito")
	assert.True(t, domain.IsKind(err, domain.KindUnknownStrategy), "accents are part of the name")
}

func TestRegister_EmptyName(t *testing.T) {
	reg := New[doubler]("discount")
	err := reg.Register("   ", doubler{})
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
	assert.Equal(t, 0, reg.Len())
}

func TestResolve_UnknownAndNoPartialMatch(t *testing.T) {
	reg := New[doubler]("discount")
	reg.MustRegister("Premium", doubler{})

	for _, name := range []string{"nope", "prem", "Premium Plus", ""} {
		_, err := reg.Resolve(name)
		require.Error(t, err, name)
		assert.True(t, domain.IsKind(err, domain.KindUnknownStrategy), name)
		assert.True(t, errors.Is(err, domain.ErrUnknownStrategy), name)
	}

	_, err := reg.Resolve("  premium  ")
	assert.NoError(t, err, "surrounding whitespace is not part of the name")
}

func TestResolve_Idempotent(t *testing.T) {
	reg := New[doubler]("discount")
	reg.MustRegister("VIP", doubler{})

	a, err := reg.Resolve("vip")
	require.NoError(t, err)
	b, err := reg.Resolve("vip")
	require.NoError(t, err)

	amount := domain.MoneyFromInt(1000)
	assert.True(t, a.Compute(amount).Equal(b.Compute(amount)))
}

func TestList_RegistrationOrder(t *testing.T) {
	reg := New[doubler]("discount")
	for _, name := range []string{"Regular", "Premium", "VIP", "Empresarial"} {
		reg.MustRegister(name, doubler{tag: name})
	}

	var tags []string
	for s := range reg.List() {
		tags = append(tags, s.tag)
	}
	assert.Equal(t, []string{"Regular", "Premium", "VIP", "Empresarial"}, tags)
	assert.Equal(t, tags, reg.Names())
}

func TestList_EarlyStopAndNoMutation(t *testing.T) {
	reg := New[doubler]("discount")
	reg.MustRegister("a", doubler{}).MustRegister("b", doubler{})

	n := 0
	for range reg.List() {
		n++
		break
	}
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, reg.Len())
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	reg := New[doubler]("discount")
	reg.MustRegister("a", doubler{})
	assert.Panics(t, func() { reg.MustRegister("A", doubler{}) })
}

func TestRegistry_ConcurrentReadsDuringRegistration(t *testing.T) {
	reg := New[doubler]("discount")
	reg.MustRegister("base", doubler{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("tier-%d", i), doubler{})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = reg.Resolve("base")
			for range reg.List() {
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 9, reg.Len())
}
