package account

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/strategy"
)

// Factory builds a variant from a snapshot. now is the clock time-based
// capabilities read.
type Factory func(s Snapshot, now func() time.Time) Account

// Catalog opens and restores accounts by kind. New variants are added with
// Register; Open and Restore never change.
type Catalog struct {
	factories *strategy.Registry[Factory]
	now       func() time.Time
	newID     func() uuid.UUID
}

type CatalogOption func(*Catalog)

// WithClock overrides the clock (useful for tests).
func WithClock(now func() time.Time) CatalogOption {
	return func(c *Catalog) { c.now = now }
}

// WithIDs overrides account id generation (useful for tests).
func WithIDs(gen func() uuid.UUID) CatalogOption {
	return func(c *Catalog) { c.newID = gen }
}

func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		factories: strategy.New[Factory]("account kind"),
		now:       time.Now,
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultCatalog registers the four shipped variants.
func DefaultCatalog(opts ...CatalogOption) *Catalog {
	c := NewCatalog(opts...)
	c.factories.
		MustRegister(string(KindChecking), func(s Snapshot, _ func() time.Time) Account { return NewChecking(s) }).
		MustRegister(string(KindSavings), func(s Snapshot, now func() time.Time) Account { return NewSavings(s, now) }).
		MustRegister(string(KindInvestment), func(s Snapshot, _ func() time.Time) Account { return NewInvestment(s) }).
		MustRegister(string(KindFull), func(s Snapshot, now func() time.Time) Account { return NewFull(s, now) })
	return c
}

func (c *Catalog) Register(kind Kind, f Factory) error {
	return c.factories.Register(string(kind), f)
}

// Kinds lists registered kinds in registration order.
func (c *Catalog) Kinds() []string {
	return c.factories.Names()
}

// Open creates an empty account of the given kind for holder.
func (c *Catalog) Open(kind string, holder string) (Account, error) {
	h := strings.TrimSpace(holder)
	if h == "" {
		return nil, domain.NewDomainError(domain.KindInvalidInput, "holder is required")
	}

	f, err := c.factories.Resolve(kind)
	if err != nil {
		return nil, err
	}

	return f(Snapshot{
		ID:       c.newID(),
		Holder:   h,
		OpenedAt: c.now().UTC().Truncate(time.Second),
	}, c.now), nil
}

// Restore rebuilds an account from a stored snapshot.
func (c *Catalog) Restore(s Snapshot) (Account, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	f, err := c.factories.Resolve(string(s.Kind))
	if err != nil {
		return nil, err
	}
	return f(s, c.now), nil
}
