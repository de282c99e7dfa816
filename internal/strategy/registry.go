// Package strategy holds named, swappable implementations of a single capability
// (discount tiers, payment methods, account variant factories) and resolves them
// by case-insensitive name.
//
// A Registry never branches on the identity of what it stores: adding a strategy is a
// Register call from the composition root.
package strategy

import (
	"iter"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/aalvaropc/bankcore/internal/domain"
)

// Registry maps normalized names to strategies, preserving registration order.
//
// Registration is serialized by a write lock; Resolve and List may run concurrently
// with each other and with registration.
type Registry[S any] struct {
	kind string

	mu      sync.RWMutex
	index   map[string]int
	entries []entry[S]
}

type entry[S any] struct {
	name string
	s    S
}

// New returns an empty registry. kind names what is stored ("discount", "payment
// method") and only shows up in error messages.
func New[S any](kind string) *Registry[S] {
	return &Registry[S]{
		kind:  kind,
		index: map[string]int{},
	}
}

// Normalize returns the lookup key for a name: surrounding whitespace removed and
// Unicode case folded.
func Normalize(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Register stores s under name. The original spelling is kept for listing.
func (r *Registry[S]) Register(name string, s S) error {
	key := Normalize(name)
	if key == "" {
		return domain.NewDomainError(domain.KindInvalidInput, "%s name is empty", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, exists := r.index[key]; exists {
		return domain.NewDomainError(domain.KindDuplicateStrategy,
			"%s %q conflicts with registered %q", r.kind, name, r.entries[i].name)
	}

	r.index[key] = len(r.entries)
	r.entries = append(r.entries, entry[S]{name: strings.TrimSpace(name), s: s})
	return nil
}

// MustRegister is Register for composition roots with static names.
func (r *Registry[S]) MustRegister(name string, s S) *Registry[S] {
	if err := r.Register(name, s); err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the strategy registered under name.
func (r *Registry[S]) Resolve(name string) (S, error) {
	key := Normalize(name)

	r.mu.RLock()
	i, ok := r.index[key]
	var s S
	if ok {
		s = r.entries[i].s
	}
	r.mu.RUnlock()

	if !ok {
		return s, domain.NewDomainError(domain.KindUnknownStrategy, "%s %q is not registered", r.kind, name)
	}
	return s, nil
}

// Has reports whether name resolves.
func (r *Registry[S]) Has(name string) bool {
	_, err := r.Resolve(name)
	return err == nil
}

// Len returns the number of registered strategies.
func (r *Registry[S]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns registered names in registration order, as spelled at registration.
func (r *Registry[S]) Names() []string {
	out := make([]string, 0, r.Len())
	for name := range r.All() {
		out = append(out, name)
	}
	return out
}

// List yields strategies in registration order.
func (r *Registry[S]) List() iter.Seq[S] {
	return func(yield func(S) bool) {
		for _, e := range r.snapshot() {
			if !yield(e.s) {
				return
			}
		}
	}
}

// All yields (name, strategy) pairs in registration order.
func (r *Registry[S]) All() iter.Seq2[string, S] {
	return func(yield func(string, S) bool) {
		for _, e := range r.snapshot() {
			if !yield(e.name, e.s) {
				return
			}
		}
	}
}

func (r *Registry[S]) snapshot() []entry[S] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entry[S], len(r.entries))
	copy(out, r.entries)
	return out
}
