package accountstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/ports"
)

const defaultAccountsDir = "accounts"

// JSONStore keeps one JSON snapshot per account under <root>/<accounts dir>/<id>.json.
type JSONStore struct {
	dir        string
	catalog    *account.Catalog
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a JSONL log of saves: accounts/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, catalog *account.Catalog, opts ...Option) *JSONStore {
	dir := cfg.Paths.AccountsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultAccountsDir
	}

	s := &JSONStore{
		dir:     filepath.Join(root, dir),
		catalog: catalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.AccountStore = (*JSONStore)(nil)

func (s *JSONStore) Save(ctx context.Context, acc account.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.OpError{Op: "accountstore.mkdir", Kind: domain.KindExecution, Path: s.dir, Err: err}
	}

	snap := acc.Snapshot()
	path := s.path(snap.ID)

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &domain.OpError{Op: "accountstore.marshal", Kind: domain.KindExecution, Path: path, Err: err}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{Op: "accountstore.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "accountstore.rename", Kind: domain.KindExecution, Path: path, Err: err}
	}

	if s.writeIndex {
		_ = s.appendIndex(snap)
	}
	return nil
}

func (s *JSONStore) Load(ctx context.Context, id uuid.UUID) (account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.read(s.path(id))
}

// List returns every stored account, oldest first.
func (s *JSONStore) List(ctx context.Context) ([]account.Account, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []account.Account{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{Op: "accountstore.list", Kind: domain.KindExecution, Path: s.dir, Err: err}
	}

	out := make([]account.Account, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		acc, err := s.read(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, acc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].OpenedAt().Equal(out[j].OpenedAt()) {
			return out[i].OpenedAt().Before(out[j].OpenedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}

func (s *JSONStore) read(path string) (account.Account, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.OpError{Op: "accountstore.load", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	if err != nil {
		return nil, &domain.OpError{Op: "accountstore.load", Kind: domain.KindExecution, Path: path, Err: err}
	}

	var snap account.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, &domain.OpError{Op: "accountstore.decode", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}

	acc, err := s.catalog.Restore(snap)
	if err != nil {
		return nil, &domain.OpError{Op: "accountstore.restore", Kind: domain.KindOf(err), Path: path, Err: err}
	}
	return acc, nil
}

func (s *JSONStore) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

func (s *JSONStore) appendIndex(snap account.Snapshot) error {
	type idx struct {
		ID      uuid.UUID    `json:"id"`
		Kind    account.Kind `json:"kind"`
		Balance domain.Money `json:"balance"`
		SavedAt time.Time    `json:"saved_at"`
	}
	line, err := json.Marshal(idx{
		ID:      snap.ID,
		Kind:    snap.Kind,
		Balance: snap.Balance,
		SavedAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}
