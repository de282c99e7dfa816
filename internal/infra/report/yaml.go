// Package report writes a YAML statement of an account after each change.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/ports"
)

const defaultReportsDir = "reports"

// Statement is the report document.
type Statement struct {
	GeneratedAt time.Time        `yaml:"generated_at"`
	Account     account.Snapshot `yaml:"account"`
}

type YAMLGenerator struct {
	dir            string
	maskingEnabled bool
	now            func() time.Time
}

type Option func(*YAMLGenerator)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(g *YAMLGenerator) { g.now = now }
}

func NewYAMLGenerator(root string, cfg domain.Config, opts ...Option) *YAMLGenerator {
	dir := cfg.Paths.ReportsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}
	g := &YAMLGenerator{
		dir:            filepath.Join(root, dir),
		maskingEnabled: cfg.Masking.Enabled,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ ports.ReportGenerator = (*YAMLGenerator)(nil)

// Generate writes <reports>/<timestamp>_<account id>.yaml and returns its path.
func (g *YAMLGenerator) Generate(ctx context.Context, acc account.Account) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", &domain.OpError{Op: "report.mkdir", Kind: domain.KindExecution, Path: g.dir, Err: err}
	}

	ts := g.now().UTC()
	st := Statement{GeneratedAt: ts, Account: acc.Snapshot()}
	if g.maskingEnabled {
		st.Account.Holder = domain.MaskName(st.Account.Holder)
	}

	path := filepath.Join(g.dir, fmt.Sprintf("%s_%s.yaml", ts.Format("20060102T150405Z"), st.Account.ID))

	b, err := yaml.Marshal(st)
	if err != nil {
		return "", &domain.OpError{Op: "report.marshal", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return "", &domain.OpError{Op: "report.write", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return path, nil
}
