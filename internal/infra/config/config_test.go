package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/bankcore/internal/domain"
)

func TestParse_FullDocument(t *testing.T) {
	doc := `
bankcore:
  masking:
    enabled: false
  paths:
    accounts_dir: data/accounts
  notifier:
    webhook_url: https://hooks.example.com/bank
    timeout: 2s
  discounts:
    - name: Estudante
      percent: 12.5
`
	cfg, err := Parse("bankcore.yaml", []byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Masking.Enabled {
		t.Fatalf("expected masking disabled")
	}
	if cfg.Paths.AccountsDir != "data/accounts" || cfg.Paths.ReportsDir != "reports" {
		t.Fatalf("unexpected paths %+v", cfg.Paths)
	}
	if cfg.Notifier.WebhookURL != "https://hooks.example.com/bank" || cfg.Notifier.Timeout != 2*time.Second {
		t.Fatalf("unexpected notifier %+v", cfg.Notifier)
	}
	if len(cfg.Discounts) != 1 || cfg.Discounts[0].Name != "Estudante" || cfg.Discounts[0].Percent.String() != "12.50" {
		t.Fatalf("unexpected discounts %+v", cfg.Discounts)
	}
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse("bankcore.yaml", []byte("bankcore: {}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := domain.DefaultConfig()
	if cfg.Masking != def.Masking || cfg.Paths != def.Paths || cfg.Notifier != def.Notifier {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestParse_InvalidFields(t *testing.T) {
	cases := map[string]string{
		"notifier.webhook_url": "bankcore:\n  notifier:\n    webhook_url: ftp://x\n",
		"notifier.timeout":     "bankcore:\n  notifier:\n    timeout: soon\n",
		"discounts[0].name":    "bankcore:\n  discounts:\n    - percent: 3\n",
		"discounts[0].percent": "bankcore:\n  discounts:\n    - name: X\n      percent: lots\n",
	}
	for field, doc := range cases {
		_, err := Parse("bankcore.yaml", []byte(doc))
		if err == nil {
			t.Fatalf("%s: expected error", field)
		}
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%s: expected invalid_config, got %v", field, err)
		}
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected field %s in error, got %v", field, err)
		}
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse("bankcore.yaml", []byte("bankcore: [\n"))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankcore.yaml")
	_, err := Load(path)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}

	if err := os.WriteFile(path, []byte("bankcore:\n  masking:\n    enabled: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
