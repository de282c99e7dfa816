package domain

import "time"

// Config represents the bank workspace configuration loaded from bankcore.yaml.
type Config struct {
	Masking   MaskingConfig
	Paths     PathsConfig
	Notifier  NotifierConfig
	Discounts []DiscountTier
}

type MaskingConfig struct {
	Enabled bool
}

type PathsConfig struct {
	AccountsDir string
	ReportsDir  string
	OutboxDir   string
}

// NotifierConfig selects the notification channel. An empty WebhookURL means
// notifications go to the local outbox.
type NotifierConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// DiscountTier is an extra percentage discount declared in configuration.
type DiscountTier struct {
	Name    string
	Percent Money
}

// DefaultConfig provides sane defaults if bankcore.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Masking: MaskingConfig{Enabled: true},
		Paths: PathsConfig{
			AccountsDir: "accounts",
			ReportsDir:  "reports",
			OutboxDir:   "outbox",
		},
		Notifier: NotifierConfig{
			Timeout: 5 * time.Second,
		},
	}
}

// WorkspaceSpec describes where a bank workspace is created.
type WorkspaceSpec struct {
	Root string
}
