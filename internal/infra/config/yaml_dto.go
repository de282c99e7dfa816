package config

// YAMLConfig mirrors bankcore.yaml.
type YAMLConfig struct {
	Bankcore struct {
		Masking struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"masking"`

		Paths struct {
			AccountsDir string `yaml:"accounts_dir"`
			ReportsDir  string `yaml:"reports_dir"`
			OutboxDir   string `yaml:"outbox_dir"`
		} `yaml:"paths"`

		Notifier struct {
			WebhookURL string `yaml:"webhook_url"`
			Timeout    string `yaml:"timeout"`
		} `yaml:"notifier"`

		Discounts []YAMLDiscountTier `yaml:"discounts"`
	} `yaml:"bankcore"`
}

type YAMLDiscountTier struct {
	Name    string `yaml:"name"`
	Percent string `yaml:"percent"`
}
