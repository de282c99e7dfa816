package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aalvaropc/bankcore/internal/domain"
)

// MapConfig applies parsed values on top of domain.DefaultConfig.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	b := y.Bankcore

	if b.Masking.Enabled != nil {
		cfg.Masking.Enabled = *b.Masking.Enabled
	}
	if dir := strings.TrimSpace(b.Paths.AccountsDir); dir != "" {
		cfg.Paths.AccountsDir = dir
	}
	if dir := strings.TrimSpace(b.Paths.ReportsDir); dir != "" {
		cfg.Paths.ReportsDir = dir
	}
	if dir := strings.TrimSpace(b.Paths.OutboxDir); dir != "" {
		cfg.Paths.OutboxDir = dir
	}

	if raw := strings.TrimSpace(b.Notifier.WebhookURL); raw != "" {
		if err := CheckWebhookURL(raw); err != nil {
			return domain.Config{}, invalidField(path, "notifier.webhook_url", err.Error())
		}
		cfg.Notifier.WebhookURL = raw
	}
	if raw := strings.TrimSpace(b.Notifier.Timeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return domain.Config{}, invalidField(path, "notifier.timeout", fmt.Sprintf("invalid duration %q", raw))
		}
		cfg.Notifier.Timeout = d
	}

	for i, d := range b.Discounts {
		field := fmt.Sprintf("discounts[%d]", i)
		if strings.TrimSpace(d.Name) == "" {
			return domain.Config{}, invalidField(path, field+".name", "name is required")
		}
		pct, err := domain.ParseMoney(d.Percent)
		if err != nil {
			return domain.Config{}, invalidField(path, field+".percent", err.Error())
		}
		cfg.Discounts = append(cfg.Discounts, domain.DiscountTier{Name: strings.TrimSpace(d.Name), Percent: pct})
	}

	return cfg, nil
}

// CheckWebhookURL accepts absolute http(s) URLs with a host.
func CheckWebhookURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("webhook url must be absolute http(s), got %q", raw)
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
