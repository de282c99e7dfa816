package workspacefinder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/infra/config"
)

const (
	EnvWebhookURL = "BANKCORE_WEBHOOK_URL"
	EnvMasking    = "BANKCORE_MASKING"
)

// LoadConfig loads bankcore.yaml from the workspace root, then applies overrides from
// <root>/.env and the process environment (process wins).
func LoadConfig(root string) (domain.Config, error) {
	cfg, err := config.Load(filepath.Join(root, ConfigFile))
	if err != nil {
		return cfg, err
	}

	env, err := readDotEnv(filepath.Join(root, ".env"))
	if err != nil {
		return cfg, err
	}
	return applyEnv(cfg, env)
}

func readDotEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "workspacefinder.dotenv",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return env, nil
}

func applyEnv(cfg domain.Config, dotenv map[string]string) (domain.Config, error) {
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvWebhookURL); ok {
		raw := strings.TrimSpace(v)
		if raw != "" {
			if err := config.CheckWebhookURL(raw); err != nil {
				return cfg, &domain.OpError{
					Op:   "workspacefinder.env",
					Kind: domain.KindInvalidConfig,
					Path: EnvWebhookURL,
					Err:  err,
				}
			}
		}
		cfg.Notifier.WebhookURL = raw
	}
	if v, ok := lookup(EnvMasking); ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.env",
				Kind: domain.KindInvalidConfig,
				Path: EnvMasking,
				Err:  err,
			}
		}
		cfg.Masking.Enabled = enabled
	}
	return cfg, nil
}
