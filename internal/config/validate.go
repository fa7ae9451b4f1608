package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.LogRetentionDays <= 0 {
		return fmt.Errorf("database.log_retention_days must be > 0 (got %d)", c.Database.LogRetentionDays)
	}

	if c.RateLimit.TranslatePerMinute <= 0 {
		return fmt.Errorf("rate_limit.translate_per_minute must be > 0 (got %d)", c.RateLimit.TranslatePerMinute)
	}

	if err := c.Translator.validate(); err != nil {
		return fmt.Errorf("translator: %w", err)
	}

	return nil
}

func (t *TranslatorConfig) validate() error {
	t.applyDefaults()

	if t.MaxWindow < 1 || t.MaxWindow > 10 {
		return fmt.Errorf("max_window must be in 1..10 (got %d)", t.MaxWindow)
	}
	if !t.DisableCache && t.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be > 0 unless disable_cache is set (got %d)", t.CacheSize)
	}
	if t.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be >= 0 (got %v)", t.CacheTTL)
	}
	if t.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", t.MaxTextLength)
	}
	if !t.ThKm.Enabled() && !t.KmTh.Enabled() {
		return fmt.Errorf("at least one direction must be enabled")
	}

	directions := []struct {
		name string
		cfg  DirectionConfig
	}{{"th_km", t.ThKm}, {"km_th", t.KmTh}}
	for _, d := range directions {
		if !isSegmentation(d.cfg.Segmentation) {
			return fmt.Errorf("%s.segmentation %q must be one of whitespace, vocabulary, dictionary", d.name, d.cfg.Segmentation)
		}
	}

	return nil
}

func isSegmentation(s string) bool {
	switch strings.ToLower(s) {
	case "whitespace", "vocabulary", "dictionary":
		return true
	}
	return false
}
