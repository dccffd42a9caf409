package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Providers.Frequency.validate(); err != nil {
		return fmt.Errorf("providers.frequency: %w", err)
	}
	if err := c.Providers.Dictionary.validate(); err != nil {
		return fmt.Errorf("providers.dictionary: %w", err)
	}

	if err := c.Difficulty.validate(); err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	if c.Session.IdleTTL <= 0 {
		return fmt.Errorf("session.idle_ttl must be > 0 (got %v)", c.Session.IdleTTL)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.sweep_interval must be > 0 (got %v)", c.Session.SweepInterval)
	}
	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be > 0 (got %d)", c.Session.MaxSessions)
	}

	return nil
}

func (p ProviderConfig) validate() error {
	if p.BaseURL != "" {
		u, err := url.Parse(p.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base_url must be an absolute URL (got %q)", p.BaseURL)
		}
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", p.Timeout)
	}
	if p.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", p.RetryDelay)
	}
	return nil
}

func (d DifficultyConfig) validate() error {
	if d.MediumFrom < 0 {
		return fmt.Errorf("medium_from must be >= 0 (got %v)", d.MediumFrom)
	}
	if d.MediumFrom > d.EasyAbove {
		return fmt.Errorf("medium_from (%v) must not exceed easy_above (%v)", d.MediumFrom, d.EasyAbove)
	}
	return nil
}
