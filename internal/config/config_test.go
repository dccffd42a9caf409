package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdirTemp moves the test into an empty directory so the fallback
// ./config.yaml does not exist.
func chdirTemp(t *testing.T) {
	t.Helper()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

log:
  level: "debug"
  format: "text"

providers:
  frequency:
    base_url: "http://datamuse.local"
    timeout: "3s"
  dictionary:
    base_url: "http://freedict.local/api/v2/entries/en"
    retry_delay: "100ms"

difficulty:
  easy_above: 5
  medium_from: 3

session:
  idle_ttl: "10m"
`

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Providers: ProvidersConfig{
			Frequency:  ProviderConfig{Timeout: 10 * time.Second, RetryDelay: 500 * time.Millisecond},
			Dictionary: ProviderConfig{Timeout: 10 * time.Second, RetryDelay: 500 * time.Millisecond},
		},
		Difficulty: DifficultyConfig{EasyAbove: 4.0, MediumFrom: 2.5},
		RateLimit:  RateLimitConfig{RequestsPerMinute: 120, Burst: 20, CleanupInterval: time.Minute},
		Session:    SessionConfig{IdleTTL: 30 * time.Minute, SweepInterval: time.Minute, MaxSessions: 100},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("server.Addr() = %q", cfg.Server.Addr())
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}

	if cfg.Providers.Frequency.BaseURL != "http://datamuse.local" {
		t.Errorf("providers.frequency.base_url = %q", cfg.Providers.Frequency.BaseURL)
	}
	if cfg.Providers.Frequency.Timeout != 3*time.Second {
		t.Errorf("providers.frequency.timeout = %v, want 3s", cfg.Providers.Frequency.Timeout)
	}
	if cfg.Providers.Dictionary.RetryDelay != 100*time.Millisecond {
		t.Errorf("providers.dictionary.retry_delay = %v, want 100ms", cfg.Providers.Dictionary.RetryDelay)
	}

	if cfg.Difficulty.EasyAbove != 5 || cfg.Difficulty.MediumFrom != 3 {
		t.Errorf("difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Session.IdleTTL != 10*time.Minute {
		t.Errorf("session.idle_ttl = %v, want 10m", cfg.Session.IdleTTL)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Difficulty.EasyAbove != 4.0 || cfg.Difficulty.MediumFrom != 2.5 {
		t.Errorf("difficulty defaults = %+v, want 4.0/2.5", cfg.Difficulty)
	}
	if cfg.Providers.Frequency.Timeout != 10*time.Second {
		t.Errorf("providers.frequency.timeout = %v, want 10s", cfg.Providers.Frequency.Timeout)
	}
	if cfg.Providers.Dictionary.BaseURL != "" {
		t.Errorf("providers.dictionary.base_url = %q, want empty", cfg.Providers.Dictionary.BaseURL)
	}
}

func TestLoad_NoFile_PrefixedProviderEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("FREQUENCY_BASE_URL", "http://freq.test")
	t.Setenv("DICTIONARY_TIMEOUT", "2s")
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Providers.Frequency.BaseURL != "http://freq.test" {
		t.Errorf("providers.frequency.base_url = %q", cfg.Providers.Frequency.BaseURL)
	}
	if cfg.Providers.Dictionary.Timeout != 2*time.Second {
		t.Errorf("providers.dictionary.timeout = %v, want 2s", cfg.Providers.Dictionary.Timeout)
	}
}

func TestLoadFrom_ExplicitPathNotFound(t *testing.T) {
	if _, err := LoadFrom("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_InvalidThresholds(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "difficulty:\n  easy_above: 1\n  medium_from: 2\n")
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for medium_from > easy_above")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "equal thresholds", mutate: func(c *Config) { c.Difficulty.MediumFrom = c.Difficulty.EasyAbove }, wantErr: false},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "negative medium", mutate: func(c *Config) { c.Difficulty.MediumFrom = -1 }, wantErr: true},
		{name: "medium above easy", mutate: func(c *Config) { c.Difficulty.MediumFrom = 5 }, wantErr: true},
		{name: "frequency timeout zero", mutate: func(c *Config) { c.Providers.Frequency.Timeout = 0 }, wantErr: true},
		{name: "dictionary negative retry", mutate: func(c *Config) { c.Providers.Dictionary.RetryDelay = -time.Second }, wantErr: true},
		{name: "relative base url", mutate: func(c *Config) { c.Providers.Dictionary.BaseURL = "/entries" }, wantErr: true},
		{name: "absolute base url", mutate: func(c *Config) { c.Providers.Frequency.BaseURL = "https://api.datamuse.com" }, wantErr: false},
		{name: "rate zero", mutate: func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }, wantErr: true},
		{name: "burst zero", mutate: func(c *Config) { c.RateLimit.Burst = 0 }, wantErr: true},
		{name: "rate cleanup zero", mutate: func(c *Config) { c.RateLimit.CleanupInterval = 0 }, wantErr: true},
		{name: "session ttl zero", mutate: func(c *Config) { c.Session.IdleTTL = 0 }, wantErr: true},
		{name: "sweep zero", mutate: func(c *Config) { c.Session.SweepInterval = 0 }, wantErr: true},
		{name: "max sessions zero", mutate: func(c *Config) { c.Session.MaxSessions = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
