package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Providers  ProvidersConfig  `yaml:"providers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Session    SessionConfig    `yaml:"session"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// RateLimitConfig bounds how often one client may hit the API. Every
// analysis fans out to one frequency lookup per distinct word.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"   env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"1m"`
}

// ProvidersConfig groups the two external lookup services.
type ProvidersConfig struct {
	Frequency  ProviderConfig `yaml:"frequency"  env-prefix:"FREQUENCY_"`
	Dictionary ProviderConfig `yaml:"dictionary" env-prefix:"DICTIONARY_"`
}

// ProviderConfig holds HTTP client settings for one external provider.
// An empty BaseURL selects the provider's public endpoint.
type ProviderConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"BASE_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"TIMEOUT"     env-default:"10s"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"RETRY_DELAY" env-default:"500ms"`
}

// DifficultyConfig holds the frequency thresholds (occurrences per million
// words) that separate the tiers: f > EasyAbove is easy, MediumFrom <= f <=
// EasyAbove is medium, anything rarer is hard.
type DifficultyConfig struct {
	EasyAbove  float64 `yaml:"easy_above"  env:"DIFFICULTY_EASY_ABOVE"  env-default:"4.0"`
	MediumFrom float64 `yaml:"medium_from" env:"DIFFICULTY_MEDIUM_FROM" env-default:"2.5"`
}

// SessionConfig controls the in-memory analysis sessions of the HTTP API.
type SessionConfig struct {
	IdleTTL       time.Duration `yaml:"idle_ttl"       env:"SESSION_IDLE_TTL"       env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1m"`
	MaxSessions   int           `yaml:"max_sessions"   env:"SESSION_MAX"            env-default:"10000"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
