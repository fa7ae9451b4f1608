package config

import (
	"path/filepath"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Translator TranslatorConfig `yaml:"translator"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty DSN
// disables the translation log.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations   bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
	LogRetentionDays int           `yaml:"log_retention_days" env:"DATABASE_LOG_RETENTION_DAYS" env-default:"90"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// AuthConfig holds admin token settings. An empty secret disables the
// admin endpoints.
type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"      env:"AUTH_JWT_SECRET"`
	JWTIssuer     string        `yaml:"jwt_issuer"      env:"AUTH_JWT_ISSUER"      env-default:"khummuang-translate"`
	AdminTokenTTL time.Duration `yaml:"admin_token_ttl" env:"AUTH_ADMIN_TOKEN_TTL" env-default:"24h"`
}

// Enabled reports whether admin authentication is configured.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for the public endpoints.
type RateLimitConfig struct {
	TranslatePerMinute int           `yaml:"translate_per_minute" env:"RATE_LIMIT_TRANSLATE_PER_MINUTE" env-default:"120"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}

// TranslatorConfig holds lexicon locations and translation engine tuning.
type TranslatorConfig struct {
	DataDir       string        `yaml:"data_dir"        env:"TRANSLATOR_DATA_DIR"        env-default:"./data"`
	ReportDir     string        `yaml:"report_dir"      env:"TRANSLATOR_REPORT_DIR"      env-default:"./reports"`
	MaxWindow     int           `yaml:"max_window"      env:"TRANSLATOR_MAX_WINDOW"      env-default:"5"`
	CacheSize     int           `yaml:"cache_size"      env:"TRANSLATOR_CACHE_SIZE"      env-default:"10000"`
	DisableCache  bool          `yaml:"disable_cache"   env:"TRANSLATOR_DISABLE_CACHE"`
	CacheTTL      time.Duration `yaml:"cache_ttl"       env:"TRANSLATOR_CACHE_TTL"       env-default:"0s"`
	MaxTextLength int           `yaml:"max_text_length" env:"TRANSLATOR_MAX_TEXT_LENGTH" env-default:"20000"`
	LogTimeout    time.Duration `yaml:"log_timeout"     env:"TRANSLATOR_LOG_TIMEOUT"     env-default:"2s"`

	// Consecutive log write failures before the breaker opens, and how long
	// it stays open.
	LogBreakerFailures uint32        `yaml:"log_breaker_failures" env:"TRANSLATOR_LOG_BREAKER_FAILURES" env-default:"5"`
	LogBreakerTimeout  time.Duration `yaml:"log_breaker_timeout"  env:"TRANSLATOR_LOG_BREAKER_TIMEOUT"  env-default:"30s"`

	ThKm DirectionConfig `yaml:"th_km" env-prefix:"TRANSLATOR_TH_KM_"`
	KmTh DirectionConfig `yaml:"km_th" env-prefix:"TRANSLATOR_KM_TH_"`
}

// DirectionConfig describes the resources of one translation direction.
// File names are relative to TranslatorConfig.DataDir unless absolute.
type DirectionConfig struct {
	Disabled     bool   `yaml:"disabled"     env:"DISABLED"`
	Vocabulary   string `yaml:"vocabulary"   env:"VOCABULARY"`
	Dictionary   string `yaml:"dictionary"   env:"DICTIONARY"`
	Phrases      string `yaml:"phrases"      env:"PHRASES"`
	Segmentation string `yaml:"segmentation" env:"SEGMENTATION"`
}

// Enabled reports whether the direction is served.
func (d DirectionConfig) Enabled() bool { return !d.Disabled }

// EffectiveCacheSize is the sentence cache capacity; zero disables caching.
func (c TranslatorConfig) EffectiveCacheSize() int {
	if c.DisableCache {
		return 0
	}
	return c.CacheSize
}

// Resolve returns name joined to the data directory. Empty names and
// absolute paths are returned unchanged.
func (c TranslatorConfig) Resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// applyDefaults fills the per-direction resources the service ships with:
// Thai to Kham Mueang segments by dictionary words, Kham Mueang to Thai by
// its cutting vocabulary.
func (c *TranslatorConfig) applyDefaults() {
	if c.ThKm.Dictionary == "" {
		c.ThKm.Dictionary = "THtoKM.txt"
	}
	if c.ThKm.Segmentation == "" {
		c.ThKm.Segmentation = "dictionary"
	}
	if c.KmTh.Dictionary == "" {
		c.KmTh.Dictionary = "KMtoTH.txt"
	}
	if c.KmTh.Vocabulary == "" {
		c.KmTh.Vocabulary = "KMcutting.txt"
	}
	if c.KmTh.Segmentation == "" {
		c.KmTh.Segmentation = "vocabulary"
	}
}
