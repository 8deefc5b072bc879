package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Archive backends.
const (
	ArchiveMemory   = "memory"
	ArchivePostgres = "postgres"
	ArchiveS3       = "s3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	LLM     LLMConfig     `yaml:"llm"`
	Reading ReadingConfig `yaml:"reading"`
	Cache   CacheConfig   `yaml:"cache"`
	Archive ArchiveConfig `yaml:"archive"`
	Geocode GeocodeConfig `yaml:"geocode"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string        `yaml:"apiKey"`
	BaseURL     string        `yaml:"baseUrl"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	MaxTokens   int           `yaml:"maxTokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

// ReadingConfig shapes reading generation.
type ReadingConfig struct {
	SystemPrompt  string        `yaml:"systemPrompt"`
	CacheTTL      time.Duration `yaml:"cacheTtl"`
	CacheCapacity int           `yaml:"cacheCapacity"`
}

// CacheConfig selects the shared reading cache. The in-process LRU is used
// when Valkey is disabled or unreachable.
type CacheConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// ArchiveConfig selects where finished readings are kept.
type ArchiveConfig struct {
	Backend  string         `yaml:"backend"`
	Postgres PostgresConfig `yaml:"postgres"`
	S3       S3Config       `yaml:"s3"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// S3Config addresses an S3-compatible bucket.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// GeocodeConfig controls birth place resolution.
type GeocodeConfig struct {
	Enabled           bool          `yaml:"enabled"`
	BaseURL           string        `yaml:"baseUrl"`
	UserAgent         string        `yaml:"userAgent"`
	RequestsPerSecond float64       `yaml:"requestsPerSecond"`
	Timeout           time.Duration `yaml:"timeout"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.HTTP.Address, "HTTP_ADDRESS")
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	setBool(&cfg.HTTP.RateLimit.Enabled, "HTTP_RATE_LIMIT_ENABLED")
	setInt(&cfg.HTTP.RateLimit.RequestsPerMinute, "HTTP_RATE_LIMIT_RPM")
	setInt(&cfg.HTTP.RateLimit.Burst, "HTTP_RATE_LIMIT_BURST")
	setBool(&cfg.HTTP.Retry.Enabled, "HTTP_RETRY_ENABLED")
	setInt(&cfg.HTTP.Retry.MaxAttempts, "HTTP_RETRY_MAX_ATTEMPTS")
	setDuration(&cfg.HTTP.Retry.BaseBackoff, "HTTP_RETRY_BASE_BACKOFF")

	setString(&cfg.LLM.APIKey, "LLM_API_KEY")
	setString(&cfg.LLM.BaseURL, "LLM_BASE_URL")
	setString(&cfg.LLM.Model, "LLM_MODEL")
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	setInt(&cfg.LLM.MaxTokens, "LLM_MAX_TOKENS")
	setDuration(&cfg.LLM.Timeout, "LLM_TIMEOUT")

	setString(&cfg.Reading.SystemPrompt, "READING_SYSTEM_PROMPT")
	setDuration(&cfg.Reading.CacheTTL, "READING_CACHE_TTL")
	setInt(&cfg.Reading.CacheCapacity, "READING_CACHE_CAPACITY")

	setBool(&cfg.Cache.Valkey.Enabled, "CACHE_VALKEY_ENABLED")
	setString(&cfg.Cache.Valkey.Addr, "CACHE_VALKEY_ADDR")
	setString(&cfg.Cache.Valkey.Prefix, "CACHE_VALKEY_PREFIX")

	setString(&cfg.Archive.Backend, "ARCHIVE_BACKEND")
	setString(&cfg.Archive.Postgres.DSN, "ARCHIVE_POSTGRES_DSN")
	if v := os.Getenv("ARCHIVE_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Archive.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("ARCHIVE_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Archive.Postgres.MinConns = int32(parsed)
		}
	}
	setString(&cfg.Archive.S3.Endpoint, "ARCHIVE_S3_ENDPOINT")
	setString(&cfg.Archive.S3.AccessKey, "ARCHIVE_S3_ACCESS_KEY")
	setString(&cfg.Archive.S3.SecretKey, "ARCHIVE_S3_SECRET_KEY")
	setString(&cfg.Archive.S3.Bucket, "ARCHIVE_S3_BUCKET")
	setString(&cfg.Archive.S3.Region, "ARCHIVE_S3_REGION")

	setBool(&cfg.Geocode.Enabled, "GEOCODE_ENABLED")
	setString(&cfg.Geocode.BaseURL, "GEOCODE_BASE_URL")
	setString(&cfg.Geocode.UserAgent, "GEOCODE_USER_AGENT")
	if v := os.Getenv("GEOCODE_RPS"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Geocode.RequestsPerSecond = parsed
		}
	}
	setDuration(&cfg.Geocode.Timeout, "GEOCODE_TIMEOUT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 120 * time.Second,
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
			},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 30,
				Burst:             10,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
			},
		},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
			MaxTokens:   4096,
			Timeout:     90 * time.Second,
		},
		Reading: ReadingConfig{
			CacheTTL:      24 * time.Hour,
			CacheCapacity: 1024,
		},
		Cache: CacheConfig{
			Valkey: ValkeyConfig{
				Enabled: false,
				Prefix:  "reading",
			},
		},
		Archive: ArchiveConfig{
			Backend: ArchiveMemory,
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
			S3: S3Config{
				Bucket: "cosmic-readings",
				Region: "auto",
			},
		},
		Geocode: GeocodeConfig{
			Enabled:           true,
			BaseURL:           "https://nominatim.openstreetmap.org",
			UserAgent:         "CosmicBlueprint/1.0",
			RequestsPerSecond: 1,
			Timeout:           5 * time.Second,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be within [0, 2]")
	}
	if c.LLM.MaxTokens <= 0 {
		return errors.New("llm.maxTokens must be positive")
	}
	if c.LLM.Timeout < 0 {
		return errors.New("llm.timeout cannot be negative")
	}
	if c.Reading.CacheTTL < 0 {
		return errors.New("reading.cacheTtl cannot be negative")
	}
	if c.Reading.CacheCapacity <= 0 {
		return errors.New("reading.cacheCapacity must be positive")
	}
	if c.Cache.Valkey.Enabled && strings.TrimSpace(c.Cache.Valkey.Addr) == "" {
		return errors.New("cache.valkey.addr cannot be empty when valkey cache is enabled")
	}
	switch c.Archive.Backend {
	case ArchiveMemory:
	case ArchivePostgres:
		if strings.TrimSpace(c.Archive.Postgres.DSN) == "" {
			return errors.New("archive.postgres.dsn cannot be empty when the postgres archive is selected")
		}
	case ArchiveS3:
		s3 := c.Archive.S3
		if strings.TrimSpace(s3.Endpoint) == "" || strings.TrimSpace(s3.Bucket) == "" {
			return errors.New("archive.s3.endpoint and archive.s3.bucket are required when the s3 archive is selected")
		}
		if s3.AccessKey == "" || s3.SecretKey == "" {
			return errors.New("archive.s3 credentials are required when the s3 archive is selected")
		}
	default:
		return fmt.Errorf("archive.backend %q is not one of memory, postgres, s3", c.Archive.Backend)
	}
	if c.Geocode.Enabled {
		if strings.TrimSpace(c.Geocode.BaseURL) == "" {
			return errors.New("geocode.baseUrl cannot be empty when geocoding is enabled")
		}
		if c.Geocode.RequestsPerSecond <= 0 {
			return errors.New("geocode.requestsPerSecond must be positive")
		}
	}
	return nil
}
