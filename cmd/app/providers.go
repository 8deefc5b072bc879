package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
	"github.com/yanqian/cosmic-blueprint/internal/infra/config"
	"github.com/yanqian/cosmic-blueprint/internal/infra/geocode"
	"github.com/yanqian/cosmic-blueprint/internal/infra/llm/chatgpt"
	"github.com/yanqian/cosmic-blueprint/internal/infra/llm/tokens"
	"github.com/yanqian/cosmic-blueprint/internal/infra/readingarchive"
	"github.com/yanqian/cosmic-blueprint/internal/infra/readingcache"
)

func provideReadingConfig(cfg *config.Config) reading.Config {
	return reading.Config{
		Model:        cfg.LLM.Model,
		Temperature:  cfg.LLM.Temperature,
		MaxTokens:    cfg.LLM.MaxTokens,
		SystemPrompt: cfg.Reading.SystemPrompt,
		LLMTimeout:   cfg.LLM.Timeout,
		CacheTTL:     cfg.Reading.CacheTTL,
	}
}

// provideChatClient returns nil when no API key is configured; readings then
// carry the computed profile without a narrative.
func provideChatClient(cfg *config.Config, logger *slog.Logger) reading.ChatClient {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Warn("llm api key not set, readings will omit the narrative")
		return nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Timeout)
	if err != nil {
		logger.Error("invalid llm configuration, readings will omit the narrative", "error", err)
		return nil
	}
	return client
}

func provideTokenEstimator(cfg *config.Config, logger *slog.Logger) reading.TokenEstimator {
	counter, err := tokens.NewCounter(cfg.LLM.Model)
	if err != nil {
		logger.Warn("token counter unavailable, usage estimates disabled", "error", err)
		return nil
	}
	return counter
}

func provideGeocoder(cfg *config.Config, logger *slog.Logger) reading.Geocoder {
	var remote geocode.Searcher
	if cfg.Geocode.Enabled {
		remote = geocode.NewNominatim(geocode.NominatimConfig{
			BaseURL:           cfg.Geocode.BaseURL,
			UserAgent:         cfg.Geocode.UserAgent,
			Timeout:           cfg.Geocode.Timeout,
			RequestsPerSecond: cfg.Geocode.RequestsPerSecond,
		})
	} else {
		logger.Info("remote geocoding disabled, using the built-in city table only")
	}
	return geocode.New(remote, logger)
}

func provideReadingCache(cfg *config.Config, logger *slog.Logger) (reading.Cache, func()) {
	fallback := func() (reading.Cache, func()) {
		return readingcache.NewMemoryCache(cfg.Reading.CacheCapacity, cfg.Reading.CacheTTL), func() {}
	}
	if !cfg.Cache.Valkey.Enabled {
		return fallback()
	}
	opt, err := buildValkeyOptions(cfg.Cache.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return fallback()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return fallback()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return fallback()
	}
	logger.Info("reading valkey cache enabled", "addr", cfg.Cache.Valkey.Addr)
	return readingcache.NewValkeyCache(client, cfg.Cache.Valkey.Prefix, cfg.Reading.CacheTTL), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideReadingArchive(cfg *config.Config, logger *slog.Logger) (reading.Archive, func()) {
	fallback := readingarchive.NewMemoryArchive()
	switch cfg.Archive.Backend {
	case config.ArchivePostgres:
		archive, cleanup, err := openPostgresArchive(cfg.Archive.Postgres)
		if err != nil {
			logger.Error("postgres archive unavailable, using memory archive", "error", err)
			return fallback, func() {}
		}
		logger.Info("reading postgres archive enabled")
		return archive, cleanup
	case config.ArchiveS3:
		s3 := cfg.Archive.S3
		archive, err := readingarchive.NewS3Archive(readingarchive.S3Config{
			Endpoint:  s3.Endpoint,
			AccessKey: s3.AccessKey,
			SecretKey: s3.SecretKey,
			Bucket:    s3.Bucket,
			Region:    s3.Region,
		}, logger)
		if err != nil {
			logger.Error("s3 archive unavailable, using memory archive", "error", err)
			return fallback, func() {}
		}
		logger.Info("reading s3 archive enabled", "bucket", s3.Bucket)
		return archive, func() {}
	default:
		return fallback, func() {}
	}
}

func openPostgresArchive(cfg config.PostgresConfig) (*readingarchive.PostgresArchive, func(), error) {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.DSN))
	if err != nil {
		return nil, nil, err
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	archive := readingarchive.NewPostgresArchive(pool)
	if err := archive.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return archive, pool.Close, nil
}
