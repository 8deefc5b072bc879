package reading

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/yanqian/cosmic-blueprint/internal/infra/llm/chatgpt"
	apperrors "github.com/yanqian/cosmic-blueprint/pkg/errors"
	"github.com/yanqian/cosmic-blueprint/pkg/metrics"
	"github.com/yanqian/cosmic-blueprint/pkg/util"
)

const defaultLLMTimeout = 90 * time.Second

// Service exposes reading generation and lookup.
type Service interface {
	Generate(ctx context.Context, req Request) (Response, error)
	Profile(ctx context.Context, req Request) (Profile, error)
	Get(ctx context.Context, id string) (Response, error)
}

type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Geocoder resolves a free-text birth place.
type Geocoder interface {
	Lookup(ctx context.Context, place string) (GeoResult, bool, error)
}

// Cache keeps finished readings by request fingerprint.
type Cache interface {
	Get(ctx context.Context, key string) (Response, bool, error)
	Set(ctx context.Context, key string, resp Response) error
}

// Archive persists readings by id so they can be fetched again.
type Archive interface {
	Save(ctx context.Context, resp Response) error
	Get(ctx context.Context, id string) (Response, bool, error)
}

// TokenEstimator approximates usage when the provider omits it.
type TokenEstimator interface {
	Estimate(prompt []chatgpt.Message, completion string) metrics.TokenUsage
}

type service struct {
	cfg      Config
	client   ChatClient
	geocoder Geocoder
	cache    Cache
	archive  Archive
	tokens   TokenEstimator
	logger   *slog.Logger
	now      func() time.Time
	group    singleflight.Group
}

// NewService wires up the reading domain. Every collaborator except the
// logger may be nil; the matching step is then skipped.
func NewService(cfg Config, client ChatClient, geocoder Geocoder, cache Cache, archive Archive, tokens TokenEstimator, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		client:   client,
		geocoder: geocoder,
		cache:    cache,
		archive:  archive,
		tokens:   tokens,
		logger:   logger.With("component", "reading.service"),
		now:      util.NowUTC,
	}
}

func (s *service) Generate(ctx context.Context, req Request) (Response, error) {
	now := s.now()
	sub, err := parseRequest(req, now)
	if err != nil {
		return Response{}, err
	}
	key := cacheKey(sub, now.Year())

	if resp, ok := s.cached(ctx, key); ok {
		return resp, nil
	}

	// Identical concurrent requests share one model call. The shared work
	// outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	v, err, collapsed := s.group.Do(key, func() (any, error) {
		return s.generate(shared, sub, key, now)
	})
	if err != nil {
		return Response{}, err
	}
	if collapsed {
		s.logger.Debug("reading request collapsed", "key", key)
	}
	return v.(Response), nil
}

func (s *service) cached(ctx context.Context, key string) (Response, bool) {
	if s.cache == nil {
		return Response{}, false
	}
	resp, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("reading cache read failed", "key", key, "error", err)
		return Response{}, false
	}
	if !ok {
		return Response{}, false
	}
	resp.Cached = true
	s.logger.Info("reading served from cache", "key", key, "id", resp.ID)
	return resp, true
}

func (s *service) generate(ctx context.Context, sub subject, key string, now time.Time) (Response, error) {
	start := time.Now()
	s.resolvePlace(ctx, &sub)

	profile, err := calculate(sub, now)
	if err != nil {
		return Response{}, err
	}

	resp := Response{Profile: profile, CreatedAt: now}
	resp.Narrative, resp.TokenUsage, err = s.narrate(ctx, sub, profile)
	if err != nil {
		resp.NarrativeError = "narrative unavailable: " + err.Error()
		s.logger.Warn("reading narrative failed", "key", key, "error", err)
	}

	if s.archive != nil {
		resp.ID = uuid.NewString()
		if err := s.archive.Save(ctx, resp); err != nil {
			s.logger.Warn("reading archive write failed", "key", key, "id", resp.ID, "error", err)
			resp.ID = ""
		}
	}

	// Degraded readings are not cached so the next request retries the model.
	if s.cache != nil && resp.NarrativeError == "" {
		if err := s.cache.Set(ctx, key, resp); err != nil {
			s.logger.Warn("reading cache write failed", "key", key, "error", err)
		}
	}

	s.logger.Info("reading generated",
		"key", key,
		"id", resp.ID,
		"moon", resp.WesternAstro.MoonSign != nil,
		"rising", resp.WesternAstro.RisingSign != nil,
		"narrative", resp.NarrativeError == "",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

func (s *service) Profile(ctx context.Context, req Request) (Profile, error) {
	now := s.now()
	sub, err := parseRequest(req, now)
	if err != nil {
		return Profile{}, err
	}
	s.resolvePlace(ctx, &sub)
	return calculate(sub, now)
}

func (s *service) Get(ctx context.Context, id string) (Response, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "reading id must be a UUID", err)
	}
	if s.archive == nil {
		return Response{}, apperrors.Wrap(apperrors.CodeNotFound, "reading not found", nil)
	}
	resp, ok, err := s.archive.Get(ctx, id)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load reading", err)
	}
	if !ok {
		return Response{}, apperrors.Wrap(apperrors.CodeNotFound, "reading not found", nil)
	}
	return resp, nil
}

// resolvePlace geocodes the birth place when coordinates were not supplied.
// Lookup failures only lower precision.
func (s *service) resolvePlace(ctx context.Context, sub *subject) {
	if s.geocoder == nil || sub.place == "" || sub.hasCoordinates() {
		return
	}
	geo, ok, err := s.geocoder.Lookup(ctx, sub.place)
	if err != nil {
		s.logger.Warn("birth place lookup failed", "place", sub.place, "error", err)
		return
	}
	if !ok {
		s.logger.Info("birth place not found", "place", sub.place)
		return
	}
	sub.applyLocation(geo)
}

var errNoClient = errors.New("language model is not configured")

func (s *service) narrate(ctx context.Context, sub subject, profile Profile) (Narrative, *metrics.TokenUsage, error) {
	if s.client == nil {
		return Narrative{}, nil, errNoClient
	}

	timeout := s.cfg.LLMTimeout
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	messages := []chatgpt.Message{
		{Role: "system", Content: s.systemPrompt()},
		{Role: "user", Content: buildUserPrompt(sub, profile)},
	}
	completion, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:          s.cfg.Model,
		Messages:       messages,
		Temperature:    s.cfg.Temperature,
		MaxTokens:      s.cfg.MaxTokens,
		ResponseFormat: chatgpt.JSONObject,
	})
	if err != nil {
		return Narrative{}, nil, err
	}
	content, ok := completion.FirstContent()
	if !ok {
		return Narrative{}, nil, errors.New("model returned no choices")
	}

	narrative, structured := parseNarrative(content)
	if !structured {
		s.logger.Warn("reading narrative was not JSON; keeping raw text", "length", len(content))
	}
	return narrative, s.usage(completion, messages, content), nil
}

func (s *service) usage(completion chatgpt.ChatCompletionResponse, messages []chatgpt.Message, content string) *metrics.TokenUsage {
	if u := completion.Usage; u != nil {
		usage := metrics.TokenUsage{
			PromptTokens:     u.PromptTokens,
			CompletionTokens: u.CompletionTokens,
			TotalTokens:      u.TotalTokens,
		}.Normalize()
		if !usage.IsZero() {
			return &usage
		}
	}
	if s.tokens == nil {
		return nil
	}
	usage := s.tokens.Estimate(messages, content)
	return &usage
}
