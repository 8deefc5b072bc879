package reading

import (
	"time"

	"github.com/yanqian/cosmic-blueprint/internal/domain/astro"
	"github.com/yanqian/cosmic-blueprint/internal/domain/chinese"
	"github.com/yanqian/cosmic-blueprint/internal/domain/lifestage"
	"github.com/yanqian/cosmic-blueprint/internal/domain/numerology"
	"github.com/yanqian/cosmic-blueprint/pkg/metrics"
)

// Config drives narrative generation and caching.
type Config struct {
	Model        string
	Temperature  float32
	MaxTokens    int
	SystemPrompt string
	LLMTimeout   time.Duration
	CacheTTL     time.Duration
}

// Request is the birth data submitted for a reading.
type Request struct {
	FullName            string   `json:"fullName"`
	DateOfBirth         string   `json:"dateOfBirth"`
	LifeStage           string   `json:"lifeStage"`
	BirthTime           string   `json:"birthTime,omitempty"`
	BirthPlace          string   `json:"birthPlace,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	TimezoneOffsetHours *float64 `json:"timezoneOffsetHours,omitempty"`
	WhatsOnYourMind     string   `json:"whatsOnYourMind,omitempty"`
	Gender              string   `json:"gender,omitempty"`
}

// GeoResult is a resolved birth place. The offset is standard time and
// ignores daylight saving.
type GeoResult struct {
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	TimezoneOffsetHours float64 `json:"timezoneOffsetHours"`
	Source              string  `json:"source"`
}

// Profile is everything computed from birth data without the language model.
type Profile struct {
	Numerology       numerology.Profile   `json:"numerology"`
	WesternAstro     astro.WesternProfile `json:"westernAstro"`
	ChineseZodiac    chinese.Profile      `json:"chineseZodiac"`
	LifeStageContext lifestage.Context    `json:"lifeStageContext"`
	Age              int                  `json:"age"`
	Location         *GeoResult           `json:"location,omitempty"`
}

// Narrative is the model-written part of a reading. Every field is nil when
// generation failed or was skipped.
type Narrative struct {
	CombinedAnalysis *string  `json:"combinedAnalysis"`
	CosmicSnapshot   *string  `json:"cosmicSnapshot"`
	CurrentSeason    *string  `json:"currentSeason"`
	CosmicToolkit    []string `json:"cosmicToolkit"`
}

// Response is a full reading.
type Response struct {
	ID string `json:"id,omitempty"`
	Profile
	Narrative
	NarrativeError string              `json:"narrativeError,omitempty"`
	TokenUsage     *metrics.TokenUsage `json:"tokenUsage,omitempty"`
	Cached         bool                `json:"cached"`
	CreatedAt      time.Time           `json:"createdAt"`
}
