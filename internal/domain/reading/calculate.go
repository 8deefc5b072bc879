package reading

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yanqian/cosmic-blueprint/internal/domain/astro"
	"github.com/yanqian/cosmic-blueprint/internal/domain/chinese"
	"github.com/yanqian/cosmic-blueprint/internal/domain/lifestage"
	"github.com/yanqian/cosmic-blueprint/internal/domain/numerology"
	apperrors "github.com/yanqian/cosmic-blueprint/pkg/errors"
	"github.com/yanqian/cosmic-blueprint/pkg/util"
)

const (
	maxNameLength    = 200
	maxContextLength = 2000
)

// subject is a validated, trimmed request.
type subject struct {
	name      string
	dob       time.Time
	stage     lifestage.Stage
	birthTime string
	place     string
	latitude  *float64
	longitude *float64
	utcOffset *float64
	mind      string
	gender    string
	location  *GeoResult
}

func parseRequest(req Request, now time.Time) (subject, error) {
	s := subject{
		name:      strings.TrimSpace(req.FullName),
		birthTime: strings.TrimSpace(req.BirthTime),
		place:     strings.TrimSpace(req.BirthPlace),
		mind:      strings.TrimSpace(req.WhatsOnYourMind),
		gender:    strings.TrimSpace(req.Gender),
		latitude:  req.Latitude,
		longitude: req.Longitude,
		utcOffset: req.TimezoneOffsetHours,
	}

	var missing []string
	if s.name == "" {
		missing = append(missing, "fullName")
	}
	if strings.TrimSpace(req.DateOfBirth) == "" {
		missing = append(missing, "dateOfBirth")
	}
	if strings.TrimSpace(req.LifeStage) == "" {
		missing = append(missing, "lifeStage")
	}
	if len(missing) > 0 {
		return subject{}, invalid("missing required fields: "+strings.Join(missing, ", "), nil)
	}
	if utf8.RuneCountInString(s.name) > maxNameLength {
		return subject{}, invalid("fullName is too long", nil)
	}
	if utf8.RuneCountInString(s.mind) > maxContextLength {
		return subject{}, invalid("whatsOnYourMind is too long", nil)
	}

	dob, err := util.ParseCivilDate(req.DateOfBirth)
	if err != nil {
		return subject{}, invalid("dateOfBirth must be formatted as YYYY-MM-DD", err)
	}
	if dob.After(now) {
		return subject{}, invalid("dateOfBirth cannot be in the future", nil)
	}
	s.dob = dob
	s.stage = lifestage.Normalize(lifestage.Stage(strings.TrimSpace(req.LifeStage)))

	if (s.latitude == nil) != (s.longitude == nil) {
		return subject{}, invalid("latitude and longitude must be supplied together", nil)
	}
	if s.latitude != nil && (*s.latitude < -90 || *s.latitude > 90) {
		return subject{}, invalid("latitude must be within [-90, 90]", nil)
	}
	if s.longitude != nil && (*s.longitude < -180 || *s.longitude > 180) {
		return subject{}, invalid("longitude must be within [-180, 180]", nil)
	}
	if s.utcOffset != nil && (*s.utcOffset < -12 || *s.utcOffset > 14) {
		return subject{}, invalid("timezoneOffsetHours must be within [-12, 14]", nil)
	}
	return s, nil
}

func invalid(msg string, err error) error {
	return apperrors.Wrap(apperrors.CodeInvalidInput, msg, err)
}

func (s subject) hasCoordinates() bool {
	return s.latitude != nil && s.longitude != nil
}

// applyLocation fills coordinates and, when unknown, the offset from a
// resolved place. Explicit request values win.
func (s *subject) applyLocation(geo GeoResult) {
	s.location = &geo
	if !s.hasCoordinates() {
		lat, lon := geo.Latitude, geo.Longitude
		s.latitude, s.longitude = &lat, &lon
	}
	if s.utcOffset == nil {
		tz := geo.TimezoneOffsetHours
		s.utcOffset = &tz
	}
}

func calculate(s subject, now time.Time) (Profile, error) {
	western, err := astro.BuildWesternProfile(astro.WesternInput{
		Date:           s.dob,
		BirthTime:      s.birthTime,
		Latitude:       s.latitude,
		Longitude:      s.longitude,
		UTCOffsetHours: s.utcOffset,
	})
	if err != nil {
		if errors.Is(err, astro.ErrInvalidDate) {
			return Profile{}, invalid("dateOfBirth is not a calendar date", err)
		}
		return Profile{}, apperrors.Wrap(apperrors.CodeInternal, "sun sign resolution failed", err)
	}

	age := lifestage.Age(s.dob, now)
	return Profile{
		Numerology:       numerology.BuildProfile(s.name, s.dob, now.Year()),
		WesternAstro:     western,
		ChineseZodiac:    chinese.ForDate(s.dob),
		LifeStageContext: lifestage.Classify(age, s.stage),
		Age:              age,
		Location:         s.location,
	}, nil
}
