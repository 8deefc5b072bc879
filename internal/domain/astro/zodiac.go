package astro

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Element is the classical element associated with a sign.
type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// Modality is the quality of a sign.
type Modality string

const (
	Cardinal Modality = "Cardinal"
	Fixed    Modality = "Fixed"
	Mutable  Modality = "Mutable"
)

var (
	// ErrInvalidDate is returned for a month/day pair that is not on the calendar.
	ErrInvalidDate = errors.New("astro: invalid month/day")
	// ErrNoBoundary signals that a valid month/day matched no sign. It indicates
	// a broken boundary table and should never surface in practice.
	ErrNoBoundary = errors.New("astro: no zodiac boundary matched")
)

// Boundary is one row of the tropical zodiac table.
type Boundary struct {
	Sign         string
	Glyph        string
	StartMonth   int
	StartDay     int
	EndMonth     int
	EndDay       int
	Element      Element
	Modality     Modality
	RulingPlanet string
	Description  string
	Traits       []string
}

// ZodiacSign is a resolved sun placement.
type ZodiacSign struct {
	Sign         string   `json:"sign"`
	Glyph        string   `json:"glyph"`
	Decan        int      `json:"decan"`
	Element      Element  `json:"element"`
	Modality     Modality `json:"modality"`
	RulingPlanet string   `json:"rulingPlanet"`
	Description  string   `json:"description"`
	Traits       []string `json:"traits"`
}

// signOrder is the ecliptic order starting at 0° Aries; longitude buckets of
// 30° index into it.
var signOrder = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var boundaries = [12]Boundary{
	{
		Sign: "Aries", Glyph: "♈",
		StartMonth: 3, StartDay: 21, EndMonth: 4, EndDay: 19,
		Element: Fire, Modality: Cardinal, RulingPlanet: "Mars",
		Description: "Bold, ambitious, and fiercely independent. Aries charges into life headfirst, driven by a primal desire to be first and to forge new ground. Your fire is the spark that ignites action.",
		Traits:      []string{"courageous", "determined", "confident", "enthusiastic", "passionate"},
	},
	{
		Sign: "Taurus", Glyph: "♉",
		StartMonth: 4, StartDay: 20, EndMonth: 5, EndDay: 20,
		Element: Earth, Modality: Fixed, RulingPlanet: "Venus",
		Description: "Steadfast, sensual, and grounded in the physical world. Taurus builds a beautiful life through patience, persistence, and an unwavering connection to what matters most.",
		Traits:      []string{"reliable", "patient", "practical", "devoted", "sensual"},
	},
	{
		Sign: "Gemini", Glyph: "♊",
		StartMonth: 5, StartDay: 21, EndMonth: 6, EndDay: 20,
		Element: Air, Modality: Mutable, RulingPlanet: "Mercury",
		Description: "Quick-minded, curious, and endlessly versatile. Gemini navigates the world through communication and connection, weaving ideas and people together with intellectual agility.",
		Traits:      []string{"adaptable", "curious", "communicative", "witty", "versatile"},
	},
	{
		Sign: "Cancer", Glyph: "♋",
		StartMonth: 6, StartDay: 21, EndMonth: 7, EndDay: 22,
		Element: Water, Modality: Cardinal, RulingPlanet: "Moon",
		Description: "Deeply intuitive, nurturing, and emotionally powerful. Cancer moves through the world led by the heart, creating safe harbors of love and belonging for those fortunate enough to be in your inner circle.",
		Traits:      []string{"intuitive", "nurturing", "protective", "emotional", "loyal"},
	},
	{
		Sign: "Leo", Glyph: "♌",
		StartMonth: 7, StartDay: 23, EndMonth: 8, EndDay: 22,
		Element: Fire, Modality: Fixed, RulingPlanet: "Sun",
		Description: "Radiant, generous, and magnetically creative. Leo is the zodiac's royal heart, leading with warmth, commanding attention naturally, and inspiring others through sheer force of personality.",
		Traits:      []string{"creative", "generous", "warm-hearted", "dramatic", "confident"},
	},
	{
		Sign: "Virgo", Glyph: "♍",
		StartMonth: 8, StartDay: 23, EndMonth: 9, EndDay: 22,
		Element: Earth, Modality: Mutable, RulingPlanet: "Mercury",
		Description: "Analytical, devoted, and deeply thoughtful. Virgo finds meaning in the details, serving the world through precision, practical wisdom, and a quiet dedication to making things better.",
		Traits:      []string{"analytical", "practical", "diligent", "modest", "reliable"},
	},
	{
		Sign: "Libra", Glyph: "♎",
		StartMonth: 9, StartDay: 23, EndMonth: 10, EndDay: 22,
		Element: Air, Modality: Cardinal, RulingPlanet: "Venus",
		Description: "Harmonious, fair-minded, and aesthetically gifted. Libra navigates life seeking balance and beauty, bringing grace to relationships and a deep commitment to justice and partnership.",
		Traits:      []string{"diplomatic", "fair-minded", "social", "gracious", "idealistic"},
	},
	{
		Sign: "Scorpio", Glyph: "♏",
		StartMonth: 10, StartDay: 23, EndMonth: 11, EndDay: 21,
		Element: Water, Modality: Fixed, RulingPlanet: "Pluto",
		Description: "Intense, passionate, and profoundly transformative. Scorpio dives into the depths of experience, unafraid of darkness, and emerges with hard-won wisdom and an unshakable inner power.",
		Traits:      []string{"passionate", "resourceful", "determined", "perceptive", "magnetic"},
	},
	{
		Sign: "Sagittarius", Glyph: "♐",
		StartMonth: 11, StartDay: 22, EndMonth: 12, EndDay: 21,
		Element: Fire, Modality: Mutable, RulingPlanet: "Jupiter",
		Description: "Adventurous, philosophical, and endlessly optimistic. Sagittarius aims the arrow of their spirit toward the horizon, driven by a love of freedom, truth, and the grand adventure of life.",
		Traits:      []string{"adventurous", "optimistic", "philosophical", "honest", "enthusiastic"},
	},
	{
		Sign: "Capricorn", Glyph: "♑",
		StartMonth: 12, StartDay: 22, EndMonth: 1, EndDay: 19,
		Element: Earth, Modality: Cardinal, RulingPlanet: "Saturn",
		Description: "Ambitious, disciplined, and quietly powerful. Capricorn climbs steadily toward mastery, building an enduring legacy through patience, responsibility, and an unwavering focus on long-term goals.",
		Traits:      []string{"disciplined", "responsible", "ambitious", "patient", "strategic"},
	},
	{
		Sign: "Aquarius", Glyph: "♒",
		StartMonth: 1, StartDay: 20, EndMonth: 2, EndDay: 18,
		Element: Air, Modality: Fixed, RulingPlanet: "Uranus",
		Description: "Visionary, independent, and humanistic. Aquarius marches to the beat of their own drum, driven by a passion for progress, innovation, and the betterment of humanity.",
		Traits:      []string{"progressive", "original", "independent", "humanitarian", "inventive"},
	},
	{
		Sign: "Pisces", Glyph: "♓",
		StartMonth: 2, StartDay: 19, EndMonth: 3, EndDay: 20,
		Element: Water, Modality: Mutable, RulingPlanet: "Neptune",
		Description: "Empathic, artistic, and spiritually attuned. Pisces flows between the seen and unseen worlds, gifted with profound imagination, compassion, and an intuitive understanding of the human experience.",
		Traits:      []string{"compassionate", "artistic", "intuitive", "gentle", "wise"},
	},
}

// Boundaries returns a copy of the sign table in calendar order starting at Aries.
func Boundaries() []Boundary {
	out := make([]Boundary, len(boundaries))
	for i, b := range boundaries {
		b.Traits = slices.Clone(b.Traits)
		out[i] = b
	}
	return out
}

// LookupSign returns the table row for a sign name.
func LookupSign(name string) (Boundary, bool) {
	for _, b := range boundaries {
		if b.Sign == name {
			b.Traits = slices.Clone(b.Traits)
			return b, true
		}
	}
	return Boundary{}, false
}

// SignForLongitude maps an ecliptic longitude onto its 30° sign bucket.
func SignForLongitude(deg float64) string {
	idx := int(Normalize360(deg) / 30)
	return signOrder[idx%12]
}

// SunSign resolves a calendar month and day to its tropical sign and decan.
// The year is irrelevant; Feb 29 is accepted.
func SunSign(month, day int) (ZodiacSign, error) {
	if !validMonthDay(month, day) {
		return ZodiacSign{}, fmt.Errorf("%w: %02d-%02d", ErrInvalidDate, month, day)
	}
	for _, b := range boundaries {
		if !b.contains(month, day) {
			continue
		}
		return ZodiacSign{
			Sign:         b.Sign,
			Glyph:        b.Glyph,
			Decan:        b.decan(month, day),
			Element:      b.Element,
			Modality:     b.Modality,
			RulingPlanet: b.RulingPlanet,
			Description:  b.Description,
			Traits:       slices.Clone(b.Traits),
		}, nil
	}
	return ZodiacSign{}, fmt.Errorf("%w: %02d-%02d", ErrNoBoundary, month, day)
}

func (b Boundary) contains(month, day int) bool {
	if month == b.StartMonth && day >= b.StartDay {
		return true
	}
	if month == b.EndMonth && day <= b.EndDay {
		return true
	}
	// Capricorn wraps the year; no whole month lies strictly inside it.
	if b.StartMonth > b.EndMonth {
		return false
	}
	return month > b.StartMonth && month < b.EndMonth
}

func (b Boundary) decan(month, day int) int {
	var dayInSign int
	if month == b.StartMonth {
		dayInSign = day - b.StartDay
	} else {
		dayInSign = daysIn(b.StartMonth) - b.StartDay + day
	}
	switch {
	case dayInSign < 10:
		return 1
	case dayInSign < 20:
		return 2
	default:
		return 3
	}
}

// daysIn measures months against leap year 2000 so Feb 29 stays addressable.
func daysIn(month int) int {
	return time.Date(2000, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func validMonthDay(month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysIn(month)
}
