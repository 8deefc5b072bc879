package chinese

import (
	"slices"
	"time"
)

// Profile is the Chinese zodiac placement of a birth date.
type Profile struct {
	Animal             string        `json:"animal"`
	Emoji              string        `json:"emoji"`
	Element            string        `json:"element"`
	YinYang            string        `json:"yinYang"`
	Description        string        `json:"description"`
	ElementDescription string        `json:"elementDescription"`
	Compatibility      Compatibility `json:"compatibility"`
	ZodiacYear         int           `json:"zodiacYear"`
	// Approximate is set when the date lies outside the Lunar New Year table
	// and the calendar year was used as the zodiac year.
	Approximate bool `json:"approximate,omitempty"`
}

// Compatibility lists the traditionally harmonious and difficult pairings.
type Compatibility struct {
	BestWith    []string `json:"bestWith"`
	Challenging []string `json:"challenging"`
}

type animal struct {
	name        string
	emoji       string
	description string
	best        []string
	challenging []string
}

// animals is ordered from Rat, the sign of 1924.
var animals = [12]animal{
	{
		name: "Rat", emoji: "🐀",
		description: "Quick-witted, resourceful, and versatile. The Rat is charming and clever, with a natural ability to adapt to any situation. You have a sharp eye for opportunity and an instinct for survival that serves you well in life.",
		best:        []string{"Dragon", "Monkey", "Ox"},
		challenging: []string{"Horse", "Rooster"},
	},
	{
		name: "Ox", emoji: "🐂",
		description: "Diligent, dependable, and strong. The Ox embodies steady determination and honest effort. You have an incredible work ethic and a quiet confidence that earns deep respect from those around you.",
		best:        []string{"Rat", "Snake", "Rooster"},
		challenging: []string{"Tiger", "Dragon", "Horse", "Goat"},
	},
	{
		name: "Tiger", emoji: "🐅",
		description: "Brave, competitive, and magnetic. The Tiger is a natural leader who faces life with courage and passion. Your charisma draws people to you, and your fierce independence keeps you on your own unique path.",
		best:        []string{"Dragon", "Horse", "Pig"},
		challenging: []string{"Ox", "Tiger", "Snake", "Monkey"},
	},
	{
		name: "Rabbit", emoji: "🐇",
		description: "Gentle, elegant, and perceptive. The Rabbit moves through life with grace and diplomacy. You have refined taste, deep empathy, and an ability to create peace and beauty wherever you go.",
		best:        []string{"Goat", "Monkey", "Dog", "Pig"},
		challenging: []string{"Snake", "Rooster"},
	},
	{
		name: "Dragon", emoji: "🐉",
		description: "Ambitious, energetic, and fearless. The Dragon is the most powerful sign in Chinese astrology. You radiate confidence and are destined for greatness; others are naturally drawn to your strength and vitality.",
		best:        []string{"Rooster", "Rat", "Monkey"},
		challenging: []string{"Ox", "Goat", "Dog"},
	},
	{
		name: "Snake", emoji: "🐍",
		description: "Wise, intuitive, and enigmatic. The Snake sees beneath the surface of things. You possess deep philosophical wisdom, natural elegance, and a powerful intuition that guides your decisions.",
		best:        []string{"Dragon", "Rooster"},
		challenging: []string{"Tiger", "Rabbit", "Snake", "Horse", "Pig"},
	},
	{
		name: "Horse", emoji: "🐎",
		description: "Energetic, free-spirited, and warm. The Horse lives for adventure and freedom. You have boundless enthusiasm, a magnetic personality, and an infectious optimism that lights up every room.",
		best:        []string{"Tiger", "Goat", "Rabbit"},
		challenging: []string{"Rat", "Ox", "Rooster", "Horse"},
	},
	{
		name: "Goat", emoji: "🐐",
		description: "Creative, gentle, and compassionate. The Goat (or Sheep) is the artist of the zodiac. You have a rich inner life, deep appreciation for beauty, and a tender heart that feels deeply for others.",
		best:        []string{"Rabbit", "Horse", "Pig"},
		challenging: []string{"Ox", "Tiger", "Dog"},
	},
	{
		name: "Monkey", emoji: "🐒",
		description: "Clever, inventive, and mischievous. The Monkey is the ultimate problem-solver. You have quick intelligence, irresistible charm, and an unmatched ability to find creative solutions to any challenge.",
		best:        []string{"Ox", "Rabbit"},
		challenging: []string{"Tiger", "Pig"},
	},
	{
		name: "Rooster", emoji: "🐓",
		description: "Observant, hardworking, and courageous. The Rooster is honest and straightforward, with an eye for detail that misses nothing. You take pride in your work and aren't afraid to speak your truth.",
		best:        []string{"Ox", "Snake"},
		challenging: []string{"Rat", "Rabbit", "Horse", "Rooster", "Dog", "Pig"},
	},
	{
		name: "Dog", emoji: "🐕",
		description: "Loyal, honest, and kind. The Dog is the most faithful companion in the zodiac. You have a strong sense of justice, unwavering loyalty to those you love, and a warm heart that values integrity above all.",
		best:        []string{"Rabbit", "Tiger"},
		challenging: []string{"Dragon", "Goat", "Rooster"},
	},
	{
		name: "Pig", emoji: "🐖",
		description: "Generous, compassionate, and sincere. The Pig approaches life with an open heart and genuine warmth. You are generous to a fault, blessed with good fortune, and bring joy to everyone around you.",
		best:        []string{"Tiger", "Rabbit", "Goat"},
		challenging: []string{"Snake", "Monkey"},
	},
}

type element struct {
	name        string
	description string
}

// elements follow the heavenly stems; each covers two consecutive years.
var elements = [5]element{
	{"Wood", "Growth, creativity, and flexibility. Wood energy brings expansion, generosity, and a pioneering spirit."},
	{"Fire", "Passion, dynamism, and leadership. Fire energy brings enthusiasm, warmth, and a magnetic presence."},
	{"Earth", "Stability, nourishment, and practicality. Earth energy brings groundedness, reliability, and nurturing wisdom."},
	{"Metal", "Precision, determination, and strength. Metal energy brings discipline, focus, and unwavering resolve."},
	{"Water", "Wisdom, intuition, and adaptability. Water energy brings depth, empathy, and the ability to flow through obstacles."},
}

// ZodiacYear returns the zodiac year a calendar date belongs to. Dates before
// that year's Lunar New Year belong to the previous zodiac year. Outside the
// table range the calendar year is returned and exact is false.
func ZodiacYear(date time.Time) (year int, exact bool) {
	y, m, d := date.Date()
	if y < firstTableYear || y > lastTableYear {
		return y, false
	}
	lny := lunarNewYear[y-firstTableYear]
	if int(m) < lny.month || (int(m) == lny.month && d < lny.day) {
		return y - 1, true
	}
	return y, true
}

// ForDate resolves the full profile for a birth date.
func ForDate(date time.Time) Profile {
	year, exact := ZodiacYear(date)
	p := ForYear(year)
	p.Approximate = !exact
	return p
}

// ForYear resolves the profile of a zodiac year.
func ForYear(year int) Profile {
	a := animals[mod(year-firstTableYear, 12)]
	e := elements[mod(year-4, 10)/2]
	polarity := "Yin"
	if mod(year, 2) == 0 {
		polarity = "Yang"
	}
	return Profile{
		Animal:             a.name,
		Emoji:              a.emoji,
		Element:            e.name,
		YinYang:            polarity,
		Description:        a.description,
		ElementDescription: e.description,
		Compatibility: Compatibility{
			BestWith:    slices.Clone(a.best),
			Challenging: slices.Clone(a.challenging),
		},
		ZodiacYear: year,
	}
}

// Animals returns the twelve animals in cycle order starting at Rat.
func Animals() []string {
	out := make([]string, len(animals))
	for i, a := range animals {
		out[i] = a.name
	}
	return out
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
