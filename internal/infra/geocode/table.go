package geocode

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

const (
	sourceTable = "table"
	// minPartialMatch keeps short fragments like "la" from matching half the table.
	minPartialMatch = 3
)

// Letters that carry no combining mark under NFD.
var foldLetters = strings.NewReplacer("ı", "i", "ł", "l", "ø", "o", "đ", "d", "ß", "ss")

var cityIndex = func() map[string]int {
	idx := make(map[string]int, len(cities))
	for i, c := range cities {
		idx[c.name] = i
	}
	return idx
}()

// Normalize lowercases a place name, strips diacritics, drops anything that is
// not a letter, digit or space, and collapses whitespace.
func Normalize(place string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(place))
	if err != nil {
		folded = strings.ToLower(place)
	}
	folded = foldLetters.Replace(folded)

	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// LookupTable resolves a place from the built-in city table: exact name, then
// the part before the first comma, then the first city whose name contains or
// is contained in the input.
func LookupTable(place string) (reading.GeoResult, bool) {
	full := Normalize(place)
	if full == "" {
		return reading.GeoResult{}, false
	}
	if i, ok := cityIndex[full]; ok {
		return cities[i].result(), true
	}

	head, _, found := strings.Cut(place, ",")
	if found {
		if i, ok := cityIndex[Normalize(head)]; ok {
			return cities[i].result(), true
		}
	}

	if len(full) < minPartialMatch {
		return reading.GeoResult{}, false
	}
	for _, c := range cities {
		if strings.Contains(full, c.name) || strings.Contains(c.name, full) {
			return c.result(), true
		}
	}
	return reading.GeoResult{}, false
}

func (c city) result() reading.GeoResult {
	return reading.GeoResult{
		Latitude:            c.latitude,
		Longitude:           c.longitude,
		TimezoneOffsetHours: c.offset,
		Source:              sourceTable,
	}
}
