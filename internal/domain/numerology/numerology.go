package numerology

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letterValues is the Pythagorean chart: A, J, S = 1 through I, R = 9.
var letterValues = map[rune]int{
	'A': 1, 'J': 1, 'S': 1,
	'B': 2, 'K': 2, 'T': 2,
	'C': 3, 'L': 3, 'U': 3,
	'D': 4, 'M': 4, 'V': 4,
	'E': 5, 'N': 5, 'W': 5,
	'F': 6, 'O': 6, 'X': 6,
	'G': 7, 'P': 7, 'Y': 7,
	'H': 8, 'Q': 8, 'Z': 8,
	'I': 9, 'R': 9,
}

func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// IsMaster reports whether n is one of the master numbers that are never reduced.
func IsMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// Reduce sums decimal digits until a single digit or a master number remains.
func Reduce(n int) int {
	if n < 0 {
		n = -n
	}
	for n > 9 && !IsMaster(n) {
		n = digitSum(n)
	}
	return n
}

func digitSum(n int) int {
	sum := 0
	for _, d := range strconv.Itoa(n) {
		sum += int(d - '0')
	}
	return sum
}

// LifePath reduces month, day and the digit sum of the year separately, then
// reduces their total.
func LifePath(date time.Time) int {
	y, m, d := date.Date()
	return cycleNumber(int(m), d, y)
}

// PersonalYear is the life path formula with the birth year swapped for currentYear.
func PersonalYear(date time.Time, currentYear int) int {
	_, m, d := date.Date()
	return cycleNumber(int(m), d, currentYear)
}

func cycleNumber(month, day, year int) int {
	return Reduce(Reduce(month) + Reduce(day) + Reduce(digitSum(year)))
}

// Expression sums every letter of the name.
func Expression(name string) int {
	return Reduce(sumLetters(name, func(rune) bool { return true }))
}

// SoulUrge sums the vowels of the name.
func SoulUrge(name string) int {
	return Reduce(sumLetters(name, isVowel))
}

// Personality sums the consonants of the name.
func Personality(name string) int {
	return Reduce(sumLetters(name, func(r rune) bool { return !isVowel(r) }))
}

func sumLetters(name string, keep func(rune) bool) int {
	sum := 0
	for _, r := range foldName(name) {
		v, ok := letterValues[r]
		if !ok || !keep(r) {
			continue
		}
		sum += v
	}
	return sum
}

var stripMarks = runes.Remove(runes.In(unicode.Mn))

// foldName upper-cases a name and strips combining accents so that "José"
// scores like "JOSE". Letters outside A-Z are ignored by the chart.
func foldName(name string) string {
	t := transform.Chain(norm.NFD, stripMarks, norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ToUpper(folded)
}

// Number is a computed value with its reading.
type Number struct {
	Number         int            `json:"number"`
	Interpretation Interpretation `json:"interpretation"`
}

// Profile holds the five core numbers.
type Profile struct {
	LifePath     Number `json:"lifePath"`
	Expression   Number `json:"expression"`
	SoulUrge     Number `json:"soulUrge"`
	Personality  Number `json:"personality"`
	PersonalYear Number `json:"personalYear"`
}

// BuildProfile computes all five numbers. currentYear drives the personal year
// so callers control the clock.
func BuildProfile(name string, date time.Time, currentYear int) Profile {
	number := func(kind Kind, n int) Number {
		return Number{Number: n, Interpretation: Interpret(kind, n)}
	}
	return Profile{
		LifePath:     number(KindLifePath, LifePath(date)),
		Expression:   number(KindExpression, Expression(name)),
		SoulUrge:     number(KindSoulUrge, SoulUrge(name)),
		Personality:  number(KindPersonality, Personality(name)),
		PersonalYear: number(KindPersonalYear, PersonalYear(date, currentYear)),
	}
}
