package chinese

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTableCoversEveryYearInRange(t *testing.T) {
	require.Len(t, lunarNewYear, lastTableYear-firstTableYear+1)
	for i, lny := range lunarNewYear {
		year := firstTableYear + i
		// Lunar New Year always falls between Jan 21 and Feb 20.
		inWindow := (lny.month == 1 && lny.day >= 21) || (lny.month == 2 && lny.day <= 20)
		require.Truef(t, inWindow, "%d: %d-%d", year, lny.month, lny.day)
	}
}

func TestForYearAnchors(t *testing.T) {
	require.Equal(t, "Rat", ForYear(1924).Animal)
	require.Equal(t, "Rat", ForYear(1984).Animal)
	require.Equal(t, "Wood", ForYear(1924).Element)
	require.Equal(t, "Yang", ForYear(1924).YinYang)

	dragon := ForYear(2024)
	require.Equal(t, "Dragon", dragon.Animal)
	require.Equal(t, "Wood", dragon.Element)
	require.Equal(t, "Yang", dragon.YinYang)
	require.Equal(t, "🐉", dragon.Emoji)
}

func TestForYearTwelveYearAnimalCycle(t *testing.T) {
	for y := 1900; y < 2100; y++ {
		require.Equal(t, ForYear(y).Animal, ForYear(y+12).Animal, y)
	}
}

func TestForYearSixtyYearCycle(t *testing.T) {
	seen := make(map[string]int)
	for y := 1924; y < 1984; y++ {
		p := ForYear(y)
		key := fmt.Sprintf("%s/%s", p.Element, p.Animal)
		prev, dup := seen[key]
		require.Falsef(t, dup, "%s repeats in %d and %d", key, prev, y)
		seen[key] = y

		next := ForYear(y + 60)
		require.Equal(t, p.Animal, next.Animal)
		require.Equal(t, p.Element, next.Element)
		require.Equal(t, p.YinYang, next.YinYang)
	}
	require.Len(t, seen, 60)
}

func TestForYearPolarityAlternates(t *testing.T) {
	for y := 2020; y < 2030; y++ {
		want := "Yang"
		if y%2 != 0 {
			want = "Yin"
		}
		require.Equal(t, want, ForYear(y).YinYang, y)
		require.NotEqual(t, ForYear(y).YinYang, ForYear(y+1).YinYang)
	}
}

func TestForYearHandlesNegativeOffsets(t *testing.T) {
	p := ForYear(1900)
	require.Equal(t, "Rat", p.Animal)
	require.Equal(t, "Metal", p.Element)
}

func TestForDateLunarNewYearBoundary(t *testing.T) {
	cases := []struct {
		at     time.Time
		year   int
		animal string
	}{
		{date(2025, time.January, 1), 2024, "Dragon"},
		{date(2025, time.January, 28), 2024, "Dragon"},
		{date(2025, time.January, 29), 2025, "Snake"},
		{date(2025, time.February, 1), 2025, "Snake"},
		{date(1990, time.January, 26), 1989, "Snake"},
		{date(1990, time.January, 27), 1990, "Horse"},
		{date(1924, time.February, 4), 1923, "Pig"},
	}
	for _, tc := range cases {
		p := ForDate(tc.at)
		require.Equal(t, tc.year, p.ZodiacYear, tc.at)
		require.Equal(t, tc.animal, p.Animal, tc.at)
		require.False(t, p.Approximate, tc.at)
	}
	require.Equal(t, "Wood", ForDate(date(2025, time.January, 1)).Element)
	require.Equal(t, "Yang", ForDate(date(2025, time.January, 1)).YinYang)
}

func TestForDateOutsideTableIsFlagged(t *testing.T) {
	early := ForDate(date(1923, time.January, 10))
	require.True(t, early.Approximate)
	require.Equal(t, 1923, early.ZodiacYear)

	late := ForDate(date(2045, time.February, 20))
	require.True(t, late.Approximate)
	require.Equal(t, 2045, late.ZodiacYear)

	_, exact := ZodiacYear(date(2044, time.December, 31))
	require.True(t, exact)
}

func TestCompatibilityIsCopied(t *testing.T) {
	p := ForYear(1924)
	p.Compatibility.BestWith[0] = "Cat"
	require.Equal(t, "Dragon", ForYear(1924).Compatibility.BestWith[0])
}

func TestAnimals(t *testing.T) {
	got := Animals()
	require.Len(t, got, 12)
	require.Equal(t, "Rat", got[0])
	require.Equal(t, "Pig", got[11])
}
