package astro

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJulianDayKnownEpochs(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"j2000", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"sputnik", time.Date(1957, 10, 4, 19, 26, 24, 0, time.UTC), 2436116.31},
		{"january shifts year", time.Date(1987, 1, 27, 0, 0, 0, 0, time.UTC), 2446822.5},
		{"april midnight", time.Date(1992, 4, 12, 0, 0, 0, 0, time.UTC), 2448724.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, JulianDay(tc.at), 1e-6)
		})
	}
}

func TestJulianDayReadsInstantInUTC(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*3600)
	local := time.Date(2000, 1, 1, 15, 0, 0, 0, zone)
	require.InDelta(t, 2451545.0, JulianDay(local), 1e-9)
}

func TestNormalize360(t *testing.T) {
	require.Equal(t, 0.0, Normalize360(360))
	require.Equal(t, 0.0, Normalize360(-720))
	require.InDelta(t, 350, Normalize360(-10), 1e-12)
	require.InDelta(t, 10, Normalize360(730), 1e-12)
}

func TestMoonLongitudeMatchesWorkedExample(t *testing.T) {
	// 1992-04-12 0h: apparent longitude 133.162655°, geometric 133.167265°.
	got := MoonLongitude(2448724.5)
	require.InDelta(t, 133.162655, got, 0.05)
	require.Equal(t, "Leo", SignForLongitude(got))
}

func TestMoonLongitudeAtNewMoonTracksSun(t *testing.T) {
	// New moon of 2000-01-06 18:14 UT, solar longitude about 285.8°.
	jd := JulianDay(time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC))
	require.InDelta(t, 285.8, MoonLongitude(jd), 0.5)
}

func TestMoonLongitudeBoundedAndDeterministic(t *testing.T) {
	for jd := 2415020.5; jd < 2488070.5; jd += 97.37 {
		first := MoonLongitude(jd)
		require.GreaterOrEqual(t, first, 0.0)
		require.Less(t, first, 360.0)
		require.False(t, math.IsNaN(first))
		require.Equal(t, first, MoonLongitude(jd))
	}
}

func TestMoonLongitudeAdvancesThroughSigns(t *testing.T) {
	// Mean motion is about 13.18° a day, so a day's step moves forward by
	// roughly 11-15° and never wraps backwards.
	start := JulianDay(time.Date(1990, 7, 15, 0, 0, 0, 0, time.UTC))
	prev := MoonLongitude(start)
	for i := 1; i <= 60; i++ {
		cur := MoonLongitude(start + float64(i))
		step := Normalize360(cur - prev)
		require.Greater(t, step, 10.0)
		require.Less(t, step, 16.5)
		prev = cur
	}
}

func TestGreenwichSiderealTime(t *testing.T) {
	// 1987-04-10 0h UT: 13h10m46.3668s.
	jd := JulianDay(time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC))
	require.InDelta(t, 197.693195, GreenwichSiderealTime(jd), 1e-3)
}

func TestRisingLongitudeIsCoarseApproximation(t *testing.T) {
	jd := JulianDay(time.Date(1990, 7, 15, 14, 30, 0, 0, time.UTC))

	equator := RisingLongitude(jd, 0, 0)
	require.InDelta(t, GreenwichSiderealTime(jd), equator, 1e-9)

	// Latitude only nudges the point; it never exceeds 15°.
	north := RisingLongitude(jd, 90, 0)
	require.InDelta(t, 15, Normalize360(north-equator), 1e-9)
	south := RisingLongitude(jd, -90, 0)
	require.InDelta(t, 345, Normalize360(south-equator), 1e-9)

	// East-positive longitude shifts one-for-one.
	require.InDelta(t, 30, Normalize360(RisingLongitude(jd, 0, 30)-equator), 1e-9)
}

func TestSignForLongitudeBuckets(t *testing.T) {
	require.Equal(t, "Aries", SignForLongitude(0))
	require.Equal(t, "Aries", SignForLongitude(29.999))
	require.Equal(t, "Taurus", SignForLongitude(30))
	require.Equal(t, "Pisces", SignForLongitude(359.999))
	require.Equal(t, "Pisces", SignForLongitude(-0.5))
}

func TestSunSignCoversEveryCalendarDayOnce(t *testing.T) {
	for month := 1; month <= 12; month++ {
		for day := 1; day <= daysIn(month); day++ {
			matches := 0
			for _, b := range boundaries {
				if b.contains(month, day) {
					matches++
				}
			}
			require.Equalf(t, 1, matches, "%02d-%02d", month, day)

			sign, err := SunSign(month, day)
			require.NoError(t, err)
			require.Contains(t, []int{1, 2, 3}, sign.Decan, "%02d-%02d", month, day)
		}
	}
}

func TestSunSignCusps(t *testing.T) {
	cases := []struct {
		month, day int
		sign       string
		decan      int
	}{
		{12, 21, "Sagittarius", 3},
		{12, 22, "Capricorn", 1},
		{1, 19, "Capricorn", 3},
		{1, 20, "Aquarius", 1},
		{3, 20, "Pisces", 3},
		{3, 21, "Aries", 1},
		{2, 29, "Pisces", 2},
		{7, 15, "Cancer", 3},
	}
	for _, tc := range cases {
		sign, err := SunSign(tc.month, tc.day)
		require.NoError(t, err)
		require.Equal(t, tc.sign, sign.Sign, "%02d-%02d", tc.month, tc.day)
		require.Equal(t, tc.decan, sign.Decan, "%02d-%02d", tc.month, tc.day)
	}
}

func TestSunSignRejectsImpossibleDates(t *testing.T) {
	for _, md := range [][2]int{{0, 1}, {13, 1}, {2, 30}, {4, 31}, {6, 0}} {
		_, err := SunSign(md[0], md[1])
		require.True(t, errors.Is(err, ErrInvalidDate), "%v", md)
	}
}

func TestSunSignTraitsAreCopies(t *testing.T) {
	sign, err := SunSign(7, 1)
	require.NoError(t, err)
	sign.Traits[0] = "mutated"

	again, err := SunSign(7, 1)
	require.NoError(t, err)
	require.Equal(t, "intuitive", again.Traits[0])
}

func TestParseBirthTime(t *testing.T) {
	h, m, err := ParseBirthTime("14:30")
	require.NoError(t, err)
	require.Equal(t, 14, h)
	require.Equal(t, 30, m)

	h, m, err = ParseBirthTime(" 7:05 ")
	require.NoError(t, err)
	require.Equal(t, 7, h)
	require.Equal(t, 5, m)

	for _, bad := range []string{"24:00", "12:60", "12", "ab:cd", "12:5", "12:30:00"} {
		_, _, err := ParseBirthTime(bad)
		require.Error(t, err, bad)
	}
}

func TestBirthInstantAppliesFractionalOffset(t *testing.T) {
	date := time.Date(1990, 7, 15, 0, 0, 0, 0, time.UTC)
	got := BirthInstant(date, 5, 0, 5.5)
	require.Equal(t, time.Date(1990, 7, 14, 23, 30, 0, 0, time.UTC), got)
}
