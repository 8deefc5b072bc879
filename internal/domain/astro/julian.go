package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 UTC).
const J2000 = 2451545.0

// JulianDay converts an instant to a Julian Day number using the Gregorian
// calendar formula. The instant is read in UTC; callers holding a local birth
// time must apply the UTC offset first. Dates before 1582 are treated as
// proleptic Gregorian.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hours := float64(u.Hour()) +
		float64(u.Minute())/60 +
		float64(u.Second())/3600 +
		float64(u.Nanosecond())/(3600*1e9)

	y := year
	m := int(month)
	if m <= 2 {
		y--
		m += 12
	}

	a := floorDiv(y, 100)
	b := 2 - a + floorDiv(a, 4)

	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 +
		hours/24
}

// JulianCenturies returns the number of Julian centuries since J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525
}

// DaysSinceJ2000 returns the signed number of days since J2000.0.
func DaysSinceJ2000(jd float64) float64 {
	return jd - J2000
}

// Normalize360 folds an angle in degrees into [0, 360).
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod can hand back -0 or a value that rounds up to 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func sinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
}

// floorDiv is integer division rounding toward negative infinity, so the
// century correction stays right for years before 1 CE.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
