package astro

// GreenwichSiderealTime returns the mean sidereal time at Greenwich, in
// degrees, using the linear term of the IAU 1982 expression.
func GreenwichSiderealTime(jd float64) float64 {
	return Normalize360(280.46061837 + 360.98564736629*DaysSinceJ2000(jd))
}

// RisingLongitude estimates the rising point for a UT Julian Day and an
// east-positive birth location.
//
// This is an approximation: local sidereal time is nudged by sin(latitude)×15°
// in place of the oblique-ascension trigonometry a house system would use.
// Sign buckets from it are coarse, and results near 30° edges are not reliable.
func RisingLongitude(jd, latitude, longitude float64) float64 {
	lst := GreenwichSiderealTime(jd) + longitude
	return Normalize360(lst + sinDeg(latitude)*15)
}

// RisingSign buckets RisingLongitude into its sign.
func RisingSign(jd, latitude, longitude float64) string {
	return SignForLongitude(RisingLongitude(jd, latitude, longitude))
}
