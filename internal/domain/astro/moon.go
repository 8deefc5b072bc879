package astro

// longitudeTerm is one row of the periodic series for the Moon's longitude.
// Multipliers apply to D, M, M' and F; coeff is in millionths of a degree.
type longitudeTerm struct {
	d, m, mp, f int
	coeff       float64
}

// Meeus, Astronomical Algorithms, table 47.A (longitude column).
var longitudeTerms = [60]longitudeTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
	{4, 0, 0, 0, 3861},
	{2, 0, -3, 0, 3665},
	{0, 1, -2, 0, -2689},
	{2, 0, -1, 2, -2602},
	{2, -1, -2, 0, 2390},
	{1, 0, 1, 0, -2348},
	{2, -2, 0, 0, 2236},
	{0, 1, 2, 0, -2120},
	{0, 2, 0, 0, -2069},
	{2, -2, -1, 0, 2048},
	{2, 0, 1, -2, -1773},
	{2, 0, 0, 2, -1595},
	{4, -1, -1, 0, 1215},
	{0, 0, 2, 2, -1110},
	{3, 0, -1, 0, -892},
	{2, 1, 1, 0, -810},
	{4, -1, -2, 0, 759},
	{0, 2, -1, 0, -713},
	{2, 2, -1, 0, -700},
	{2, 1, -2, 0, 691},
	{2, -1, 0, -2, 596},
	{4, 0, 1, 0, 549},
	{0, 0, 4, 0, 537},
	{4, -1, 0, 0, 520},
	{1, 0, -2, 0, -487},
	{2, 1, 0, -2, -399},
	{0, 0, 2, -2, -381},
	{1, 1, 1, 0, 351},
	{3, 0, -2, 0, -340},
	{4, 0, -3, 0, 330},
	{2, -1, 2, 0, 327},
	{0, 2, 1, 0, -323},
	{1, 1, -1, 0, 299},
	{2, 0, 3, 0, 294},
	{2, 0, -1, -2, 0},
}

// lunarArguments holds the fundamental arguments for one instant, in degrees.
type lunarArguments struct {
	lp    float64 // L', mean longitude
	d     float64 // mean elongation
	m     float64 // Sun's mean anomaly
	mp    float64 // M', Moon's mean anomaly
	f     float64 // argument of latitude
	omega float64 // ascending node
	a1    float64
	a2    float64
	e     float64 // eccentricity factor
}

func newLunarArguments(jd float64) lunarArguments {
	t := JulianCenturies(jd)
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t

	return lunarArguments{
		lp:    Normalize360(218.3164477 + 481267.88123421*t - 0.0015786*t2 + t3/538841 - t4/65194000),
		d:     Normalize360(297.8501921 + 445267.1114034*t - 0.0018819*t2 + t3/545868 - t4/113065000),
		m:     Normalize360(357.5291092 + 35999.0502909*t - 0.0001536*t2 + t3/24490000),
		mp:    Normalize360(134.9633964 + 477198.8675055*t + 0.0087414*t2 + t3/69699 - t4/14712000),
		f:     Normalize360(93.2720950 + 483202.0175233*t - 0.0036539*t2 - t3/3526000 + t4/863310000),
		omega: Normalize360(125.04452 - 1934.136261*t),
		a1:    Normalize360(119.75 + 131.849*t),
		a2:    Normalize360(53.09 + 479264.290*t),
		e:     1 - 0.002516*t - 0.0000074*t2,
	}
}

// MoonLongitude returns the Moon's apparent geocentric ecliptic longitude in
// degrees for a Julian Day (UT). The series is truncated and the nutation
// correction uses only its two largest terms, so results are good to a few
// tenths of a degree: enough for sign placement, not for aspects.
func MoonLongitude(jd float64) float64 {
	a := newLunarArguments(jd)

	var sum float64
	for _, term := range longitudeTerms {
		arg := float64(term.d)*a.d + float64(term.m)*a.m + float64(term.mp)*a.mp + float64(term.f)*a.f
		coeff := term.coeff
		switch abs(term.m) {
		case 1:
			coeff *= a.e
		case 2:
			coeff *= a.e * a.e
		}
		sum += coeff * sinDeg(arg)
	}

	// Venus, Jupiter and flattening of the Earth.
	sum += 3958*sinDeg(a.a1) + 1962*sinDeg(a.lp-a.f) + 318*sinDeg(a.a2)

	nutation := (-17.2*sinDeg(a.omega) - 1.32*sinDeg(2*a.lp)) / 3600

	return Normalize360(a.lp + sum/1e6 + nutation)
}

// MoonSign buckets MoonLongitude into its sign.
func MoonSign(jd float64) string {
	return SignForLongitude(MoonLongitude(jd))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
