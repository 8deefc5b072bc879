package astro

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WesternInput carries what is known about a birth. Only the calendar date of
// Date is read. Nil pointers mean the value is unknown.
type WesternInput struct {
	Date           time.Time
	BirthTime      string
	Latitude       *float64
	Longitude      *float64
	UTCOffsetHours *float64
}

// Precision reports which fallbacks shaped a profile.
type Precision struct {
	// UTCOffsetAssumed is set when a birth time was converted with an offset of
	// zero because none was known. Moon and rising placements may then be off.
	UTCOffsetAssumed bool `json:"utcOffsetAssumed"`
	// BirthTimeInvalid is set when a birth time was supplied but could not be parsed.
	BirthTimeInvalid bool `json:"birthTimeInvalid,omitempty"`
	// LocationInvalid is set when coordinates were supplied outside their ranges.
	LocationInvalid bool `json:"locationInvalid,omitempty"`
}

// WesternProfile is the sun, moon and rising placement for one birth. Moon needs
// a birth time; rising also needs coordinates.
type WesternProfile struct {
	SunSign    ZodiacSign `json:"sunSign"`
	MoonSign   *string    `json:"moonSign"`
	RisingSign *string    `json:"risingSign"`
	Precision  Precision  `json:"precision"`
}

// BuildWesternProfile resolves every placement the input allows. Missing
// optional inputs leave the matching fields nil; they are never an error.
func BuildWesternProfile(in WesternInput) (WesternProfile, error) {
	_, month, day := in.Date.Date()
	sun, err := SunSign(int(month), day)
	if err != nil {
		return WesternProfile{}, err
	}
	profile := WesternProfile{SunSign: sun}

	if strings.TrimSpace(in.BirthTime) == "" {
		return profile, nil
	}
	hour, minute, err := ParseBirthTime(in.BirthTime)
	if err != nil {
		profile.Precision.BirthTimeInvalid = true
		return profile, nil
	}

	offset := 0.0
	if in.UTCOffsetHours != nil {
		offset = *in.UTCOffsetHours
	} else {
		profile.Precision.UTCOffsetAssumed = true
	}
	jd := JulianDay(BirthInstant(in.Date, hour, minute, offset))

	moon := MoonSign(jd)
	profile.MoonSign = &moon

	if in.Latitude == nil || in.Longitude == nil {
		return profile, nil
	}
	if !validCoordinates(*in.Latitude, *in.Longitude) {
		profile.Precision.LocationInvalid = true
		return profile, nil
	}
	rising := RisingSign(jd, *in.Latitude, *in.Longitude)
	profile.RisingSign = &rising

	return profile, nil
}

// BirthInstant turns a local civil date and clock time into UTC using a
// fractional hour offset (5.5 for India, -3.5 for Newfoundland).
func BirthInstant(date time.Time, hour, minute int, utcOffsetHours float64) time.Time {
	y, m, d := date.Date()
	local := time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
	return local.Add(-time.Duration(utcOffsetHours * float64(time.Hour)))
}

// ParseBirthTime parses a 24-hour "HH:MM" clock value.
func ParseBirthTime(raw string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("birth time %q: want HH:MM", raw)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("birth time %q: hour out of range", raw)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("birth time %q: minute out of range", raw)
	}
	return hour, minute, nil
}

func validCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
