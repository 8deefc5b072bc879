package reading

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
)

type cacheKeyFields struct {
	Name      string   `json:"n"`
	DOB       string   `json:"d"`
	Stage     string   `json:"s"`
	Time      string   `json:"t,omitempty"`
	Place     string   `json:"p,omitempty"`
	Latitude  *float64 `json:"la,omitempty"`
	Longitude *float64 `json:"lo,omitempty"`
	Offset    *float64 `json:"tz,omitempty"`
	Mind      string   `json:"m,omitempty"`
	Gender    string   `json:"g,omitempty"`
	Year      int      `json:"y"`
}

// cacheKey fingerprints everything that changes a reading. The current year is
// part of it because the personal year number rolls over on January 1. FNV-1a
// is a lookup hash only; keys are not secrets.
func cacheKey(s subject, year int) string {
	fields := cacheKeyFields{
		Name:      s.name,
		DOB:       s.dob.Format("2006-01-02"),
		Stage:     string(s.stage),
		Time:      s.birthTime,
		Place:     strings.ToLower(s.place),
		Latitude:  s.latitude,
		Longitude: s.longitude,
		Offset:    s.utcOffset,
		Mind:      s.mind,
		Gender:    strings.ToLower(s.gender),
		Year:      year,
	}
	// Marshal of this struct cannot fail.
	payload, _ := json.Marshal(fields)
	h := fnv.New64a()
	_, _ = h.Write(payload)
	return fmt.Sprintf("%016x", h.Sum64())
}
