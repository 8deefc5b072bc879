package reading

import (
	"encoding/json"
	"errors"
	"strings"
)

type narrativeWire struct {
	CosmicSnapshot string          `json:"cosmicSnapshot"`
	UnifiedReading string          `json:"unifiedReading"`
	CurrentSeason  string          `json:"currentSeason"`
	CosmicToolkit  json.RawMessage `json:"cosmicToolkit"`
}

// parseNarrative reads the model reply. It tries the whole reply as JSON, then
// the outermost {...} span inside it, and finally keeps the raw text as the
// combined analysis. The flag is false only in that last case.
func parseNarrative(raw string) (Narrative, bool) {
	sanitized := stripFences(raw)
	if sanitized == "" {
		return Narrative{}, false
	}

	if n, err := decodeNarrative(sanitized); err == nil {
		return n, true
	}
	if start, end := strings.Index(sanitized, "{"), strings.LastIndex(sanitized, "}"); start >= 0 && end > start {
		if n, err := decodeNarrative(sanitized[start : end+1]); err == nil {
			return n, true
		}
	}
	return Narrative{CombinedAnalysis: &sanitized}, false
}

func stripFences(raw string) string {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimPrefix(sanitized, "```")
	sanitized = strings.TrimSuffix(sanitized, "```")
	return strings.TrimSpace(sanitized)
}

func decodeNarrative(data string) (Narrative, error) {
	var wire narrativeWire
	if err := json.Unmarshal([]byte(data), &wire); err != nil {
		return Narrative{}, err
	}
	toolkit, err := coerceStringArray(wire.CosmicToolkit)
	if err != nil {
		return Narrative{}, err
	}
	return Narrative{
		CombinedAnalysis: optional(wire.UnifiedReading),
		CosmicSnapshot:   optional(wire.CosmicSnapshot),
		CurrentSeason:    optional(wire.CurrentSeason),
		CosmicToolkit:    toolkit,
	}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func coerceStringArray(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var items []string
	switch raw[0] {
	case '"':
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}
		items = []string{single}
	case '[':
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("unsupported toolkit format")
	}
	return normalizeList(items), nil
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{})
	for _, item := range items {
		clean := strings.TrimSpace(item)
		if clean == "" {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
