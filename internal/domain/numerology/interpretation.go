package numerology

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Kind names one of the five numbers.
type Kind string

const (
	KindLifePath     Kind = "lifePath"
	KindExpression   Kind = "expression"
	KindSoulUrge     Kind = "soulUrge"
	KindPersonality  Kind = "personality"
	KindPersonalYear Kind = "personalYear"
)

// Interpretation is the canned reading for a number.
type Interpretation struct {
	Title    string   `yaml:"title" json:"title"`
	Brief    string   `yaml:"brief" json:"brief"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

//go:embed interpretations.yaml
var interpretationsYAML []byte

var interpretations = mustLoadInterpretations(interpretationsYAML)

func loadInterpretations(raw []byte) (map[Kind]map[int]Interpretation, error) {
	var out map[Kind]map[int]Interpretation
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode interpretations: %w", err)
	}
	return out, nil
}

func mustLoadInterpretations(raw []byte) map[Kind]map[int]Interpretation {
	out, err := loadInterpretations(raw)
	if err != nil {
		panic(err)
	}
	return out
}

// Interpret returns the reading for a number, or an "Unknown" placeholder.
func Interpret(kind Kind, n int) Interpretation {
	byNumber, ok := interpretations[kind]
	if !ok {
		return Interpretation{Title: "Unknown", Brief: "Interpretation not available.", Keywords: []string{}}
	}
	in, ok := byNumber[n]
	if !ok {
		return Interpretation{Title: "Unknown", Brief: "Interpretation not available for this number.", Keywords: []string{}}
	}
	in.Keywords = slices.Clone(in.Keywords)
	return in
}
