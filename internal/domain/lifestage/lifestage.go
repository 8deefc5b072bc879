package lifestage

import (
	_ "embed"
	"fmt"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Stage is the life circumstance a person selects.
type Stage string

const (
	Exploring      Stage = "exploring"
	BuildingCareer Stage = "building_career"
	InRelationship Stage = "in_relationship"
	Married        Stage = "married"
	Parent         Stage = "parent"
	EmptyNester    Stage = "empty_nester"
	Retired        Stage = "retired"
	PreferNotToSay Stage = "prefer_not_to_say"
)

var order = []Stage{Exploring, BuildingCareer, InRelationship, Married, Parent, EmptyNester, Retired, PreferNotToSay}

// Context tells the narrative layer how to pitch a reading.
type Context struct {
	Key                 Stage    `json:"key"`
	Stage               string   `json:"stage"`
	AgeRange            string   `json:"ageRange"`
	FocusAreas          []string `json:"focusAreas"`
	ToneGuidance        string   `json:"toneGuidance"`
	TopicsToEmphasize   []string `json:"topicsToEmphasize"`
	TopicsToDeemphasize []string `json:"topicsToDeemphasize"`
}

type stageDoc struct {
	Label               string   `yaml:"label"`
	Icon                string   `yaml:"icon"`
	Title               string   `yaml:"title"`
	FocusAreas          []string `yaml:"focusAreas"`
	ToneGuidance        string   `yaml:"toneGuidance"`
	TopicsToEmphasize   []string `yaml:"topicsToEmphasize"`
	TopicsToDeemphasize []string `yaml:"topicsToDeemphasize"`
}

//go:embed stages.yaml
var stagesYAML []byte

var stages = mustLoad(stagesYAML)

func mustLoad(raw []byte) map[Stage]stageDoc {
	var out map[Stage]stageDoc
	if err := yaml.Unmarshal(raw, &out); err != nil {
		panic(fmt.Errorf("decode life stages: %w", err))
	}
	for _, s := range order {
		if _, ok := out[s]; !ok {
			panic(fmt.Errorf("life stage %q missing from table", s))
		}
	}
	return out
}

// Stages lists every stage in display order.
func Stages() []Stage {
	return slices.Clone(order)
}

// Valid reports whether s is a known stage.
func Valid(s Stage) bool {
	_, ok := stages[s]
	return ok
}

// Normalize maps unknown stages to PreferNotToSay.
func Normalize(s Stage) Stage {
	if Valid(s) {
		return s
	}
	return PreferNotToSay
}

// Label is the human-readable name of a stage.
func Label(s Stage) string {
	return stages[Normalize(s)].Label
}

// Icon is the emoji shown next to a stage.
func Icon(s Stage) string {
	return stages[Normalize(s)].Icon
}

// AgeRange buckets an age in whole years.
func AgeRange(age int) string {
	switch {
	case age < 18:
		return "youth"
	case age < 25:
		return "young adult"
	case age < 35:
		return "early adulthood"
	case age < 50:
		return "midlife"
	case age < 65:
		return "mature"
	default:
		return "elder"
	}
}

// Age returns completed years between dob and today, by calendar date.
func Age(dob, today time.Time) int {
	by, bm, bd := dob.Date()
	ty, tm, td := today.Date()
	age := ty - by
	if tm < bm || (tm == bm && td < bd) {
		age--
	}
	return age
}

// Classify builds the tone context for an age and stage. Unknown stages fall
// back to the universal context.
func Classify(age int, s Stage) Context {
	key := Normalize(s)
	doc := stages[key]
	return Context{
		Key:                 key,
		Stage:               doc.Title,
		AgeRange:            AgeRange(age),
		FocusAreas:          slices.Clone(doc.FocusAreas),
		ToneGuidance:        doc.ToneGuidance,
		TopicsToEmphasize:   slices.Clone(doc.TopicsToEmphasize),
		TopicsToDeemphasize: nonNil(slices.Clone(doc.TopicsToDeemphasize)),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
