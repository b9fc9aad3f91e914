package domain

import (
	"fmt"
	"strings"
)

type AssessmentType string

const (
	TypeFormative AssessmentType = "formative"
	TypeSummative AssessmentType = "summative"
	TypeAuthentic AssessmentType = "authentic"
	TypePeer      AssessmentType = "peer"
)

// GeneralType is the tag used in prompts when no assessment type was selected.
const GeneralType = "general"

// AssessmentTypes returns every assessment type in display order.
func AssessmentTypes() []AssessmentType {
	return []AssessmentType{TypeFormative, TypeSummative, TypeAuthentic, TypePeer}
}

// ParseAssessmentType accepts a type tag case-insensitively.
func ParseAssessmentType(s string) (AssessmentType, error) {
	t := AssessmentType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeFormative, TypeSummative, TypeAuthentic, TypePeer:
		return t, nil
	}
	return "", fmt.Errorf("unknown assessment type %q (want formative, summative, authentic or peer)", s)
}

// Name returns the capitalized tag, e.g. "Formative".
func (t AssessmentType) Name() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Title returns the display heading, e.g. "Formative Assessment".
func (t AssessmentType) Title() string {
	return t.Name() + " Assessment"
}

type Category string

const (
	CategoryCultural      Category = "cultural"
	CategoryAccessibility Category = "accessibility"
	CategoryParticipation Category = "participation"
	CategoryLanguage      Category = "language"
)

// Categories returns the inclusive-design categories in their fixed report order.
func Categories() []Category {
	return []Category{CategoryCultural, CategoryAccessibility, CategoryParticipation, CategoryLanguage}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCultural, CategoryAccessibility, CategoryParticipation, CategoryLanguage:
		return true
	}
	return false
}

// Title returns the breakdown label used in reports.
func (c Category) Title() string {
	switch c {
	case CategoryCultural:
		return "Cultural Sensitivity"
	case CategoryAccessibility:
		return "Accessibility Features"
	case CategoryParticipation:
		return "Flexible Participation"
	case CategoryLanguage:
		return "Language Support"
	default:
		return string(c)
	}
}

// Stage progress milestones, in percent.
const (
	ProgressNone      = 0
	ProgressStarted   = 10
	ProgressTyped     = 20
	ProgressUDL       = 40
	ProgressAlignment = 60
	ProgressInclusive = 80
	ProgressPrompt    = 100
)
