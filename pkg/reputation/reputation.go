// Package reputation bounds faction-standing values and classifies them
// into discrete disposition tiers for display.
package reputation

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MinStanding and MaxStanding bound every faction-standing value.
	MinStanding = -20
	MaxStanding = 20

	// TierCount is the number of equal-width disposition bands across
	// the standing range.
	TierCount = 9

	tierWidth = 5
)

// Clamp bounds a standing value to [MinStanding, MaxStanding].
func Clamp(value int) int {
	if value < MinStanding {
		return MinStanding
	}
	if value > MaxStanding {
		return MaxStanding
	}
	return value
}

// TierIndex maps a standing value into one of the nine equal-width bands
// centered on zero. The result is always in [0, TierCount-1].
func TierIndex(value int) int {
	idx := (Clamp(value) - MinStanding) / tierWidth
	if idx < 0 {
		return 0
	}
	if idx > TierCount-1 {
		return TierCount - 1
	}
	return idx
}

// DefaultTierLabels is the stock 9-entry disposition table used by
// factions that do not carry their own.
var DefaultTierLabels = [TierCount]string{
	"hated",
	"despised",
	"disliked",
	"unfriendly",
	"neutral",
	"accepted",
	"liked",
	"respected",
	"revered",
}

// FactionLabels carries a faction's display vocabulary. A faction with a
// full 9-entry Tiers table is classified per band; otherwise the coarse
// positive/negative/warning/neutral fallback applies.
type FactionLabels struct {
	Tiers    []string `json:"tiers,omitempty"`
	Positive string   `json:"positive,omitempty"`
	Negative string   `json:"negative,omitempty"`
	Warning  string   `json:"warning,omitempty"`
	Neutral  string   `json:"neutral,omitempty"`
}

// Fallback classification thresholds.
const (
	positiveThreshold = 10
	negativeThreshold = -10
	warningThreshold  = -5
)

// DispositionLabel classifies a standing value against a faction's label
// table. Factions without a 9-tier table fall back to the 3-tier
// classification, with the warning band applying only when the faction
// defines a warning label.
func DispositionLabel(labels FactionLabels, value int) string {
	value = Clamp(value)
	if len(labels.Tiers) == TierCount {
		return labels.Tiers[TierIndex(value)]
	}

	switch {
	case value >= positiveThreshold:
		return orDefault(labels.Positive, "positive")
	case value <= negativeThreshold:
		return orDefault(labels.Negative, "negative")
	case value <= warningThreshold && labels.Warning != "":
		return labels.Warning
	default:
		return orDefault(labels.Neutral, "neutral")
	}
}

// NPCDisposition is the coarse 5-tier classification for individual
// non-faction relationships.
type NPCDisposition string

const (
	DispositionTrusted  NPCDisposition = "trusted"
	DispositionFriendly NPCDisposition = "friendly"
	DispositionHostile  NPCDisposition = "hostile"
	DispositionWary     NPCDisposition = "wary"
	DispositionNeutral  NPCDisposition = "neutral"
)

// ForNPC classifies a standing value for an individual relationship.
// Thresholds are evaluated in priority order.
func ForNPC(value int) NPCDisposition {
	value = Clamp(value)
	switch {
	case value >= 15:
		return DispositionTrusted
	case value >= 5:
		return DispositionFriendly
	case value <= -15:
		return DispositionHostile
	case value <= -5:
		return DispositionWary
	default:
		return DispositionNeutral
	}
}

// PositionOnScale places a standing value linearly on a [0, 100] axis,
// for rendering a bounded gauge.
func PositionOnScale(value int) float64 {
	return float64(Clamp(value)-MinStanding) * 100 / float64(MaxStanding-MinStanding)
}

var titleCaser = cases.Title(language.English)

// DisplayLabel renders a classification label in title case.
func DisplayLabel(label string) string {
	return titleCaser.String(label)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
