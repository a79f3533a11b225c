package inventory

import "strings"

// EffectKind classifies what a consumable does when used.
type EffectKind string

const (
	EffectHealing     EffectKind = "healing"
	EffectAbility     EffectKind = "ability"
	EffectSkill       EffectKind = "skill"
	EffectEmpowerment EffectKind = "empowerment"
)

// ClassifyEffect resolves a consumable's effect string against the known
// ability and skill names. Matching is deliberately string-contains and
// case-insensitive for compatibility with existing content; this function
// is the single place that policy lives, so it can be tightened later
// without touching call sites.
//
// Precedence: healing, then ability, then skill, then a generic
// empowerment buff. The item's explicit Ability/Skill fields take priority
// over names sniffed from the effect string.
func ClassifyEffect(item Item, abilities, skills []string) (EffectKind, string) {
	effect := strings.ToLower(item.Effect)

	if strings.Contains(effect, "health") {
		return EffectHealing, ""
	}
	if item.Ability != "" {
		return EffectAbility, strings.ToLower(item.Ability)
	}
	for _, ability := range abilities {
		if strings.Contains(effect, strings.ToLower(ability)) {
			return EffectAbility, strings.ToLower(ability)
		}
	}
	if item.Skill != "" {
		return EffectSkill, strings.ToLower(item.Skill)
	}
	for _, skill := range skills {
		if strings.Contains(effect, strings.ToLower(skill)) {
			return EffectSkill, strings.ToLower(skill)
		}
	}
	return EffectEmpowerment, ""
}
