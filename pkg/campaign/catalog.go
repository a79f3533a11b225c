package campaign

import (
	"sort"
	"strings"
)

// Abilities is the fixed set of six core attributes.
var Abilities = []string{
	"strength",
	"dexterity",
	"constitution",
	"intelligence",
	"wisdom",
	"charisma",
}

// SkillCatalog maps each known skill to its governing ability. This is
// read-only reference data; skill levels themselves live on the Record.
var SkillCatalog = map[string]string{
	"athletics":   "strength",
	"smithing":    "strength",
	"stealth":     "dexterity",
	"lockpicking": "dexterity",
	"survival":    "constitution",
	"alchemy":     "intelligence",
	"arcana":      "intelligence",
	"perception":  "wisdom",
	"medicine":    "wisdom",
	"persuasion":  "charisma",
	"performance": "charisma",
}

// SkillNames returns the known skill names in sorted order.
func SkillNames() []string {
	names := make([]string, 0, len(SkillCatalog))
	for name := range SkillCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsAbility reports whether name is one of the six core abilities.
func IsAbility(name string) bool {
	name = strings.ToLower(name)
	for _, a := range Abilities {
		if a == name {
			return true
		}
	}
	return false
}

// IsSkill reports whether name is in the skill catalog.
func IsSkill(name string) bool {
	_, ok := SkillCatalog[strings.ToLower(name)]
	return ok
}
