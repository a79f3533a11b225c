package inventory

import "strings"

// Item is an immutable value record. Mutation is replacement; an item id
// appears in at most one location across equipped slots and pool sections.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rarity   string `json:"rarity,omitempty"`
	Quantity int    `json:"quantity,omitempty"`

	// Weapon attributes
	Damage     string `json:"damage,omitempty"`
	WeaponType string `json:"weapon_type,omitempty"`

	// Armor attributes
	AC   int    `json:"ac,omitempty"`
	Slot string `json:"slot,omitempty"`

	// Consumable attributes
	Effect            string `json:"effect,omitempty"`
	Potency           int    `json:"potency,omitempty"`
	Heal              int    `json:"heal,omitempty"`
	Skill             string `json:"skill,omitempty"`
	SkillXP           int    `json:"skill_xp,omitempty"`
	Ability           string `json:"ability,omitempty"`
	AbilityScoreBoost int    `json:"ability_score_boost,omitempty"`
}

// IsTwoHanded reports whether a weapon occupies both weapon slots.
// The weapon type string is the source of truth, e.g. "two-handed melee".
func (it Item) IsTwoHanded() bool {
	return strings.Contains(strings.ToLower(it.WeaponType), "two")
}

// ArmorSlot identifies one of the five equipped armor positions.
type ArmorSlot string

const (
	SlotHead     ArmorSlot = "head"
	SlotBody     ArmorSlot = "body"
	SlotArms     ArmorSlot = "arms"
	SlotLeggings ArmorSlot = "leggings"
	SlotCloak    ArmorSlot = "cloak"
)

// ArmorSlots lists every equipped armor position.
var ArmorSlots = []ArmorSlot{SlotHead, SlotBody, SlotArms, SlotLeggings, SlotCloak}

// armorSlotSynonyms resolves an item's stated slot name, case-insensitively,
// to a canonical slot. Unrecognized names fall back to the body slot.
var armorSlotSynonyms = map[string]ArmorSlot{
	"head":     SlotHead,
	"helm":     SlotHead,
	"helmet":   SlotHead,
	"body":     SlotBody,
	"chest":    SlotBody,
	"torso":    SlotBody,
	"arms":     SlotArms,
	"arm":      SlotArms,
	"gloves":   SlotArms,
	"legs":     SlotLeggings,
	"leg":      SlotLeggings,
	"leggings": SlotLeggings,
	"cloak":    SlotCloak,
	"cape":     SlotCloak,
}

// ResolveArmorSlot maps a stated slot name to its canonical ArmorSlot.
func ResolveArmorSlot(name string) ArmorSlot {
	if slot, ok := armorSlotSynonyms[strings.ToLower(strings.TrimSpace(name))]; ok {
		return slot
	}
	return SlotBody
}

// Pool section names.
const (
	SectionWeapons     = "weapons"
	SectionArmor       = "armor"
	SectionConsumables = "consumables"
	SectionMisc        = "misc"
)

// Sections lists the pool sections in display order.
var Sections = []string{SectionWeapons, SectionArmor, SectionConsumables, SectionMisc}

// NormalizeSection case-normalizes a section name, falling back to misc
// for anything unrecognized.
func NormalizeSection(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SectionWeapons:
		return SectionWeapons
	case SectionArmor:
		return SectionArmor
	case SectionConsumables:
		return SectionConsumables
	default:
		return SectionMisc
	}
}
