package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emberfell/campaign-engine/pkg/progression"
)

// UnarmedDie is the base damage die with no weapon equipped.
const UnarmedDie = "d4"

// weaponGoverningAbility maps a weapon-type keyword to the ability whose
// modifier is added to the damage label.
var weaponGoverningAbility = map[string]string{
	"melee":  "strength",
	"ranged": "dexterity",
	"focus":  "dexterity",
}

// GoverningAbility resolves the ability governing a weapon's damage bonus
// from its type string. Unrecognized types default to strength.
func GoverningAbility(weaponType string) string {
	lower := strings.ToLower(weaponType)
	for keyword, ability := range weaponGoverningAbility {
		if strings.Contains(lower, keyword) {
			return ability
		}
	}
	return "strength"
}

// DamageLabel derives the display damage string for the equipped weapons.
// A two-handed weapon alone determines the dice. Same-sided dice are
// summed; mixed sides are joined with "+". A nonzero governing-ability
// modifier is appended as a signed bonus. No weapon yields the unarmed die.
func DamageLabel(inv Inventory, abilityScores map[string]int) string {
	weapons := inv.EquippedWeaponItems()
	for _, w := range weapons {
		if w.IsTwoHanded() {
			weapons = []Item{w}
			break
		}
	}

	if len(weapons) == 0 {
		bonus := progression.AbilityModifier(scoreOrDefault(abilityScores, "strength"))
		return UnarmedDie + formatBonus(bonus)
	}

	// Sum counts per die side, preserving first-seen order.
	type dieGroup struct {
		sides int
		count int
	}
	var groups []dieGroup
	for _, w := range weapons {
		count, sides, ok := parseDice(w.Damage)
		if !ok {
			continue
		}
		found := false
		for i := range groups {
			if groups[i].sides == sides {
				groups[i].count += count
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, dieGroup{sides: sides, count: count})
		}
	}

	var parts []string
	for _, g := range groups {
		parts = append(parts, fmt.Sprintf("%dd%d", g.count, g.sides))
	}
	label := strings.Join(parts, "+")
	if label == "" {
		label = UnarmedDie
	}

	ability := GoverningAbility(weapons[0].WeaponType)
	bonus := progression.AbilityModifier(scoreOrDefault(abilityScores, ability))
	return label + formatBonus(bonus)
}

// scoreOrDefault treats an absent or unset ability score as the default.
func scoreOrDefault(scores map[string]int, ability string) int {
	if s, ok := scores[ability]; ok && s > 0 {
		return s
	}
	return progression.DefaultAbilityScore
}

// parseDice reads a dice string of the form "NdS" or "dS".
func parseDice(s string) (count, sides int, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	idx := strings.Index(s, "d")
	if idx < 0 {
		return 0, 0, false
	}
	count = 1
	if idx > 0 {
		n, err := strconv.Atoi(s[:idx])
		if err != nil || n <= 0 {
			return 0, 0, false
		}
		count = n
	}
	sides, err := strconv.Atoi(s[idx+1:])
	if err != nil || sides <= 0 {
		return 0, 0, false
	}
	return count, sides, true
}

func formatBonus(bonus int) string {
	if bonus == 0 {
		return ""
	}
	return fmt.Sprintf("%+d", bonus)
}
