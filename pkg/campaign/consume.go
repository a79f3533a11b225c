package campaign

import (
	"fmt"
	"time"

	"github.com/emberfell/campaign-engine/pkg/inventory"
	"github.com/emberfell/campaign-engine/pkg/progression"
)

// UseConsumable resolves and applies a consumable's effect. The whole
// transformation (inventory, hp, buffs, ability and skill maps, skill
// points) is computed against a single cloned record and returned as one
// replacement value, so a concurrent writer can never observe a partial
// application.
//
// The matched item is located by id first, then name, within the given
// section or all sections. Lookup misses and healing at full health are
// no-ops: the input record is returned unchanged and consumed is false.
func UseConsumable(r *Record, section, id, name string) (*Record, bool) {
	item, ok := inventory.Find(r.Inventory, section, id, name)
	if !ok {
		return r, false
	}

	kind, target := inventory.ClassifyEffect(*item, Abilities, SkillNames())

	// Healing at full health leaves the item in the pool and adds no buff.
	if kind == inventory.EffectHealing && r.HPCurrent >= r.HP {
		return r, false
	}

	out := r.Clone()
	inv, consumed, _ := removeConsumed(out.Inventory, section, item.ID)
	if !consumed {
		return r, false
	}
	out.Inventory = inv

	var effect string
	switch kind {
	case inventory.EffectHealing:
		amount := item.Heal
		if amount <= 0 {
			amount = item.Potency
		}
		healed := min(amount, out.HP-out.HPCurrent)
		out.HPCurrent += healed
		effect = fmt.Sprintf("restored %d hit points", healed)

	case inventory.EffectAbility:
		if item.AbilityScoreBoost > 0 {
			if out.AbilityScores == nil {
				out.AbilityScores = make(map[string]int)
			}
			if out.AbilityProgress == nil {
				out.AbilityProgress = make(map[string]int)
			}
			score := min(progression.AbilityScoreCap, out.AbilityScore(target)+item.AbilityScoreBoost)
			out.AbilityScores[target] = score
			out.AbilityProgress[target] = 0
			effect = fmt.Sprintf("%s raised to %d", target, score)
		} else {
			out.GrantAbilityExperience(target, item.Potency)
			effect = fmt.Sprintf("+%d %s experience", item.Potency, target)
		}

	case inventory.EffectSkill:
		amount := item.SkillXP
		if amount <= 0 {
			amount = item.Potency
		}
		out.GrantSkillExperience(target, amount)
		effect = fmt.Sprintf("+%d %s experience", amount, target)

	default:
		effect = "a surge of empowerment"
	}

	out.AddBuff(Buff{
		Name:      item.Name,
		Effect:    effect,
		AppliedAt: time.Now(),
	})
	return out, true
}

// removeConsumed takes one unit of the already-matched item out of the
// pool by id.
func removeConsumed(inv inventory.Inventory, section, id string) (inventory.Inventory, bool, *inventory.Item) {
	out, item, ok := inventory.RemoveItem(inv, section, id, "")
	return out, ok, item
}
