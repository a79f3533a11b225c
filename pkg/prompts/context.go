package prompts

import (
	"fmt"
	"strings"

	"github.com/emberfell/campaign-engine/pkg/campaign"
	"github.com/emberfell/campaign-engine/pkg/inventory"
	"github.com/emberfell/campaign-engine/pkg/reputation"
)

// MaxEntriesPerLog bounds how many quests, bounties, and rumors are
// projected into a prompt. The most recent entries win; older ones are
// summarized by count.
const MaxEntriesPerLog = 6

// ContextState is a reduced campaign record for LLM prompts. It carries
// the slice of state the narrator needs to stay consistent, not the whole
// record.
type ContextState struct {
	Name          string
	HP, MaxHP     int
	XP            int
	AbilityScores map[string]int
	SkillLevels   map[string]int
	SkillPoints   int
	Reputation    map[string]int
	Weapons       []inventory.Item
	Armor         map[inventory.ArmorSlot]inventory.Item
	PoolSummary   map[string][]string
	Buffs         []campaign.Buff
	Quests        []campaign.Entry
	Bounties      []campaign.Entry
	Rumors        []campaign.Entry
	NPCs          []campaign.NPC

	questsOmitted, bountiesOmitted, rumorsOmitted int
}

// ToContextState projects a campaign record into the bounded prompt shape.
func ToContextState(rec *campaign.Record) *ContextState {
	cs := &ContextState{
		Name:          rec.Name,
		HP:            rec.HPCurrent,
		MaxHP:         rec.HP,
		XP:            rec.XP,
		AbilityScores: rec.AbilityScores,
		SkillLevels:   rec.SkillLevels,
		SkillPoints:   rec.SkillPoints,
		Reputation:    rec.Reputation,
		Weapons:       rec.Inventory.EquippedWeaponItems(),
		Armor:         make(map[inventory.ArmorSlot]inventory.Item),
		PoolSummary:   make(map[string][]string),
		Buffs:         rec.Buffs,
		NPCs:          rec.NPCs,
	}
	for slot, it := range rec.Inventory.EquippedArmor {
		if it != nil {
			cs.Armor[slot] = *it
		}
	}
	for _, section := range inventory.Sections {
		for _, it := range rec.Inventory.Sections[section] {
			label := it.Name
			if it.Quantity > 1 {
				label = fmt.Sprintf("%s x%d", it.Name, it.Quantity)
			}
			cs.PoolSummary[section] = append(cs.PoolSummary[section], label)
		}
	}
	cs.Quests, cs.questsOmitted = tailEntries(rec.Quests)
	cs.Bounties, cs.bountiesOmitted = tailEntries(rec.Bounties)
	cs.Rumors, cs.rumorsOmitted = tailEntries(rec.Rumors)
	return cs
}

// tailEntries keeps the most recent entries up to the per-log bound.
func tailEntries(entries []campaign.Entry) ([]campaign.Entry, int) {
	if len(entries) <= MaxEntriesPerLog {
		return entries, 0
	}
	return entries[len(entries)-MaxEntriesPerLog:], len(entries) - MaxEntriesPerLog
}

// ToString renders the context state in a compact plain-text format for
// LLM comprehension.
func (cs *ContextState) ToString() string {
	var sb strings.Builder

	sb.WriteString("CHARACTER:\n")
	fmt.Fprintf(&sb, "%s — HP %d/%d, XP %d, skill points %d\n", cs.Name, cs.HP, cs.MaxHP, cs.XP, cs.SkillPoints)

	if len(cs.AbilityScores) > 0 {
		sb.WriteString("\nABILITIES:\n")
		for _, a := range campaign.Abilities {
			if score, ok := cs.AbilityScores[a]; ok {
				fmt.Fprintf(&sb, "- %s %d\n", a, score)
			}
		}
	}

	if len(cs.SkillLevels) > 0 {
		sb.WriteString("\nSKILLS:\n")
		for _, s := range campaign.SkillNames() {
			if lvl, ok := cs.SkillLevels[s]; ok && lvl > 0 {
				fmt.Fprintf(&sb, "- %s %d\n", s, lvl)
			}
		}
	}

	if len(cs.Weapons) > 0 || len(cs.Armor) > 0 {
		sb.WriteString("\nEQUIPPED:\n")
		for _, w := range cs.Weapons {
			fmt.Fprintf(&sb, "- %s (%s)\n", w.Name, w.Damage)
		}
		for _, slot := range inventory.ArmorSlots {
			if it, ok := cs.Armor[slot]; ok {
				fmt.Fprintf(&sb, "- %s: %s\n", slot, it.Name)
			}
		}
	}

	for _, section := range inventory.Sections {
		if items := cs.PoolSummary[section]; len(items) > 0 {
			fmt.Fprintf(&sb, "\nCARRIED %s:\n%s\n", strings.ToUpper(section), strings.Join(items, ", "))
		}
	}

	if len(cs.Buffs) > 0 {
		sb.WriteString("\nACTIVE EFFECTS:\n")
		for _, b := range cs.Buffs {
			fmt.Fprintf(&sb, "- %s: %s\n", b.Name, b.Effect)
		}
	}

	if len(cs.Reputation) > 0 {
		sb.WriteString("\nREPUTATION:\n")
		for faction, standing := range cs.Reputation {
			label := reputation.DispositionLabel(reputation.FactionLabels{}, standing)
			fmt.Fprintf(&sb, "- %s: %s (%d)\n", faction, reputation.DisplayLabel(label), standing)
		}
	}

	writeEntryLog(&sb, "QUESTS", cs.Quests, cs.questsOmitted)
	writeEntryLog(&sb, "BOUNTIES", cs.Bounties, cs.bountiesOmitted)
	writeEntryLog(&sb, "RUMORS", cs.Rumors, cs.rumorsOmitted)

	if len(cs.NPCs) > 0 {
		sb.WriteString("\nKNOWN PEOPLE:\n")
		for _, npc := range cs.NPCs {
			fmt.Fprintf(&sb, "- %s (%s)", npc.Name,
				reputation.DisplayLabel(string(reputation.ForNPC(npc.Standing))))
			if npc.Role != "" {
				fmt.Fprintf(&sb, ", %s", npc.Role)
			}
			if npc.Location != "" {
				fmt.Fprintf(&sb, ", at %s", npc.Location)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func writeEntryLog(sb *strings.Builder, label string, entries []campaign.Entry, omitted int) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s:\n", label)
	if omitted > 0 {
		fmt.Fprintf(sb, "(%d older entries omitted)\n", omitted)
	}
	for _, e := range entries {
		fmt.Fprintf(sb, "- %s", e.Title)
		if e.Status != "" {
			fmt.Fprintf(sb, " [%s]", e.Status)
		}
		if e.Description != "" {
			fmt.Fprintf(sb, ": %s", e.Description)
		}
		sb.WriteString("\n")
	}
}
