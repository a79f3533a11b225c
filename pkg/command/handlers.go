package command

import (
	"github.com/emberfell/campaign-engine/pkg/campaign"
	"github.com/emberfell/campaign-engine/pkg/inventory"
)

func (e *Engine) registerAll() {
	// Narrative logs
	e.Register("add_quest", e.addEntry(questLog))
	e.Register("update_quest", e.updateEntry(questLog))
	e.Register("add_bounty", e.addEntry(bountyLog))
	e.Register("update_bounty", e.updateEntry(bountyLog))
	e.Register("add_rumor", e.addEntry(rumorLog))
	e.Register("update_rumor", e.updateEntry(rumorLog))
	e.Register("add_journal_entry", e.addJournalEntry)
	e.Register("update_journal_entry", e.updateJournalEntry)
	e.Register("add_npc", e.addNPC)
	e.Register("update_npc", e.updateNPC)
	e.Register("add_ossuary_item", e.addOssuaryItem)
	e.Register("add_spell", e.addSpell)

	// Vitals and standing
	e.Register("update_reputation", e.updateReputation)
	e.Register("adjust_xp", e.adjustXP)
	e.Register("adjust_hp", e.adjustHP)
	e.Register("record_saving_throw", e.recordSavingThrow)

	// Inventory pool
	e.Register("add_inventory_item", e.addInventoryItem)
	e.Register("consume_inventory_item", e.consumeInventoryItem)

	// Direct player actions share the same vocabulary.
	e.Register("equip_weapon", e.equipWeapon)
	e.Register("unequip_weapon", e.unequipWeapon)
	e.Register("equip_armor", e.equipArmor)
	e.Register("unequip_armor", e.unequipArmor)
	e.Register("use_consumable", e.useConsumable)
	e.Register("spend_skill_point", e.spendSkillPoint)
	e.Register("add_ability_xp", e.addAbilityXP)
	e.Register("add_skill_xp", e.addSkillXP)
}

// entryLog selects one of the three entry-shaped logs on a record.
type entryLog struct {
	get func(*campaign.Record) []campaign.Entry
	set func(*campaign.Record, []campaign.Entry)
}

var (
	questLog = entryLog{
		get: func(r *campaign.Record) []campaign.Entry { return r.Quests },
		set: func(r *campaign.Record, v []campaign.Entry) { r.Quests = v },
	}
	bountyLog = entryLog{
		get: func(r *campaign.Record) []campaign.Entry { return r.Bounties },
		set: func(r *campaign.Record, v []campaign.Entry) { r.Bounties = v },
	}
	rumorLog = entryLog{
		get: func(r *campaign.Record) []campaign.Entry { return r.Rumors },
		set: func(r *campaign.Record, v []campaign.Entry) { r.Rumors = v },
	}
)

func entryPatchFromArgs(args Args) campaign.EntryPatch {
	patch := args.Map("patch")
	return campaign.EntryPatch{
		Title:       patch.String("title"),
		Status:      patch.String("status"),
		Description: patch.String("description"),
		Reward:      patch.String("reward"),
		Location:    patch.String("location"),
		Notes:       patch.String("notes"),
	}
}

func (e *Engine) addEntry(log entryLog) Handler {
	return func(rec *campaign.Record, args Args) *campaign.Record {
		out := rec.Clone()
		log.set(out, append(log.get(out), campaign.Entry{
			ID:          e.newID(),
			Title:       args.String("title"),
			Status:      args.String("status"),
			Description: args.String("description"),
			Reward:      args.String("reward"),
			Location:    args.String("location"),
			Notes:       args.String("notes"),
		}))
		return out
	}
}

func (e *Engine) updateEntry(log entryLog) Handler {
	return func(rec *campaign.Record, args Args) *campaign.Record {
		entries := log.get(rec)
		idx := campaign.FindEntry(entries, args.String("id"), args.String("title"))
		if idx < 0 {
			return rec
		}
		out := rec.Clone()
		entries = log.get(out)
		entries[idx] = entries[idx].Merge(entryPatchFromArgs(args))
		log.set(out, entries)
		return out
	}
}

func (e *Engine) addJournalEntry(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	out.JournalEntries = append(out.JournalEntries, campaign.JournalEntry{
		ID:        e.newID(),
		Title:     args.String("title"),
		Text:      args.String("text"),
		CreatedAt: e.now(),
	})
	return out
}

func (e *Engine) updateJournalEntry(rec *campaign.Record, args Args) *campaign.Record {
	id, title := args.String("id"), args.String("title")
	idx := -1
	if id != "" {
		for i, entry := range rec.JournalEntries {
			if entry.ID == id {
				idx = i
				break
			}
		}
	}
	if idx < 0 && title != "" {
		for i, entry := range rec.JournalEntries {
			if entry.Title == title {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return rec
	}
	out := rec.Clone()
	patch := args.Map("patch")
	if t := patch.String("title"); t != "" {
		out.JournalEntries[idx].Title = t
	}
	if text := patch.String("text"); text != "" {
		out.JournalEntries[idx].Text = text
	}
	return out
}

func (e *Engine) addNPC(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	out.NPCs = append(out.NPCs, campaign.NPC{
		ID:       e.newID(),
		Name:     args.String("name"),
		Role:     args.String("role"),
		Location: args.String("location"),
		Standing: args.Int("standing"),
		Notes:    args.String("notes"),
	})
	return out
}

func (e *Engine) updateNPC(rec *campaign.Record, args Args) *campaign.Record {
	id, name := args.String("id"), args.String("name")
	idx := -1
	if id != "" {
		for i, npc := range rec.NPCs {
			if npc.ID == id {
				idx = i
				break
			}
		}
	}
	if idx < 0 && name != "" {
		for i, npc := range rec.NPCs {
			if npc.Name == name {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return rec
	}
	out := rec.Clone()
	patch := args.Map("patch")
	npc := out.NPCs[idx]
	if v := patch.String("name"); v != "" {
		npc.Name = v
	}
	if v := patch.String("role"); v != "" {
		npc.Role = v
	}
	if v := patch.String("location"); v != "" {
		npc.Location = v
	}
	if v := patch.String("notes"); v != "" {
		npc.Notes = v
	}
	if v, ok := patch.IntOK("standing"); ok {
		npc.Standing = v
	}
	out.NPCs[idx] = npc
	return out
}

func (e *Engine) addOssuaryItem(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	out.OssuaryDrops = append(out.OssuaryDrops, campaign.OssuaryDrop{
		ID:       e.newID(),
		Name:     args.String("name"),
		Rarity:   args.String("rarity"),
		Section:  args.String("section"),
		Source:   args.String("source"),
		Quantity: args.Int("quantity"),
	})
	return out
}

func (e *Engine) addSpell(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	categoryID := args.String("category_id")
	categoryLabel := args.String("category_label")

	idx := -1
	if categoryID != "" {
		for i, cat := range out.Spellbook {
			if cat.ID == categoryID {
				idx = i
				break
			}
		}
	}
	if idx < 0 && categoryLabel != "" {
		for i, cat := range out.Spellbook {
			if cat.Label == categoryLabel {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		out.Spellbook = append(out.Spellbook, campaign.SpellCategory{
			ID:    e.newID(),
			Label: categoryLabel,
		})
		idx = len(out.Spellbook) - 1
	}

	spell := args.Map("spell")
	out.Spellbook[idx].Spells = append(out.Spellbook[idx].Spells, campaign.Spell{
		ID:          e.newID(),
		Name:        spell.String("name"),
		Level:       spell.Int("level"),
		Description: spell.String("description"),
	})
	return out
}

func (e *Engine) updateReputation(rec *campaign.Record, args Args) *campaign.Record {
	changes := args.IntMap("changes")
	if len(changes) == 0 {
		return rec
	}
	out := rec.Clone()
	for faction, delta := range changes {
		out.AdjustReputation(faction, delta)
	}
	return out
}

func (e *Engine) adjustXP(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	if set, ok := args.IntOK("set"); ok {
		out.XP = set
	} else {
		out.XP += args.Int("amount")
	}
	return out
}

func (e *Engine) adjustHP(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	if set, ok := args.IntOK("set"); ok {
		out.SetHP(set)
	} else {
		out.AdjustHP(args.Int("amount"))
	}
	return out
}

func (e *Engine) recordSavingThrow(rec *campaign.Record, args Args) *campaign.Record {
	ability := args.Lower("ability")
	if ability == "" {
		return rec
	}
	out := rec.Clone()
	if out.SavingThrows == nil {
		out.SavingThrows = make(map[string]int)
	}
	out.SavingThrows[ability] = args.Int("roll")
	return out
}

func (e *Engine) addInventoryItem(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	item := itemFromArgs(args.Map("item"))
	item.ID = e.newID()
	out.Inventory = inventory.AddItem(out.Inventory, args.String("section"), item)
	return out
}

func (e *Engine) consumeInventoryItem(rec *campaign.Record, args Args) *campaign.Record {
	inv, _, ok := inventory.RemoveItem(rec.Inventory, args.String("section"), args.String("id"), args.String("name"))
	if !ok {
		return rec
	}
	out := rec.Clone()
	out.Inventory = inv
	return out
}

func (e *Engine) equipWeapon(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	out.Inventory = inventory.EquipWeapon(out.Inventory, args.String("id"))
	return out
}

func (e *Engine) unequipWeapon(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	out.Inventory = inventory.UnequipWeapon(out.Inventory, args.Int("slot"))
	return out
}

func (e *Engine) equipArmor(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	out.Inventory = inventory.EquipArmor(out.Inventory, args.String("id"))
	return out
}

func (e *Engine) unequipArmor(rec *campaign.Record, args Args) *campaign.Record {
	out := rec.Clone()
	out.Inventory = inventory.UnequipArmor(out.Inventory, inventory.ResolveArmorSlot(args.String("slot")))
	return out
}

func (e *Engine) useConsumable(rec *campaign.Record, args Args) *campaign.Record {
	out, _ := campaign.UseConsumable(rec, args.String("section"), args.String("id"), args.String("name"))
	return out
}

func (e *Engine) spendSkillPoint(rec *campaign.Record, args Args) *campaign.Record {
	ability := args.Lower("ability")
	if !campaign.IsAbility(ability) {
		return rec
	}
	out := rec.Clone()
	if !out.SpendSkillPoint(ability) {
		return rec
	}
	return out
}

func (e *Engine) addAbilityXP(rec *campaign.Record, args Args) *campaign.Record {
	ability := args.Lower("ability")
	if !campaign.IsAbility(ability) {
		return rec
	}
	out := rec.Clone()
	out.GrantAbilityExperience(ability, args.Int("amount"))
	return out
}

func (e *Engine) addSkillXP(rec *campaign.Record, args Args) *campaign.Record {
	skill := args.Lower("skill")
	if skill == "" {
		return rec
	}
	out := rec.Clone()
	out.GrantSkillExperience(skill, args.Int("amount"))
	return out
}

func itemFromArgs(args Args) inventory.Item {
	return inventory.Item{
		Name:              args.String("name"),
		Rarity:            args.String("rarity"),
		Quantity:          args.Int("quantity"),
		Damage:            args.String("damage"),
		WeaponType:        args.String("weapon_type"),
		AC:                args.Int("ac"),
		Slot:              args.String("slot"),
		Effect:            args.String("effect"),
		Potency:           args.Int("potency"),
		Heal:              args.Int("heal"),
		Skill:             args.String("skill"),
		SkillXP:           args.Int("skill_xp"),
		Ability:           args.String("ability"),
		AbilityScoreBoost: args.Int("ability_score_boost"),
	}
}
