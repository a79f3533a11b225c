// Package campaign defines the Campaign Record, the sole persistent
// aggregate tracked for a character, and the transformations that evolve
// it. A Record is only ever replaced wholesale by a new value computed
// from commands; the engine never retains external references into one.
package campaign

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberfell/campaign-engine/pkg/chat"
	"github.com/emberfell/campaign-engine/pkg/inventory"
	"github.com/emberfell/campaign-engine/pkg/progression"
	"github.com/emberfell/campaign-engine/pkg/reputation"
)

// MaxBuffs caps the buff list; the oldest entry is evicted on overflow.
const MaxBuffs = 5

// DefaultHP is the starting hit point pool at character creation.
const DefaultHP = 20

// Record is the campaign state for a single character.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	Version   int64     `json:"version"`

	AbilityScores   map[string]int `json:"ability_scores,omitempty"`
	AbilityProgress map[string]int `json:"ability_progress,omitempty"`
	SkillLevels     map[string]int `json:"skill_levels,omitempty"`
	SkillProgress   map[string]int `json:"skill_progress,omitempty"`
	SkillPoints     int            `json:"skill_points"`
	Reputation      map[string]int `json:"reputation,omitempty"`
	SavingThrows    map[string]int `json:"saving_throws,omitempty"`

	XP        int `json:"xp"`
	HP        int `json:"hp"`
	HPCurrent int `json:"hp_current"`

	Inventory inventory.Inventory `json:"inventory"`
	Buffs     []Buff              `json:"buffs,omitempty"`

	Quests         []Entry         `json:"quests,omitempty"`
	Bounties       []Entry         `json:"bounties,omitempty"`
	Rumors         []Entry         `json:"rumors,omitempty"`
	JournalEntries []JournalEntry  `json:"journal_entries,omitempty"`
	NPCs           []NPC           `json:"npcs,omitempty"`
	OssuaryDrops   []OssuaryDrop   `json:"ossuary_drops,omitempty"`
	Spellbook      []SpellCategory `json:"spellbook,omitempty"`

	ChatHistory []chat.Message `json:"chat_history,omitempty"`
}

// NewRecord creates a campaign record with defaulted maps: all abilities
// at 10, skills and reputation at 0, and a starter inventory.
func NewRecord(name string) *Record {
	scores := make(map[string]int, len(Abilities))
	for _, a := range Abilities {
		scores[a] = progression.DefaultAbilityScore
	}
	return &Record{
		ID:              uuid.New(),
		Name:            name,
		CreatedAt:       time.Now(),
		AbilityScores:   scores,
		AbilityProgress: make(map[string]int),
		SkillLevels:     make(map[string]int),
		SkillProgress:   make(map[string]int),
		Reputation:      make(map[string]int),
		SavingThrows:    make(map[string]int),
		HP:              DefaultHP,
		HPCurrent:       DefaultHP,
		Inventory:       starterInventory(),
		ChatHistory:     make([]chat.Message, 0),
	}
}

func starterInventory() inventory.Inventory {
	inv := inventory.New()
	inv = inventory.AddItem(inv, inventory.SectionWeapons, inventory.Item{
		ID: uuid.NewString(), Name: "Worn Shortsword", Rarity: "common",
		Damage: "1d6", WeaponType: "melee",
	})
	inv = inventory.AddItem(inv, inventory.SectionArmor, inventory.Item{
		ID: uuid.NewString(), Name: "Traveler's Tunic", Rarity: "common",
		AC: 1, Slot: "body",
	})
	inv = inventory.AddItem(inv, inventory.SectionConsumables, inventory.Item{
		ID: uuid.NewString(), Name: "Minor Healing Draught", Rarity: "common",
		Effect: "restore health", Heal: 6, Quantity: 2,
	})
	return inv
}

// Clone deep-copies the record so every transformation produces a fresh
// value with no shared maps or slices.
func (r *Record) Clone() *Record {
	out := *r
	out.AbilityScores = cloneIntMap(r.AbilityScores)
	out.AbilityProgress = cloneIntMap(r.AbilityProgress)
	out.SkillLevels = cloneIntMap(r.SkillLevels)
	out.SkillProgress = cloneIntMap(r.SkillProgress)
	out.Reputation = cloneIntMap(r.Reputation)
	out.SavingThrows = cloneIntMap(r.SavingThrows)
	out.Inventory = r.Inventory.Clone()
	out.Buffs = append([]Buff(nil), r.Buffs...)
	out.Quests = append([]Entry(nil), r.Quests...)
	out.Bounties = append([]Entry(nil), r.Bounties...)
	out.Rumors = append([]Entry(nil), r.Rumors...)
	out.JournalEntries = append([]JournalEntry(nil), r.JournalEntries...)
	out.NPCs = append([]NPC(nil), r.NPCs...)
	out.OssuaryDrops = append([]OssuaryDrop(nil), r.OssuaryDrops...)
	out.Spellbook = make([]SpellCategory, len(r.Spellbook))
	for i, cat := range r.Spellbook {
		cat.Spells = append([]Spell(nil), cat.Spells...)
		out.Spellbook[i] = cat
	}
	out.ChatHistory = append([]chat.Message(nil), r.ChatHistory...)
	return &out
}

// AbilityScore reads an ability score, defaulting unset keys to 10.
func (r *Record) AbilityScore(ability string) int {
	if score, ok := r.AbilityScores[ability]; ok && score > 0 {
		return score
	}
	return progression.DefaultAbilityScore
}

// AddBuff prepends a buff summary, evicting the oldest past the cap.
func (r *Record) AddBuff(b Buff) {
	r.Buffs = append([]Buff{b}, r.Buffs...)
	if len(r.Buffs) > MaxBuffs {
		r.Buffs = r.Buffs[:MaxBuffs]
	}
}

// AdjustReputation applies a delta to a faction standing, clamped to the
// reputation bounds.
func (r *Record) AdjustReputation(faction string, delta int) {
	if r.Reputation == nil {
		r.Reputation = make(map[string]int)
	}
	r.Reputation[faction] = reputation.Clamp(r.Reputation[faction] + delta)
}

// SetHP replaces current HP, clamped to [0, HP].
func (r *Record) SetHP(value int) {
	if value < 0 {
		value = 0
	}
	if value > r.HP {
		value = r.HP
	}
	r.HPCurrent = value
}

// AdjustHP applies a delta to current HP, clamped to [0, HP].
func (r *Record) AdjustHP(delta int) {
	r.SetHP(r.HPCurrent + delta)
}

// GrantAbilityExperience routes earned experience through the progression
// curve for one ability.
func (r *Record) GrantAbilityExperience(ability string, amount int) {
	score, progress := progression.ApplyAbilityExperience(
		r.AbilityScore(ability), r.AbilityProgress[ability], amount)
	if r.AbilityScores == nil {
		r.AbilityScores = make(map[string]int)
	}
	if r.AbilityProgress == nil {
		r.AbilityProgress = make(map[string]int)
	}
	r.AbilityScores[ability] = score
	r.AbilityProgress[ability] = progress
}

// GrantSkillExperience routes earned experience through the skill curve,
// folding tier bonus points into the skill point pool.
func (r *Record) GrantSkillExperience(skill string, amount int) {
	level, progress, gained := progression.ApplySkillExperience(
		r.SkillLevels[skill], r.SkillProgress[skill], amount)
	if r.SkillLevels == nil {
		r.SkillLevels = make(map[string]int)
	}
	if r.SkillProgress == nil {
		r.SkillProgress = make(map[string]int)
	}
	r.SkillLevels[skill] = level
	r.SkillProgress[skill] = progress
	r.SkillPoints += gained
}

// SpendSkillPoint spends one pooled point to raise an ability by one.
func (r *Record) SpendSkillPoint(ability string) bool {
	scores, progress, points, ok := progression.SpendSkillPoint(
		r.AbilityScores, r.AbilityProgress, r.SkillPoints, ability)
	if !ok {
		return false
	}
	r.AbilityScores = scores
	r.AbilityProgress = progress
	r.SkillPoints = points
	return true
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
