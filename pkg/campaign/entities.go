package campaign

import "time"

// Entry is a tracked narrative log item: a quest, bounty, or rumor.
// Lifecycle is append/patch/remove through commands only.
type Entry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	Reward      string `json:"reward,omitempty"`
	Location    string `json:"location,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// EntryPatch carries partial updates for an Entry. Empty fields are left
// untouched during a merge.
type EntryPatch struct {
	Title       string `json:"title,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	Reward      string `json:"reward,omitempty"`
	Location    string `json:"location,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Merge shallow-merges non-empty patch fields onto the entry.
func (e Entry) Merge(p EntryPatch) Entry {
	if p.Title != "" {
		e.Title = p.Title
	}
	if p.Status != "" {
		e.Status = p.Status
	}
	if p.Description != "" {
		e.Description = p.Description
	}
	if p.Reward != "" {
		e.Reward = p.Reward
	}
	if p.Location != "" {
		e.Location = p.Location
	}
	if p.Notes != "" {
		e.Notes = p.Notes
	}
	return e
}

// JournalEntry is a dated free-text record of the session.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NPC is an individual relationship tracked by the player, with a bounded
// standing value classified separately from faction reputation.
type NPC struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Location string `json:"location,omitempty"`
	Standing int    `json:"standing"`
	Notes    string `json:"notes,omitempty"`
}

// OssuaryDrop is an unclaimed loot drop awaiting transfer into inventory.
type OssuaryDrop struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rarity   string `json:"rarity,omitempty"`
	Section  string `json:"section,omitempty"`
	Source   string `json:"source,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// Spell is a single learned spell inside a spellbook category.
type Spell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level,omitempty"`
	Description string `json:"description,omitempty"`
}

// SpellCategory groups spells under a labeled section of the spellbook.
type SpellCategory struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Spells []Spell `json:"spells,omitempty"`
}

// Buff is a short-lived effect summary shown to the player.
type Buff struct {
	Name      string    `json:"name"`
	Effect    string    `json:"effect,omitempty"`
	AppliedAt time.Time `json:"applied_at"`
}

// FindEntry locates an entry by id first, then by title. It returns the
// index, or -1 when nothing matches.
func FindEntry(entries []Entry, id, title string) int {
	if id != "" {
		for i, e := range entries {
			if e.ID == id {
				return i
			}
		}
	}
	if title != "" {
		for i, e := range entries {
			if e.Title == title {
				return i
			}
		}
	}
	return -1
}
