// Package inventory keeps the equipped/pool item partition consistent.
// Every operation takes an Inventory value and returns a new one; items
// are never aliased between equipped slots and pool sections.
package inventory

// WeaponSlots is the number of weapon slots. A two-handed weapon occupies
// both with the identical item value.
const WeaponSlots = 2

// Inventory partitions a character's items into equipped slots and the
// unequipped pool sections.
type Inventory struct {
	EquippedWeapons [WeaponSlots]*Item  `json:"equipped_weapons"`
	EquippedArmor   map[ArmorSlot]*Item `json:"equipped_armor,omitempty"`
	Sections        map[string][]Item   `json:"sections,omitempty"`
}

// New returns an empty inventory with all sections initialized.
func New() Inventory {
	inv := Inventory{
		EquippedArmor: make(map[ArmorSlot]*Item),
		Sections:      make(map[string][]Item),
	}
	for _, s := range Sections {
		inv.Sections[s] = []Item{}
	}
	return inv
}

// Clone deep-copies the inventory so transformations never share slices or
// maps with the input value.
func (inv Inventory) Clone() Inventory {
	out := inv
	out.EquippedArmor = make(map[ArmorSlot]*Item, len(inv.EquippedArmor))
	for slot, it := range inv.EquippedArmor {
		if it != nil {
			cp := *it
			out.EquippedArmor[slot] = &cp
		} else {
			out.EquippedArmor[slot] = nil
		}
	}
	for i, it := range inv.EquippedWeapons {
		if it != nil {
			cp := *it
			out.EquippedWeapons[i] = &cp
		}
	}
	out.Sections = make(map[string][]Item, len(inv.Sections))
	for name, items := range inv.Sections {
		out.Sections[name] = append([]Item(nil), items...)
	}
	return out
}

// AddItem appends an item to the named pool section, normalizing the
// section name first.
func AddItem(inv Inventory, section string, item Item) Inventory {
	out := inv.Clone()
	section = NormalizeSection(section)
	if out.Sections == nil {
		out.Sections = make(map[string][]Item)
	}
	out.Sections[section] = append(out.Sections[section], item)
	return out
}

// EquipWeapon moves the identified item from the weapons pool into the
// weapon slots. Equipping a two-handed weapon fills both slots and returns
// any prior occupants to the pool. Equipping one-handed first unequips a
// two-handed occupant, then takes the first empty slot, or displaces
// slot 0 when both are full. Unknown ids are a no-op.
func EquipWeapon(inv Inventory, id string) Inventory {
	out := inv.Clone()
	item, ok := takeFromSection(&out, SectionWeapons, id)
	if !ok {
		return inv
	}

	if item.IsTwoHanded() {
		returnEquippedWeapons(&out)
		cp0, cp1 := *item, *item
		out.EquippedWeapons[0] = &cp0
		out.EquippedWeapons[1] = &cp1
		return out
	}

	// A two-handed occupant must vacate both slots first.
	if out.EquippedWeapons[0] != nil && out.EquippedWeapons[0].IsTwoHanded() {
		returnEquippedWeapons(&out)
	}

	switch {
	case out.EquippedWeapons[0] == nil:
		out.EquippedWeapons[0] = item
	case out.EquippedWeapons[1] == nil:
		out.EquippedWeapons[1] = item
	default:
		out.Sections[SectionWeapons] = append(out.Sections[SectionWeapons], *out.EquippedWeapons[0])
		out.EquippedWeapons[0] = item
	}
	return out
}

// UnequipWeapon clears a weapon slot, returning the occupant to the pool.
// A two-handed occupant vacates both slots but only one item returns.
func UnequipWeapon(inv Inventory, slot int) Inventory {
	if slot < 0 || slot >= WeaponSlots || inv.EquippedWeapons[slot] == nil {
		return inv
	}
	out := inv.Clone()
	occupant := *out.EquippedWeapons[slot]
	if occupant.IsTwoHanded() {
		out.EquippedWeapons[0] = nil
		out.EquippedWeapons[1] = nil
	} else {
		out.EquippedWeapons[slot] = nil
	}
	out.Sections[SectionWeapons] = append(out.Sections[SectionWeapons], occupant)
	return out
}

// EquipArmor moves the identified item from the armor pool into the slot
// resolved from its stated slot name, returning any prior occupant to the
// pool. Unknown ids are a no-op.
func EquipArmor(inv Inventory, id string) Inventory {
	out := inv.Clone()
	item, ok := takeFromSection(&out, SectionArmor, id)
	if !ok {
		return inv
	}
	slot := ResolveArmorSlot(item.Slot)
	if out.EquippedArmor == nil {
		out.EquippedArmor = make(map[ArmorSlot]*Item)
	}
	if prior := out.EquippedArmor[slot]; prior != nil {
		out.Sections[SectionArmor] = append(out.Sections[SectionArmor], *prior)
	}
	out.EquippedArmor[slot] = item
	return out
}

// UnequipArmor clears an armor slot, returning the occupant to the pool.
func UnequipArmor(inv Inventory, slot ArmorSlot) Inventory {
	if inv.EquippedArmor[slot] == nil {
		return inv
	}
	out := inv.Clone()
	occupant := *out.EquippedArmor[slot]
	out.EquippedArmor[slot] = nil
	out.Sections[SectionArmor] = append(out.Sections[SectionArmor], occupant)
	return out
}

// RemoveItem takes one unit of a pool item matched by id first, then by
// name. When section is empty every section is searched. An item with
// quantity above one is decremented instead of removed. The returned item
// is the matched value; ok is false when nothing matched.
func RemoveItem(inv Inventory, section, id, name string) (Inventory, *Item, bool) {
	if id == "" && name == "" {
		return inv, nil, false
	}

	sections := Sections
	if section != "" {
		sections = []string{NormalizeSection(section)}
	}

	out := inv.Clone()
	// Id matches take priority over name matches across all sections.
	if id != "" {
		for _, s := range sections {
			if item, ok := removeAt(&out, s, func(it Item) bool { return it.ID == id }); ok {
				return out, item, true
			}
		}
	}
	if name != "" {
		for _, s := range sections {
			if item, ok := removeAt(&out, s, func(it Item) bool { return it.Name == name }); ok {
				return out, item, true
			}
		}
	}
	return inv, nil, false
}

// Find locates a pool item without removing it, using the same matching
// rules as RemoveItem: id first, then name, across the given section or
// all of them.
func Find(inv Inventory, section, id, name string) (*Item, bool) {
	if id == "" && name == "" {
		return nil, false
	}
	sections := Sections
	if section != "" {
		sections = []string{NormalizeSection(section)}
	}
	if id != "" {
		for _, s := range sections {
			for _, it := range inv.Sections[s] {
				if it.ID == id {
					cp := it
					return &cp, true
				}
			}
		}
	}
	if name != "" {
		for _, s := range sections {
			for _, it := range inv.Sections[s] {
				if it.Name == name {
					cp := it
					return &cp, true
				}
			}
		}
	}
	return nil, false
}

// CountItems totals the items held in every pool section.
func (inv Inventory) CountItems() int {
	n := 0
	for _, items := range inv.Sections {
		n += len(items)
	}
	return n
}

// EquippedWeaponItems returns the distinct equipped weapons in slot order.
// A two-handed weapon is reported once.
func (inv Inventory) EquippedWeaponItems() []Item {
	var out []Item
	for i, it := range inv.EquippedWeapons {
		if it == nil {
			continue
		}
		if i == 1 && it.IsTwoHanded() {
			continue
		}
		out = append(out, *it)
	}
	return out
}

func takeFromSection(inv *Inventory, section, id string) (*Item, bool) {
	items := inv.Sections[section]
	for i, it := range items {
		if it.ID == id {
			cp := it
			inv.Sections[section] = append(items[:i:i], items[i+1:]...)
			return &cp, true
		}
	}
	return nil, false
}

func removeAt(inv *Inventory, section string, match func(Item) bool) (*Item, bool) {
	items := inv.Sections[section]
	for i, it := range items {
		if !match(it) {
			continue
		}
		cp := it
		if it.Quantity > 1 {
			it.Quantity--
			items[i] = it
			inv.Sections[section] = items
		} else {
			inv.Sections[section] = append(items[:i:i], items[i+1:]...)
		}
		return &cp, true
	}
	return nil, false
}

// returnEquippedWeapons clears both weapon slots, appending the distinct
// occupants back to the weapons pool.
func returnEquippedWeapons(inv *Inventory) {
	returned := make(map[string]bool)
	for i, it := range inv.EquippedWeapons {
		if it == nil {
			continue
		}
		if !it.IsTwoHanded() || !returned[it.ID] {
			inv.Sections[SectionWeapons] = append(inv.Sections[SectionWeapons], *it)
			returned[it.ID] = true
		}
		inv.EquippedWeapons[i] = nil
	}
}
