package crafting

import (
	"sort"
	"strings"
)

// InventoryItem pairs one material with the quantity held.
type InventoryItem struct {
	Material *Material
	Quantity int
}

// Inventory is a multiset of materials keyed by material id. A stack whose
// quantity reaches zero is deleted, never retained.
type Inventory struct {
	items map[string]*InventoryItem
}

func NewInventory() *Inventory {
	return &Inventory{items: make(map[string]*InventoryItem)}
}

// Add merges quantity into an existing stack or inserts a new one.
func (inv *Inventory) Add(material *Material, quantity int) {
	if material == nil || quantity <= 0 {
		return
	}
	if item, ok := inv.items[material.ID]; ok {
		item.Quantity += quantity
		return
	}
	inv.items[material.ID] = &InventoryItem{Material: material, Quantity: quantity}
}

// Remove takes quantity from the stack with the given id. It fails without
// mutation when the id is absent or the stack is short; on exact depletion
// the stack entry is deleted.
func (inv *Inventory) Remove(materialID string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	item, ok := inv.items[materialID]
	if !ok || item.Quantity < quantity {
		return false
	}
	item.Quantity -= quantity
	if item.Quantity == 0 {
		delete(inv.items, materialID)
	}
	return true
}

// FindByName returns the first stack whose material name matches
// case-insensitively. Duplicate names under different ids resolve to
// whichever match is seen first.
func (inv *Inventory) FindByName(name string) (*InventoryItem, bool) {
	for _, item := range inv.items {
		if strings.EqualFold(item.Material.Name, name) {
			return item, true
		}
	}
	return nil, false
}

func (inv *Inventory) Get(materialID string) (*InventoryItem, bool) {
	item, ok := inv.items[materialID]
	return item, ok
}

func (inv *Inventory) Quantity(materialID string) int {
	item, ok := inv.items[materialID]
	if !ok {
		return 0
	}
	return item.Quantity
}

// Items returns all stacks ordered by material name, then id, so listings
// and serialization walk the inventory deterministically.
func (inv *Inventory) Items() []*InventoryItem {
	out := make([]*InventoryItem, 0, len(inv.items))
	for _, item := range inv.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Material.Name != out[j].Material.Name {
			return out[i].Material.Name < out[j].Material.Name
		}
		return out[i].Material.ID < out[j].Material.ID
	})
	return out
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}
