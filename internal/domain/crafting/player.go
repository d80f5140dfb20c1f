package crafting

import (
	"fmt"
	"strings"
	"time"
)

// Player is the aggregate root and the sole unit of persistence. All
// contained entities are owned exclusively by the player except materials,
// which are identity tokens shared by reference between the inventory and
// grid cells.
type Player struct {
	Name            string
	Inventory       *Inventory
	Grid            *CraftingGrid
	BaseInitialized bool
	Machines        []*Machine
	Plants          []*Plant
	Scripts         []*Script
	Objects         *ObjectDictionary
	Cooldowns       []ResourceCooldown
	DeveloperMode   bool
	Power           float64
}

func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		Inventory: NewInventory(),
		Grid:      DefaultCraftingGrid(),
		Objects:   NewObjectDictionary(),
	}
}

// InitializeBase is idempotent; calling it twice changes nothing further.
func (p *Player) InitializeBase() {
	p.BaseInitialized = true
}

// PlaceFromInventory moves a material stack unit from the inventory onto
// the grid as one logical transaction. The grid placement is rolled back
// when the inventory debit fails, so an item can never exist in both
// places at once.
func (p *Player) PlaceFromInventory(x, y, layer int, materialName string) (*Material, error) {
	item, ok := p.Inventory.FindByName(materialName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMaterialNotFound, materialName)
	}
	material := item.Material
	if err := p.Grid.Place(x, y, layer, material); err != nil {
		return nil, err
	}
	if !p.Inventory.Remove(material.ID, 1) {
		// Roll back the placement; the cell was empty a moment ago.
		p.Grid.Remove(x, y, layer)
		return nil, fmt.Errorf("%w: %s", ErrInsufficientQuantity, materialName)
	}
	return material, nil
}

// RemoveToInventory takes a material off the grid and restores it to the
// inventory as one logical transaction.
func (p *Player) RemoveToInventory(x, y, layer int) (*Material, error) {
	material, err := p.Grid.Remove(x, y, layer)
	if err != nil {
		return nil, err
	}
	p.Inventory.Add(material, 1)
	return material, nil
}

// Craft consumes the recipe inputs and credits the output. The whole
// operation is check-then-commit: if any input is short, nothing is
// mutated.
func (p *Player) Craft(recipe *Recipe) error {
	if recipe == nil || len(recipe.Inputs) == 0 || recipe.Output == nil {
		return ErrInvalidRecipe
	}
	for materialID, required := range recipe.Inputs {
		if p.Inventory.Quantity(materialID) < required {
			return fmt.Errorf("%w: material %s requires %d", ErrInsufficientQuantity, materialID, required)
		}
	}
	for materialID, required := range recipe.Inputs {
		p.Inventory.Remove(materialID, required)
	}
	p.Inventory.Add(recipe.Output, recipe.OutputQuantity)
	return nil
}

func (p *Player) AddMachine(m *Machine) {
	p.Machines = append(p.Machines, m)
}

func (p *Player) FindMachine(name string) (*Machine, bool) {
	for _, m := range p.Machines {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return nil, false
}

func (p *Player) RemoveMachine(name string) bool {
	for i, m := range p.Machines {
		if strings.EqualFold(m.Name, name) {
			p.Machines = append(p.Machines[:i], p.Machines[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Player) AddPlant(plant *Plant) {
	p.Plants = append(p.Plants, plant)
}

func (p *Player) RemovePlant(id string) bool {
	for i, plant := range p.Plants {
		if plant.ID == id {
			p.Plants = append(p.Plants[:i], p.Plants[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Player) AddScript(s *Script) {
	p.Scripts = append(p.Scripts, s)
}

func (p *Player) FindScript(name string) (*Script, bool) {
	for _, s := range p.Scripts {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return nil, false
}

func (p *Player) RemoveScript(name string) bool {
	for i, s := range p.Scripts {
		if strings.EqualFold(s.Name, name) {
			p.Scripts = append(p.Scripts[:i], p.Scripts[i+1:]...)
			return true
		}
	}
	return false
}

// PruneCooldowns drops resource cooldown records that have ended.
func (p *Player) PruneCooldowns(now time.Time) {
	kept := p.Cooldowns[:0]
	for _, cd := range p.Cooldowns {
		if !cd.Over(now) {
			kept = append(kept, cd)
		}
	}
	p.Cooldowns = kept
}
