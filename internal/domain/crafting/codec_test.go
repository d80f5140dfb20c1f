package crafting

import (
	"errors"
	"testing"
	"time"
)

func buildSamplePlayer(t *testing.T) *Player {
	t.Helper()
	p := NewPlayer("miner")
	p.InitializeBase()
	p.DeveloperMode = true
	p.Power = 12.5

	iron := testMaterial("iron", "Iron")
	wood := testMaterial("wood", "Wood")
	p.Inventory.Add(iron, 4)
	p.Inventory.Add(wood, 2)
	if _, err := p.PlaceFromInventory(1, 2, 0, "Iron"); err != nil {
		t.Fatalf("place: %v", err)
	}

	machine := NewMachine("Extractor", "pulls ore", map[string]any{"resource_output": "Ore"}, 45*time.Second, -3)
	machine.Active = true
	machine.LastUsed = time.Unix(1_700_000_100, 0)
	machine.Grid = NewCraftingGrid(2, 2, 1)
	if err := machine.Grid.Place(0, 1, 0, wood); err != nil {
		t.Fatalf("machine grid place: %v", err)
	}
	p.AddMachine(machine)

	script := NewScript("harvest", fixedTime())
	script.Update("mine\nmine\n", fixedTime().Add(time.Minute))
	p.AddScript(script)

	p.AddPlant(NewPlant("Fern", newTestRand()))
	p.Objects.Add("Metal", "iron")
	p.Objects.Add("Recipe", "rcp-1")
	p.Cooldowns = append(p.Cooldowns, ResourceCooldown{ResourceID: "iron", CooldownEndTime: time.Unix(1_700_000_500, 0)})
	return p
}

func TestDocumentRoundTrip(t *testing.T) {
	p := buildSamplePlayer(t)

	data, err := EncodeDocument(p, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDocument(data, NewCatalog(), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Name != p.Name || got.BaseInitialized != p.BaseInitialized ||
		got.DeveloperMode != p.DeveloperMode || got.Power != p.Power {
		t.Fatalf("scalar fields not preserved: %+v", got)
	}

	if got.Inventory.Quantity("iron") != 3 || got.Inventory.Quantity("wood") != 2 {
		t.Fatalf("inventory quantities not preserved")
	}
	item, ok := got.Inventory.FindByName("Iron")
	if !ok || item.Material.Rarity != RarityCommon || item.Material.Quality != 0.5 {
		t.Fatalf("material attributes not preserved: %+v", item)
	}

	cell := got.Grid.MaterialAt(1, 2, 0)
	if cell == nil || cell.ID != "iron" {
		t.Fatalf("grid occupancy not preserved")
	}
	inv, _ := got.Inventory.Get("iron")
	if cell != inv.Material {
		t.Fatalf("grid cell must reference the same material object as the inventory stack")
	}

	if len(got.Machines) != 1 {
		t.Fatalf("machine list not preserved")
	}
	m := got.Machines[0]
	if m.CooldownTime != 45*time.Second || !m.Active || m.Power != -3 {
		t.Fatalf("machine state not preserved: %+v", m)
	}
	if !m.LastUsed.Equal(time.Unix(1_700_000_100, 0)) {
		t.Fatalf("machine last-used not preserved: %v", m.LastUsed)
	}
	if m.Behavior.Kind != BehaviorResourceGenerator || m.Behavior.MaterialName != "Ore" {
		t.Fatalf("machine behavior not re-decoded: %+v", m.Behavior)
	}
	if m.Grid == nil || m.Grid.MaterialAt(0, 1, 0) == nil {
		t.Fatalf("embedded machine grid not preserved")
	}

	if len(got.Scripts) != 1 || got.Scripts[0].Content != "mine\nmine\n" {
		t.Fatalf("scripts not preserved")
	}
	if !got.Scripts[0].CreatedAt.Equal(fixedTime()) {
		t.Fatalf("script timestamps not preserved")
	}
	if len(got.Plants) != 1 || got.Plants[0].Genetics.Species != "Fern" {
		t.Fatalf("plants not preserved")
	}
	if ids := got.Objects.Category("Metal"); len(ids) != 1 || ids[0] != "iron" {
		t.Fatalf("object dictionary not preserved")
	}
	if len(got.Cooldowns) != 1 || !got.Cooldowns[0].CooldownEndTime.Equal(time.Unix(1_700_000_500, 0)) {
		t.Fatalf("cooldown records not preserved")
	}
}

func TestDecodeDocumentMalformedJSON(t *testing.T) {
	if _, err := DecodeDocument([]byte("{not json"), NewCatalog(), nil); !errors.Is(err, ErrSerialization) {
		t.Fatalf("expected ErrSerialization, got %v", err)
	}
}

// A stack fully moved onto the grid leaves the inventory section empty; the
// document must still hydrate in a fresh process whose catalog has never
// seen the material.
func TestDocumentRoundTripDepletedStack(t *testing.T) {
	p := NewPlayer("miner")
	p.InitializeBase()
	ore := testMaterial("ore-1", "Ore")
	p.Inventory.Add(ore, 1)
	if _, err := p.PlaceFromInventory(0, 0, 0, "Ore"); err != nil {
		t.Fatalf("place: %v", err)
	}
	if p.Inventory.Len() != 0 {
		t.Fatalf("expected inventory emptied by placing the only unit")
	}

	data, err := EncodeDocument(p, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDocument(data, NewCatalog(), nil)
	if err != nil {
		t.Fatalf("decode with empty catalog: %v", err)
	}
	cell := got.Grid.MaterialAt(0, 0, 0)
	if cell == nil || cell.ID != "ore-1" {
		t.Fatalf("grid occupancy not preserved: %+v", cell)
	}
	if cell.Name != "Ore" || cell.Rarity != RarityCommon || cell.Quality != 0.5 {
		t.Fatalf("material attributes not preserved: %+v", cell)
	}
}

func TestDocumentRoundTripDepletedMachineGridStack(t *testing.T) {
	p := NewPlayer("miner")
	p.InitializeBase()
	gem := testMaterial("gem-1", "Gem")
	machine := NewMachine("Polisher", "", nil, time.Minute, 1)
	machine.Grid = NewCraftingGrid(1, 1, 1)
	if err := machine.Grid.Place(0, 0, 0, gem); err != nil {
		t.Fatalf("machine grid place: %v", err)
	}
	p.AddMachine(machine)

	data, err := EncodeDocument(p, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDocument(data, NewCatalog(), nil)
	if err != nil {
		t.Fatalf("decode with empty catalog: %v", err)
	}
	m, ok := got.FindMachine("Polisher")
	if !ok || m.Grid == nil {
		t.Fatalf("machine not preserved")
	}
	if cell := m.Grid.MaterialAt(0, 0, 0); cell == nil || cell.ID != "gem-1" {
		t.Fatalf("machine grid occupancy not preserved: %+v", cell)
	}
}

func TestDocumentRoundTripRecipes(t *testing.T) {
	p := NewPlayer("miner")
	reg := NewRecipeRegistry()
	plate := testMaterial("plate-1", "Iron Plate")
	recipe := &Recipe{
		Name:           "Iron Plate",
		Inputs:         map[string]int{"iron": 3},
		Output:         plate,
		OutputQuantity: 1,
		RequiredLayers: 2,
		BuildTime:      90 * time.Second,
	}
	if err := reg.Register(recipe); err != nil {
		t.Fatalf("register: %v", err)
	}

	data, err := EncodeDocument(p, reg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	catalog := NewCatalog()
	restored := NewRecipeRegistry()
	if _, err := DecodeDocument(data, catalog, restored); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got, err := restored.FindByName("Iron Plate")
	if err != nil {
		t.Fatalf("restored recipe missing: %v", err)
	}
	if got.ID != recipe.ID || got.Inputs["iron"] != 3 || got.RequiredLayers != 2 {
		t.Fatalf("recipe not preserved: %+v", got)
	}
	if got.BuildTime != 90*time.Second {
		t.Fatalf("build time not preserved: %v", got.BuildTime)
	}
	if got.Output == nil || got.Output.ID != "plate-1" {
		t.Fatalf("recipe output not preserved: %+v", got.Output)
	}
	if _, ok := catalog.Lookup("plate-1"); !ok {
		t.Fatalf("recipe output not registered in catalog")
	}
}

func TestToDocumentCopiesMachineProperties(t *testing.T) {
	p := NewPlayer("miner")
	machine := NewMachine("Extractor", "", map[string]any{"resource_output": "Ore"}, time.Minute, 1)
	machine.Parts = []MachinePart{{ID: "part-1", Name: "drill", PartType: "bore"}}
	p.AddMachine(machine)

	doc := ToDocument(p)
	machine.Properties["resource_output"] = "Slag"
	machine.Parts[0].Name = "bit"

	if got := doc.Machines[0].Properties["resource_output"]; got != "Ore" {
		t.Fatalf("document properties alias the machine: %v", got)
	}
	if got := doc.Machines[0].Parts[0].Name; got != "drill" {
		t.Fatalf("document parts alias the machine: %v", got)
	}
}

func TestFromDocumentGridNeedsKnownMaterials(t *testing.T) {
	ghost := "ghost"
	doc := Document{
		Name:      "p",
		Inventory: map[string]InventoryEntry{},
		CraftingGrid: GridDocument{
			Width: 1, Height: 1, Layers: 1,
			Grid: [][][]*string{{{&ghost}}},
		},
	}
	if _, err := FromDocument(doc, NewCatalog()); !errors.Is(err, ErrSerialization) {
		t.Fatalf("expected ErrSerialization for unknown grid material, got %v", err)
	}

	// The same document hydrates once the catalog can resolve the id.
	catalog := NewCatalog()
	catalog.Register(testMaterial("ghost", "Ghost"))
	p, err := FromDocument(doc, catalog)
	if err != nil {
		t.Fatalf("decode with catalog: %v", err)
	}
	if p.Grid.MaterialAt(0, 0, 0) == nil {
		t.Fatalf("expected grid hydrated from catalog")
	}
}

func TestFromDocumentRejectsMismatchedInventoryKey(t *testing.T) {
	doc := Document{
		Name: "p",
		Inventory: map[string]InventoryEntry{
			"a": {Material: MaterialDocument{ID: "b", Name: "B"}, Quantity: 1},
		},
	}
	if _, err := FromDocument(doc, NewCatalog()); !errors.Is(err, ErrSerialization) {
		t.Fatalf("expected ErrSerialization, got %v", err)
	}
}
