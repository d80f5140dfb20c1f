package crafting

import (
	"errors"
	"testing"
)

func TestPlaceFromInventoryMovesExactlyOneUnit(t *testing.T) {
	p := NewPlayer("tester")
	iron := testMaterial("m1", "Iron")
	p.Inventory.Add(iron, 2)

	placed, err := p.PlaceFromInventory(0, 0, 0, "iron")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if placed != iron {
		t.Fatalf("expected the inventory material placed")
	}
	if got := p.Inventory.Quantity("m1"); got != 1 {
		t.Fatalf("inventory not debited: got=%d want=1", got)
	}
	if p.Grid.MaterialAt(0, 0, 0) != iron {
		t.Fatalf("grid cell does not hold the material")
	}
}

func TestPlaceFromInventoryUnknownName(t *testing.T) {
	p := NewPlayer("tester")
	if _, err := p.PlaceFromInventory(0, 0, 0, "Iron"); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}

func TestPlaceFromInventoryOccupiedLeavesInventoryIntact(t *testing.T) {
	p := NewPlayer("tester")
	p.Inventory.Add(testMaterial("m1", "Iron"), 1)
	p.Inventory.Add(testMaterial("m2", "Wood"), 1)
	if _, err := p.PlaceFromInventory(0, 0, 0, "Iron"); err != nil {
		t.Fatalf("first place: %v", err)
	}

	_, err := p.PlaceFromInventory(0, 0, 0, "Wood")
	if !errors.Is(err, ErrPositionOccupied) {
		t.Fatalf("expected ErrPositionOccupied, got %v", err)
	}
	if got := p.Inventory.Quantity("m2"); got != 1 {
		t.Fatalf("failed place must not touch inventory: got=%d want=1", got)
	}
}

func TestRemoveToInventoryRestoresStack(t *testing.T) {
	p := NewPlayer("tester")
	iron := testMaterial("m1", "Iron")
	p.Inventory.Add(iron, 1)
	if _, err := p.PlaceFromInventory(1, 1, 0, "Iron"); err != nil {
		t.Fatalf("place: %v", err)
	}
	if p.Inventory.Len() != 0 {
		t.Fatalf("expected empty inventory while material is on the grid")
	}

	got, err := p.RemoveToInventory(1, 1, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got != iron {
		t.Fatalf("expected same material reference back")
	}
	if p.Inventory.Quantity("m1") != 1 {
		t.Fatalf("material not restored to inventory")
	}
	if p.Grid.MaterialAt(1, 1, 0) != nil {
		t.Fatalf("grid cell should be empty")
	}
}

func TestCraftAllOrNothing(t *testing.T) {
	p := NewPlayer("tester")
	iron := testMaterial("iron", "Iron")
	wood := testMaterial("wood", "Wood")
	plate := testMaterial("plate", "Iron Plate")
	p.Inventory.Add(iron, 2)
	p.Inventory.Add(wood, 2)

	recipe := &Recipe{
		ID:             "r1",
		Name:           "Iron Plate",
		Inputs:         map[string]int{"iron": 3, "wood": 2},
		Output:         plate,
		OutputQuantity: 1,
		RequiredLayers: 1,
	}

	err := p.Craft(recipe)
	if !errors.Is(err, ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
	}
	if p.Inventory.Quantity("iron") != 2 || p.Inventory.Quantity("wood") != 2 {
		t.Fatalf("failed craft must not consume anything")
	}
	if p.Inventory.Quantity("plate") != 0 {
		t.Fatalf("failed craft must not produce output")
	}

	p.Inventory.Add(iron, 1)
	if err := p.Craft(recipe); err != nil {
		t.Fatalf("craft: %v", err)
	}
	if _, ok := p.Inventory.Get("iron"); ok {
		t.Fatalf("iron stack should be fully consumed and removed")
	}
	if _, ok := p.Inventory.Get("wood"); ok {
		t.Fatalf("wood stack should be fully consumed and removed")
	}
	if got := p.Inventory.Quantity("plate"); got != 1 {
		t.Fatalf("expected crafted output, got %d", got)
	}
}

func TestCraftRejectsEmptyRecipe(t *testing.T) {
	p := NewPlayer("tester")
	err := p.Craft(&Recipe{ID: "r1", Name: "bad", Output: testMaterial("o", "O")})
	if !errors.Is(err, ErrInvalidRecipe) {
		t.Fatalf("expected ErrInvalidRecipe, got %v", err)
	}
}

func TestInitializeBaseIdempotent(t *testing.T) {
	p := NewPlayer("tester")
	p.InitializeBase()
	p.InitializeBase()
	if !p.BaseInitialized {
		t.Fatalf("expected base initialized")
	}
}

func TestMachinePlantScriptManagement(t *testing.T) {
	p := NewPlayer("tester")

	p.AddMachine(NewMachine("Drill", "", nil, 0, 0))
	if _, ok := p.FindMachine("dRiLl"); !ok {
		t.Fatalf("expected case-insensitive machine lookup")
	}
	if !p.RemoveMachine("DRILL") {
		t.Fatalf("expected machine removal")
	}
	if p.RemoveMachine("Drill") {
		t.Fatalf("removing a missing machine must report failure")
	}

	plant := NewPlant("Fern", newTestRand())
	p.AddPlant(plant)
	if !p.RemovePlant(plant.ID) {
		t.Fatalf("expected plant removal by id")
	}
	if p.RemovePlant("nope") {
		t.Fatalf("removing a missing plant must report failure")
	}

	p.AddScript(NewScript("harvest", fixedTime()))
	if _, ok := p.FindScript("HARVEST"); !ok {
		t.Fatalf("expected case-insensitive script lookup")
	}
	if !p.RemoveScript("harvest") {
		t.Fatalf("expected script removal")
	}
	if p.RemoveScript("harvest") {
		t.Fatalf("removing a missing script must report failure")
	}
}
