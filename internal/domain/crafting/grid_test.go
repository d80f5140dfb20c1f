package crafting

import (
	"errors"
	"testing"
)

func TestGridPlaceRemoveScenario(t *testing.T) {
	grid := NewCraftingGrid(3, 3, 1)
	a := testMaterial("m1", "A")
	b := testMaterial("m2", "B")

	if err := grid.Place(0, 0, 0, a); err != nil {
		t.Fatalf("place A: %v", err)
	}
	if err := grid.Place(0, 0, 0, b); !errors.Is(err, ErrPositionOccupied) {
		t.Fatalf("expected ErrPositionOccupied, got %v", err)
	}

	got, err := grid.Remove(0, 0, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got != a {
		t.Fatalf("expected the placed material back, got %v", got)
	}
	if grid.MaterialAt(0, 0, 0) != nil {
		t.Fatalf("expected cell empty after remove")
	}

	if _, err := grid.Remove(1, 1, 0); !errors.Is(err, ErrPositionEmpty) {
		t.Fatalf("expected ErrPositionEmpty, got %v", err)
	}
}

func TestGridBoundsGate(t *testing.T) {
	grid := NewCraftingGrid(2, 2, 2)
	cases := []struct {
		x, y, layer int
		valid       bool
	}{
		{0, 0, 0, true},
		{1, 1, 1, true},
		{2, 0, 0, false},
		{0, 2, 0, false},
		{0, 0, 2, false},
		{-1, 0, 0, false},
		{0, -1, 0, false},
		{0, 0, -1, false},
	}
	for _, tc := range cases {
		if got := grid.IsValidPosition(tc.x, tc.y, tc.layer); got != tc.valid {
			t.Fatalf("IsValidPosition(%d,%d,%d)=%v want %v", tc.x, tc.y, tc.layer, got, tc.valid)
		}
	}

	if err := grid.Place(2, 0, 0, testMaterial("m1", "A")); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition on place, got %v", err)
	}
	if _, err := grid.Remove(0, 0, 5); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition on remove, got %v", err)
	}
}

func TestGridPlaceRemoveAllValidPositions(t *testing.T) {
	grid := NewCraftingGrid(3, 2, 2)
	for layer := 0; layer < grid.Layers; layer++ {
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				m := testMaterial("m", "M")
				if err := grid.Place(x, y, layer, m); err != nil {
					t.Fatalf("place (%d,%d,%d): %v", x, y, layer, err)
				}
				got, err := grid.Remove(x, y, layer)
				if err != nil {
					t.Fatalf("remove (%d,%d,%d): %v", x, y, layer, err)
				}
				if got != m {
					t.Fatalf("expected same material back at (%d,%d,%d)", x, y, layer)
				}
				if grid.MaterialAt(x, y, layer) != nil {
					t.Fatalf("cell (%d,%d,%d) not empty after remove", x, y, layer)
				}
			}
		}
	}
}

func TestNewCraftingGridClampsDimensions(t *testing.T) {
	grid := NewCraftingGrid(0, -2, 0)
	if grid.Width != 1 || grid.Height != 1 || grid.Layers != 1 {
		t.Fatalf("expected 1x1x1 grid, got %dx%dx%d", grid.Width, grid.Height, grid.Layers)
	}
}
