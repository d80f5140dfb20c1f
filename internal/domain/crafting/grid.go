package crafting

// Default grid dimensions for a freshly created player base.
const (
	DefaultGridWidth  = 10
	DefaultGridHeight = 10
	DefaultGridLayers = 3
)

// CraftingGrid is a bounded 3-D array of optional material placements
// indexed as (layer, y, x). The grid holds references only; ownership of a
// placed material stays with the player, whose inventory must be debited in
// the same logical transaction (see Player.PlaceFromInventory).
type CraftingGrid struct {
	Width  int
	Height int
	Layers int

	cells [][][]*Material
}

// NewCraftingGrid builds an empty grid. Dimensions below 1 are clamped to 1.
func NewCraftingGrid(width, height, layers int) *CraftingGrid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if layers < 1 {
		layers = 1
	}
	cells := make([][][]*Material, layers)
	for l := range cells {
		cells[l] = make([][]*Material, height)
		for y := range cells[l] {
			cells[l][y] = make([]*Material, width)
		}
	}
	return &CraftingGrid{Width: width, Height: height, Layers: layers, cells: cells}
}

func DefaultCraftingGrid() *CraftingGrid {
	return NewCraftingGrid(DefaultGridWidth, DefaultGridHeight, DefaultGridLayers)
}

// IsValidPosition is the single bounds gate used by both placement and
// removal.
func (g *CraftingGrid) IsValidPosition(x, y, layer int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && layer >= 0 && layer < g.Layers
}

// Place puts a material reference into an empty cell. It never overwrites.
func (g *CraftingGrid) Place(x, y, layer int, material *Material) error {
	if !g.IsValidPosition(x, y, layer) {
		return ErrInvalidPosition
	}
	if g.cells[layer][y][x] != nil {
		return ErrPositionOccupied
	}
	g.cells[layer][y][x] = material
	return nil
}

// Remove clears a cell and returns the material that occupied it.
func (g *CraftingGrid) Remove(x, y, layer int) (*Material, error) {
	if !g.IsValidPosition(x, y, layer) {
		return nil, ErrInvalidPosition
	}
	material := g.cells[layer][y][x]
	if material == nil {
		return nil, ErrPositionEmpty
	}
	g.cells[layer][y][x] = nil
	return material, nil
}

// MaterialAt reads a cell without mutating it; nil means empty.
func (g *CraftingGrid) MaterialAt(x, y, layer int) *Material {
	if !g.IsValidPosition(x, y, layer) {
		return nil
	}
	return g.cells[layer][y][x]
}

// Occupied counts non-empty cells.
func (g *CraftingGrid) Occupied() int {
	n := 0
	for _, layer := range g.cells {
		for _, row := range layer {
			for _, cell := range row {
				if cell != nil {
					n++
				}
			}
		}
	}
	return n
}

// EachCell walks the grid in (layer, y, x) order.
func (g *CraftingGrid) EachCell(fn func(x, y, layer int, material *Material)) {
	for l, layer := range g.cells {
		for y, row := range layer {
			for x, cell := range row {
				fn(x, y, l, cell)
			}
		}
	}
}
