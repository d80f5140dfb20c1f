package crafting

// Document is the flat serializable representation of a Player. Every value
// in the tree is a primitive, list, or map, so the encoded form is plain
// JSON. The grid sections store material ids only; the materials section
// carries the attributes for every id referenced anywhere in the document,
// so a save hydrates without outside help (see FromDocument).
type Document struct {
	Name            string                      `json:"name"`
	Materials       map[string]MaterialDocument `json:"materials,omitempty"`
	Inventory       map[string]InventoryEntry   `json:"inventory"`
	CraftingGrid    GridDocument                `json:"crafting_grid"`
	BaseInitialized bool                        `json:"base_initialized"`
	Machines        []MachineDocument           `json:"machines"`
	Scripts         []ScriptDocument            `json:"scripts"`
	Plants          []PlantDocument             `json:"plants"`
	ObjectDict      map[string][]string         `json:"object_dictionary"`
	Cooldowns       []CooldownDocument          `json:"cooldowns"`
	Recipes         []RecipeDocument            `json:"recipes,omitempty"`
	DeveloperMode   bool                        `json:"developer_mode"`
	Power           float64                     `json:"power"`
}

type MaterialDocument struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Rarity        string  `json:"rarity"`
	Quality       float64 `json:"quality"`
	MaterialType  string  `json:"material_type"`
	BaseStoneType string  `json:"base_stone_type"`
}

type InventoryEntry struct {
	Material MaterialDocument `json:"material"`
	Quantity int              `json:"quantity"`
}

// GridDocument stores each cell as a material id or null, nested as
// grid[layer][row][column].
type GridDocument struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Layers int           `json:"layers"`
	Grid   [][][]*string `json:"grid"`
}

type MachineDocument struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Properties   map[string]any `json:"properties"`
	CraftingGrid *GridDocument  `json:"crafting_grid,omitempty"`
	CooldownTime float64        `json:"cooldown_time"`
	LastUsedTime float64        `json:"last_used_time"`
	Power        float64        `json:"power"`
	Active       bool           `json:"active"`
	HP           float64        `json:"hp,omitempty"`
	Parts        []MachinePart  `json:"parts,omitempty"`
}

type ScriptDocument struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
	LastModified string `json:"last_modified"`
}

type PlantDocument struct {
	ID                    string         `json:"id"`
	Genetics              PlantGenetics  `json:"genetics"`
	CurrentGrowthStage    int            `json:"current_growth_stage"`
	MaxGrowthStage        int            `json:"max_growth_stage"`
	Health                float64        `json:"health"`
	EnvironmentConditions map[string]any `json:"environment_conditions"`
}

// RecipeDocument carries a registry entry inside a save. BuildTime is in
// seconds; the output material travels with full attributes.
type RecipeDocument struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Inputs         map[string]int   `json:"inputs"`
	Output         MaterialDocument `json:"output"`
	OutputQuantity int              `json:"output_quantity"`
	RequiredLayers int              `json:"required_layers"`
	BuildTime      float64          `json:"build_time"`
}

type CooldownDocument struct {
	ResourceID      string  `json:"resource_id"`
	CooldownEndTime float64 `json:"cooldown_end_time"`
}
