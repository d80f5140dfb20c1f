package status

import "cradium/internal/domain/crafting"

type InventoryLine struct {
	Material *crafting.Material `json:"material"`
	Quantity int                `json:"quantity"`
}

type MachineLine struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Behavior        string  `json:"behavior"`
	Active          bool    `json:"active"`
	Power           float64 `json:"power"`
	CooldownSeconds float64 `json:"cooldown_seconds"`
	ReadyInSeconds  float64 `json:"ready_in_seconds"`
}

type GridSummary struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Layers   int `json:"layers"`
	Occupied int `json:"occupied"`
}

type Response struct {
	Name            string              `json:"name"`
	BaseInitialized bool                `json:"base_initialized"`
	Power           float64             `json:"power"`
	Inventory       []InventoryLine     `json:"inventory"`
	Grid            GridSummary         `json:"grid"`
	Machines        []MachineLine       `json:"machines"`
	Plants          []*crafting.Plant   `json:"plants"`
	Scripts         []ScriptLine        `json:"scripts"`
	Objects         map[string][]string `json:"objects"`
}

type ScriptLine struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GridResponse is the full cell dump used by the grid view.
type GridResponse struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Layers int            `json:"layers"`
	Cells  []OccupiedCell `json:"cells"`
}

type OccupiedCell struct {
	X        int                `json:"x"`
	Y        int                `json:"y"`
	Layer    int                `json:"layer"`
	Material *crafting.Material `json:"material"`
}
