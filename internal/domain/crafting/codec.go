package crafting

import (
	"encoding/json"
	"fmt"
	"time"
)

// ToDocument snapshots the player into its serializable form. Pure: the
// player is not mutated and the document shares no mutable state with it.
func ToDocument(p *Player) Document {
	doc := Document{
		Name:            p.Name,
		Materials:       make(map[string]MaterialDocument),
		Inventory:       make(map[string]InventoryEntry, p.Inventory.Len()),
		CraftingGrid:    gridToDocument(p.Grid),
		BaseInitialized: p.BaseInitialized,
		Machines:        make([]MachineDocument, 0, len(p.Machines)),
		Scripts:         make([]ScriptDocument, 0, len(p.Scripts)),
		Plants:          make([]PlantDocument, 0, len(p.Plants)),
		ObjectDict:      make(map[string][]string),
		Cooldowns:       make([]CooldownDocument, 0, len(p.Cooldowns)),
		DeveloperMode:   p.DeveloperMode,
		Power:           p.Power,
	}
	record := func(m *Material) {
		if m != nil {
			doc.Materials[m.ID] = materialToDocument(m)
		}
	}
	for _, item := range p.Inventory.Items() {
		record(item.Material)
		doc.Inventory[item.Material.ID] = InventoryEntry{
			Material: materialToDocument(item.Material),
			Quantity: item.Quantity,
		}
	}
	// A stack fully moved onto a grid no longer appears in the inventory
	// section; walk every grid so the materials section stays complete.
	p.Grid.EachCell(func(x, y, layer int, material *Material) {
		record(material)
	})
	for _, m := range p.Machines {
		if m.Grid != nil {
			m.Grid.EachCell(func(x, y, layer int, material *Material) {
				record(material)
			})
		}
		doc.Machines = append(doc.Machines, machineToDocument(m))
	}
	for _, s := range p.Scripts {
		doc.Scripts = append(doc.Scripts, ScriptDocument{
			ID:           s.ID,
			Name:         s.Name,
			Content:      s.Content,
			CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339Nano),
			LastModified: s.LastModified.UTC().Format(time.RFC3339Nano),
		})
	}
	for _, plant := range p.Plants {
		doc.Plants = append(doc.Plants, PlantDocument{
			ID:                    plant.ID,
			Genetics:              plant.Genetics,
			CurrentGrowthStage:    plant.CurrentGrowthStage,
			MaxGrowthStage:        plant.MaxGrowthStage,
			Health:                plant.Health,
			EnvironmentConditions: plant.EnvironmentConditions,
		})
	}
	for category, ids := range p.Objects.Categories() {
		doc.ObjectDict[category] = append([]string(nil), ids...)
	}
	for _, cd := range p.Cooldowns {
		doc.Cooldowns = append(doc.Cooldowns, CooldownDocument{
			ResourceID:      cd.ResourceID,
			CooldownEndTime: timeToUnixSeconds(cd.CooldownEndTime),
		})
	}
	return doc
}

// FromDocument rebuilds a player from its serialized form. Grid hydration
// happens only after the materials lookup is assembled from the document's
// materials and inventory sections; the injected process-wide catalog is a
// fallback for saves written before the materials section existed.
func FromDocument(doc Document, catalog *Catalog) (*Player, error) {
	lookup := make(map[string]*Material, len(doc.Materials)+len(doc.Inventory))
	p := &Player{
		Name:            doc.Name,
		Inventory:       NewInventory(),
		BaseInitialized: doc.BaseInitialized,
		Objects:         NewObjectDictionary(),
		DeveloperMode:   doc.DeveloperMode,
		Power:           doc.Power,
	}
	for materialID, md := range doc.Materials {
		if md.ID == "" || md.ID != materialID {
			return nil, fmt.Errorf("%w: materials entry %q has mismatched material id", ErrSerialization, materialID)
		}
		material, err := materialFromDocument(md)
		if err != nil {
			return nil, err
		}
		lookup[material.ID] = material
		if catalog != nil {
			catalog.Register(material)
		}
	}
	for materialID, entry := range doc.Inventory {
		if entry.Material.ID == "" || entry.Material.ID != materialID {
			return nil, fmt.Errorf("%w: inventory entry %q has mismatched material id", ErrSerialization, materialID)
		}
		material, ok := lookup[materialID]
		if !ok {
			decoded, err := materialFromDocument(entry.Material)
			if err != nil {
				return nil, err
			}
			material = decoded
			lookup[material.ID] = material
			if catalog != nil {
				catalog.Register(material)
			}
		}
		if entry.Quantity > 0 {
			p.Inventory.Add(material, entry.Quantity)
		}
	}
	resolve := func(id string) (*Material, bool) {
		if m, ok := lookup[id]; ok {
			return m, true
		}
		if catalog != nil {
			return catalog.Lookup(id)
		}
		return nil, false
	}

	grid, err := gridFromDocument(doc.CraftingGrid, resolve)
	if err != nil {
		return nil, err
	}
	p.Grid = grid

	for _, md := range doc.Machines {
		machine, err := machineFromDocument(md, resolve)
		if err != nil {
			return nil, err
		}
		p.Machines = append(p.Machines, machine)
	}
	for _, sd := range doc.Scripts {
		createdAt, err := parseDocTime(sd.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: script %q created_at: %v", ErrSerialization, sd.Name, err)
		}
		lastModified, err := parseDocTime(sd.LastModified)
		if err != nil {
			return nil, fmt.Errorf("%w: script %q last_modified: %v", ErrSerialization, sd.Name, err)
		}
		p.Scripts = append(p.Scripts, &Script{
			ID:           sd.ID,
			Name:         sd.Name,
			Content:      sd.Content,
			CreatedAt:    createdAt,
			LastModified: lastModified,
		})
	}
	for _, pd := range doc.Plants {
		p.Plants = append(p.Plants, &Plant{
			ID:                    pd.ID,
			Genetics:              pd.Genetics,
			CurrentGrowthStage:    pd.CurrentGrowthStage,
			MaxGrowthStage:        pd.MaxGrowthStage,
			Health:                pd.Health,
			EnvironmentConditions: pd.EnvironmentConditions,
		})
	}
	for category, ids := range doc.ObjectDict {
		for _, id := range ids {
			p.Objects.Add(category, id)
		}
	}
	for _, cd := range doc.Cooldowns {
		p.Cooldowns = append(p.Cooldowns, ResourceCooldown{
			ResourceID:      cd.ResourceID,
			CooldownEndTime: unixSecondsToTime(cd.CooldownEndTime),
		})
	}
	return p, nil
}

// EncodeDocument renders the player snapshot, together with the recipe
// registry when one is given, as JSON bytes for slot storage.
func EncodeDocument(p *Player, recipes *RecipeRegistry) ([]byte, error) {
	doc := ToDocument(p)
	if recipes != nil {
		doc.Recipes = recipesToDocument(recipes)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return data, nil
}

// DecodeDocument parses slot bytes, rebuilds the player, and restores the
// saved recipes into the given registry. Malformed input is reported as
// ErrSerialization, never as a panic.
func DecodeDocument(data []byte, catalog *Catalog, recipes *RecipeRegistry) (*Player, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	p, err := FromDocument(doc, catalog)
	if err != nil {
		return nil, err
	}
	if recipes != nil {
		if err := recipesFromDocument(doc.Recipes, recipes, catalog); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func recipesToDocument(reg *RecipeRegistry) []RecipeDocument {
	list := reg.List()
	out := make([]RecipeDocument, 0, len(list))
	for _, r := range list {
		inputs := make(map[string]int, len(r.Inputs))
		for id, qty := range r.Inputs {
			inputs[id] = qty
		}
		out = append(out, RecipeDocument{
			ID:             r.ID,
			Name:           r.Name,
			Inputs:         inputs,
			Output:         materialToDocument(r.Output),
			OutputQuantity: r.OutputQuantity,
			RequiredLayers: r.RequiredLayers,
			BuildTime:      r.BuildTime.Seconds(),
		})
	}
	return out
}

// recipesFromDocument upserts saved recipes by id, so a seeded registry
// entry is replaced rather than duplicated.
func recipesFromDocument(docs []RecipeDocument, reg *RecipeRegistry, catalog *Catalog) error {
	for _, rd := range docs {
		output, err := materialFromDocument(rd.Output)
		if err != nil {
			return err
		}
		if catalog != nil {
			catalog.Register(output)
		}
		recipe := &Recipe{
			ID:             rd.ID,
			Name:           rd.Name,
			Inputs:         rd.Inputs,
			Output:         output,
			OutputQuantity: rd.OutputQuantity,
			RequiredLayers: rd.RequiredLayers,
			BuildTime:      time.Duration(rd.BuildTime * float64(time.Second)),
		}
		if err := reg.Register(recipe); err != nil {
			return fmt.Errorf("%w: recipe %q: %v", ErrSerialization, rd.Name, err)
		}
	}
	return nil
}

func materialToDocument(m *Material) MaterialDocument {
	return MaterialDocument{
		ID:            m.ID,
		Name:          m.Name,
		Rarity:        string(m.Rarity),
		Quality:       m.Quality,
		MaterialType:  string(m.MaterialType),
		BaseStoneType: m.BaseStoneType,
	}
}

func materialFromDocument(md MaterialDocument) (*Material, error) {
	if md.ID == "" || md.Name == "" {
		return nil, fmt.Errorf("%w: material missing id or name", ErrSerialization)
	}
	return &Material{
		ID:            md.ID,
		Name:          md.Name,
		Rarity:        Rarity(md.Rarity),
		Quality:       md.Quality,
		MaterialType:  MaterialType(md.MaterialType),
		BaseStoneType: md.BaseStoneType,
	}, nil
}

func gridToDocument(g *CraftingGrid) GridDocument {
	doc := GridDocument{
		Width:  g.Width,
		Height: g.Height,
		Layers: g.Layers,
		Grid:   make([][][]*string, g.Layers),
	}
	for l := 0; l < g.Layers; l++ {
		doc.Grid[l] = make([][]*string, g.Height)
		for y := 0; y < g.Height; y++ {
			doc.Grid[l][y] = make([]*string, g.Width)
		}
	}
	g.EachCell(func(x, y, layer int, material *Material) {
		if material != nil {
			id := material.ID
			doc.Grid[layer][y][x] = &id
		}
	})
	return doc
}

func gridFromDocument(doc GridDocument, resolve func(string) (*Material, bool)) (*CraftingGrid, error) {
	grid := NewCraftingGrid(doc.Width, doc.Height, doc.Layers)
	for l, layer := range doc.Grid {
		for y, row := range layer {
			for x, cell := range row {
				if cell == nil {
					continue
				}
				material, ok := resolve(*cell)
				if !ok {
					return nil, fmt.Errorf("%w: grid cell (%d,%d,%d) references unknown material %s", ErrSerialization, x, y, l, *cell)
				}
				if err := grid.Place(x, y, l, material); err != nil {
					return nil, fmt.Errorf("%w: grid cell (%d,%d,%d): %v", ErrSerialization, x, y, l, err)
				}
			}
		}
	}
	return grid, nil
}

func machineToDocument(m *Machine) MachineDocument {
	// Copy the property bag and parts so mutating the machine after a
	// snapshot cannot reach into the pending document.
	var props map[string]any
	if m.Properties != nil {
		props = make(map[string]any, len(m.Properties))
		for k, v := range m.Properties {
			props[k] = v
		}
	}
	doc := MachineDocument{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Properties:   props,
		CooldownTime: m.CooldownTime.Seconds(),
		LastUsedTime: timeToUnixSeconds(m.LastUsed),
		Power:        m.Power,
		Active:       m.Active,
		HP:           m.HP,
		Parts:        append([]MachinePart(nil), m.Parts...),
	}
	if m.Grid != nil {
		g := gridToDocument(m.Grid)
		doc.CraftingGrid = &g
	}
	return doc
}

func machineFromDocument(doc MachineDocument, resolve func(string) (*Material, bool)) (*Machine, error) {
	if doc.ID == "" {
		return nil, fmt.Errorf("%w: machine %q missing id", ErrSerialization, doc.Name)
	}
	machine := &Machine{
		ID:           doc.ID,
		Name:         doc.Name,
		Description:  doc.Description,
		Properties:   doc.Properties,
		Behavior:     DecodeBehavior(doc.Properties, doc.Power),
		CooldownTime: time.Duration(doc.CooldownTime * float64(time.Second)),
		LastUsed:     unixSecondsToTime(doc.LastUsedTime),
		Power:        doc.Power,
		Active:       doc.Active,
		HP:           doc.HP,
		Parts:        doc.Parts,
	}
	if doc.CraftingGrid != nil {
		grid, err := gridFromDocument(*doc.CraftingGrid, resolve)
		if err != nil {
			return nil, err
		}
		machine.Grid = grid
	}
	return machine, nil
}

func timeToUnixSeconds(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.UnixNano()) / float64(time.Second)
}

func unixSecondsToTime(sec float64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(0, int64(sec*float64(time.Second)))
}

func parseDocTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}
