package crafting

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML data file that stocks the material catalog and
// recipe registry at startup. Recipe inputs reference seed materials by
// name so the file stays hand-editable; names are resolved to ids while
// loading.
type SeedFile struct {
	Materials []SeedMaterial `yaml:"materials"`
	Recipes   []SeedRecipe   `yaml:"recipes"`
}

type SeedMaterial struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Rarity        string  `yaml:"rarity"`
	Quality       float64 `yaml:"quality"`
	MaterialType  string  `yaml:"material_type"`
	BaseStoneType string  `yaml:"base_stone_type"`
}

type SeedRecipe struct {
	ID             string         `yaml:"id"`
	Name           string         `yaml:"name"`
	Inputs         map[string]int `yaml:"inputs"`
	Output         string         `yaml:"output"`
	OutputQuantity int            `yaml:"output_quantity"`
	RequiredLayers int            `yaml:"required_layers"`
	BuildSeconds   float64        `yaml:"build_seconds"`
}

// LoadSeedFile reads the data file and registers its contents into the
// given catalog and registry.
func LoadSeedFile(path string, catalog *Catalog, registry *RecipeRegistry) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	return ApplySeed(file, catalog, registry)
}

// ApplySeed registers seed materials and recipes. Material ids default to
// fresh UUIDs when the file omits them.
func ApplySeed(file SeedFile, catalog *Catalog, registry *RecipeRegistry) error {
	byName := make(map[string]*Material, len(file.Materials))
	for _, sm := range file.Materials {
		if sm.Name == "" {
			return fmt.Errorf("seed material without a name")
		}
		material := &Material{
			ID:            sm.ID,
			Name:          sm.Name,
			Rarity:        Rarity(sm.Rarity),
			Quality:       sm.Quality,
			MaterialType:  MaterialType(sm.MaterialType),
			BaseStoneType: sm.BaseStoneType,
		}
		if material.ID == "" {
			material.ID = NewMaterialID()
		}
		if material.Rarity == "" {
			material.Rarity = RarityCommon
		}
		if material.Quality == 0 {
			material.Quality = 1.0
		}
		catalog.Register(material)
		byName[sm.Name] = material
	}
	for _, sr := range file.Recipes {
		output, ok := byName[sr.Output]
		if !ok {
			return fmt.Errorf("seed recipe %q outputs unknown material %q", sr.Name, sr.Output)
		}
		inputs := make(map[string]int, len(sr.Inputs))
		for name, qty := range sr.Inputs {
			material, ok := byName[name]
			if !ok {
				return fmt.Errorf("seed recipe %q requires unknown material %q", sr.Name, name)
			}
			inputs[material.ID] = qty
		}
		outputQty := sr.OutputQuantity
		if outputQty == 0 {
			outputQty = 1
		}
		layers := sr.RequiredLayers
		if layers == 0 {
			layers = 1
		}
		recipe := &Recipe{
			ID:             sr.ID,
			Name:           sr.Name,
			Inputs:         inputs,
			Output:         output,
			OutputQuantity: outputQty,
			RequiredLayers: layers,
			BuildTime:      time.Duration(sr.BuildSeconds * float64(time.Second)),
		}
		if err := registry.Register(recipe); err != nil {
			return fmt.Errorf("seed recipe %q: %w", sr.Name, err)
		}
	}
	return nil
}
