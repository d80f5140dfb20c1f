package crafting

import (
	"math/rand"

	"github.com/google/uuid"
)

// PlantGenetics carries the heritable traits of a plant.
type PlantGenetics struct {
	ID            string         `json:"id"`
	Species       string         `json:"species"`
	GeneticTraits map[string]any `json:"genetic_traits"`
}

// Plant is a growable entity owned by the player.
type Plant struct {
	ID                    string         `json:"id"`
	Genetics              PlantGenetics  `json:"genetics"`
	CurrentGrowthStage    int            `json:"current_growth_stage"`
	MaxGrowthStage        int            `json:"max_growth_stage"`
	Health                float64        `json:"health"`
	EnvironmentConditions map[string]any `json:"environment_conditions"`
}

// NewPlant seeds a fresh plant of the given species with rolled genetics.
func NewPlant(species string, rng *rand.Rand) *Plant {
	return &Plant{
		ID: uuid.NewString(),
		Genetics: PlantGenetics{
			ID:      uuid.NewString(),
			Species: species,
			GeneticTraits: map[string]any{
				"growth_rate": 0.5 + rng.Float64()*1.5,
				"resistance":  rng.Float64(),
				"yield":       1 + rng.Intn(10),
			},
		},
		CurrentGrowthStage: 0,
		MaxGrowthStage:     5,
		Health:             100.0,
		EnvironmentConditions: map[string]any{
			"light": "medium",
			"water": "regular",
			"soil":  "fertile",
		},
	}
}
