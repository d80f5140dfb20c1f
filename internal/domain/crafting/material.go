package crafting

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Rank returns the position of the rarity in the Common..Legendary order.
// Unknown rarities rank below Common.
func (r Rarity) Rank() int {
	rank, ok := rarityRank[r]
	if !ok {
		return -1
	}
	return rank
}

type MaterialType string

const (
	MaterialMetal     MaterialType = "Metal"
	MaterialMineral   MaterialType = "Mineral"
	MaterialPlant     MaterialType = "Plant"
	MaterialTool      MaterialType = "Tool"
	MaterialGenerated MaterialType = "Generated"
)

// Material is an identity-bearing crafting substance. Two materials with
// identical attributes but different IDs are distinct stack keys. Materials
// are never mutated after creation; inventory and grid share them by
// reference.
type Material struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Rarity        Rarity       `json:"rarity"`
	Quality       float64      `json:"quality"`
	MaterialType  MaterialType `json:"material_type"`
	BaseStoneType string       `json:"base_stone_type"`
}

func NewMaterialID() string {
	return uuid.NewString()
}

var nameSyllables = []string{"Crad", "Ium", "Vex", "Lun", "Tori", "Plas", "Zynth", "Nor", "Del", "Xar"}

var baseStoneTypes = []string{"Granite", "Basalt", "Marble"}

var minedTypes = []MaterialType{MaterialMetal, MaterialMineral, MaterialPlant}

// ProceduralName joins 2-3 random syllables into a capitalized name.
func ProceduralName(rng *rand.Rand) string {
	count := 2 + rng.Intn(2)
	var b strings.Builder
	for i := 0; i < count; i++ {
		b.WriteString(nameSyllables[rng.Intn(len(nameSyllables))])
	}
	name := strings.ToLower(b.String())
	return strings.ToUpper(name[:1]) + name[1:]
}

// RollRarity picks a rarity using the mining weight table
// (40/30/20/8/2 for Common..Legendary).
func RollRarity(rng *rand.Rand) Rarity {
	weights := []struct {
		rarity Rarity
		weight int
	}{
		{RarityCommon, 40},
		{RarityUncommon, 30},
		{RarityRare, 20},
		{RarityEpic, 8},
		{RarityLegendary, 2},
	}
	total := 0
	for _, w := range weights {
		total += w.weight
	}
	roll := rng.Intn(total)
	for _, w := range weights {
		roll -= w.weight
		if roll < 0 {
			return w.rarity
		}
	}
	return RarityCommon
}

// MineMaterial synthesizes a freshly mined material with procedural
// attributes. Quality lands in [0.1, 1.0].
func MineMaterial(rng *rand.Rand) *Material {
	return &Material{
		ID:            NewMaterialID(),
		Name:          ProceduralName(rng),
		Rarity:        RollRarity(rng),
		Quality:       0.1 + rng.Float64()*0.9,
		MaterialType:  minedTypes[rng.Intn(len(minedTypes))],
		BaseStoneType: baseStoneTypes[rng.Intn(len(baseStoneTypes))],
	}
}

// GeneratedMaterial is what a resource-generator machine emits: a fresh
// identity with fixed Common/1.0/Generated attributes.
func GeneratedMaterial(name string) *Material {
	return &Material{
		ID:           NewMaterialID(),
		Name:         name,
		Rarity:       RarityCommon,
		Quality:      1.0,
		MaterialType: MaterialGenerated,
	}
}

// Catalog is the process-wide material lookup consulted whenever a material
// id has to be resolved from serialized data. It is built once at startup,
// passed by reference, and safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	materials map[string]*Material
}

func NewCatalog() *Catalog {
	return &Catalog{materials: make(map[string]*Material)}
}

func (c *Catalog) Register(m *Material) {
	if m == nil || m.ID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.materials[m.ID] = m
}

func (c *Catalog) Lookup(id string) (*Material, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.materials[id]
	return m, ok
}

func (c *Catalog) FindByName(name string) (*Material, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.materials {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return nil, false
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.materials)
}
