package crafting

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Recipe is a named transformation rule: input material quantities consumed
// for an output material quantity. Inputs are keyed by material id.
type Recipe struct {
	ID             string
	Name           string
	Inputs         map[string]int
	Output         *Material
	OutputQuantity int
	RequiredLayers int
	BuildTime      time.Duration
}

func NewRecipeID() string {
	return uuid.NewString()
}

// RecipeRegistry is an id-keyed recipe store, built once at startup and
// shared by reference. Safe for concurrent use.
type RecipeRegistry struct {
	mu      sync.RWMutex
	recipes map[string]*Recipe
}

func NewRecipeRegistry() *RecipeRegistry {
	return &RecipeRegistry{recipes: make(map[string]*Recipe)}
}

// Register validates and stores a recipe. A recipe with no inputs, no
// output, a non-positive output quantity, or a layer requirement below 1 is
// rejected.
func (r *RecipeRegistry) Register(recipe *Recipe) error {
	if recipe == nil || len(recipe.Inputs) == 0 || recipe.Output == nil {
		return ErrInvalidRecipe
	}
	if recipe.OutputQuantity <= 0 || recipe.RequiredLayers < 1 {
		return ErrInvalidRecipe
	}
	for _, qty := range recipe.Inputs {
		if qty <= 0 {
			return ErrInvalidRecipe
		}
	}
	if recipe.ID == "" {
		recipe.ID = NewRecipeID()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipes[recipe.ID] = recipe
	return nil
}

func (r *RecipeRegistry) ByID(id string) (*Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return recipe, nil
}

// FindByName matches case-insensitively, first match wins.
func (r *RecipeRegistry) FindByName(name string) (*Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, recipe := range r.recipes {
		if strings.EqualFold(recipe.Name, name) {
			return recipe, nil
		}
	}
	return nil, ErrRecipeNotFound
}

func (r *RecipeRegistry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recipes[id]; !ok {
		return ErrRecipeNotFound
	}
	delete(r.recipes, id)
	return nil
}

// List returns the registered recipes ordered by name.
func (r *RecipeRegistry) List() []*Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		out = append(out, recipe)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
