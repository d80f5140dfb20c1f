package action

import (
	"fmt"
	"strings"
	"time"

	"cradium/internal/domain/crafting"
)

type CraftRequest struct {
	RecipeName string
}

type CraftResponse struct {
	Recipe   *crafting.Recipe `json:"recipe"`
	Quantity int              `json:"quantity"`
}

// Craft resolves the recipe by name and applies it to the player
// inventory. Inputs are only consumed when every one of them is
// covered.
func (u UseCase) Craft(req CraftRequest) (CraftResponse, error) {
	req.RecipeName = strings.TrimSpace(req.RecipeName)
	if req.RecipeName == "" {
		return CraftResponse{}, ErrInvalidRequest
	}
	recipe, err := u.Recipes.FindByName(req.RecipeName)
	if err != nil {
		u.observe("craft", err)
		return CraftResponse{}, err
	}
	err = u.State.With(func(p *crafting.Player) error {
		return p.Craft(recipe)
	})
	u.observe("craft", err)
	if err != nil {
		return CraftResponse{}, err
	}
	u.Materials.Register(recipe.Output)
	return CraftResponse{Recipe: recipe, Quantity: recipe.OutputQuantity}, nil
}

type CreateRecipeRequest struct {
	Name           string
	Inputs         map[string]int
	OutputName     string
	OutputQuantity int
	RequiredLayers int
	BuildTime      time.Duration
}

type CreateRecipeResponse struct {
	Recipe *crafting.Recipe `json:"recipe"`
}

// CreateRecipe registers a new recipe whose output is a generated
// material named after the recipe output. Input keys may be material
// names or ids; names are resolved against the catalog.
func (u UseCase) CreateRecipe(req CreateRecipeRequest) (CreateRecipeResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.OutputName = strings.TrimSpace(req.OutputName)
	if req.Name == "" || req.OutputName == "" || len(req.Inputs) == 0 {
		return CreateRecipeResponse{}, ErrInvalidRequest
	}
	if req.OutputQuantity <= 0 {
		req.OutputQuantity = 1
	}
	if req.RequiredLayers <= 0 {
		req.RequiredLayers = 1
	}
	err := u.State.With(func(p *crafting.Player) error {
		if p.Grid != nil && req.RequiredLayers > p.Grid.Layers {
			return fmt.Errorf("required layers %d exceed grid depth %d: %w",
				req.RequiredLayers, p.Grid.Layers, crafting.ErrInvalidRecipe)
		}
		return nil
	})
	if err != nil {
		u.observe("create_recipe", err)
		return CreateRecipeResponse{}, err
	}

	inputs := make(map[string]int, len(req.Inputs))
	for key, qty := range req.Inputs {
		if material, ok := u.Materials.FindByName(key); ok {
			inputs[material.ID] = qty
			continue
		}
		inputs[key] = qty
	}

	output, ok := u.Materials.FindByName(req.OutputName)
	if !ok {
		output = crafting.GeneratedMaterial(req.OutputName)
		u.Materials.Register(output)
	}

	recipe := &crafting.Recipe{
		Name:           req.Name,
		Inputs:         inputs,
		Output:         output,
		OutputQuantity: req.OutputQuantity,
		RequiredLayers: req.RequiredLayers,
		BuildTime:      req.BuildTime,
	}
	if err := u.Recipes.Register(recipe); err != nil {
		u.observe("create_recipe", err)
		return CreateRecipeResponse{}, err
	}

	err = u.State.With(func(p *crafting.Player) error {
		p.Objects.Add("recipes", recipe.ID)
		return nil
	})
	u.observe("create_recipe", err)
	return CreateRecipeResponse{Recipe: recipe}, err
}

type DeleteRecipeRequest struct {
	RecipeName string
}

func (u UseCase) DeleteRecipe(req DeleteRecipeRequest) error {
	req.RecipeName = strings.TrimSpace(req.RecipeName)
	if req.RecipeName == "" {
		return ErrInvalidRequest
	}
	recipe, err := u.Recipes.FindByName(req.RecipeName)
	if err == nil {
		err = u.Recipes.Remove(recipe.ID)
	}
	if err == nil {
		err = u.State.With(func(p *crafting.Player) error {
			p.Objects.Remove("recipes", recipe.ID)
			return nil
		})
	}
	u.observe("delete_recipe", err)
	return err
}
