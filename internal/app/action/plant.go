package action

import (
	"fmt"
	"strings"

	"cradium/internal/app/ports"
	"cradium/internal/domain/crafting"
)

type AddPlantRequest struct {
	Species string
}

type AddPlantResponse struct {
	Plant *crafting.Plant `json:"plant"`
}

// AddPlant grows a new plant with rolled genetics.
func (u UseCase) AddPlant(req AddPlantRequest) (AddPlantResponse, error) {
	req.Species = strings.TrimSpace(req.Species)
	if req.Species == "" {
		return AddPlantResponse{}, ErrInvalidRequest
	}
	plant := crafting.NewPlant(req.Species, u.rng())
	err := u.State.With(func(p *crafting.Player) error {
		p.AddPlant(plant)
		p.Objects.Add("plants", plant.ID)
		return nil
	})
	u.observe("add_plant", err)
	if err != nil {
		return AddPlantResponse{}, err
	}
	return AddPlantResponse{Plant: plant}, nil
}

type RemovePlantRequest struct {
	ID string
}

func (u UseCase) RemovePlant(req RemovePlantRequest) error {
	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		return ErrInvalidRequest
	}
	err := u.State.With(func(p *crafting.Player) error {
		if !p.RemovePlant(req.ID) {
			return fmt.Errorf("plant %q: %w", req.ID, ports.ErrNotFound)
		}
		p.Objects.Remove("plants", req.ID)
		return nil
	})
	u.observe("remove_plant", err)
	return err
}

// InitializeBase marks the base as built. Repeated calls are harmless.
func (u UseCase) InitializeBase() error {
	err := u.State.With(func(p *crafting.Player) error {
		p.InitializeBase()
		return nil
	})
	u.observe("initialize_base", err)
	return err
}
