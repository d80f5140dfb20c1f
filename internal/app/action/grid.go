package action

import (
	"strings"

	"cradium/internal/domain/crafting"
)

type PlaceRequest struct {
	X, Y, Layer  int
	MaterialName string
}

type PlaceResponse struct {
	Material *crafting.Material `json:"material"`
}

// Place moves one unit of the named material from the inventory onto
// the grid.
func (u UseCase) Place(req PlaceRequest) (PlaceResponse, error) {
	req.MaterialName = strings.TrimSpace(req.MaterialName)
	if req.MaterialName == "" {
		return PlaceResponse{}, ErrInvalidRequest
	}
	var out PlaceResponse
	err := u.State.With(func(p *crafting.Player) error {
		material, err := p.PlaceFromInventory(req.X, req.Y, req.Layer, req.MaterialName)
		if err != nil {
			return err
		}
		out = PlaceResponse{Material: material}
		return nil
	})
	u.observe("place", err)
	return out, err
}

type RemoveRequest struct {
	X, Y, Layer int
}

type RemoveResponse struct {
	Material *crafting.Material `json:"material"`
}

// Remove takes the material at the given cell back into the inventory.
func (u UseCase) Remove(req RemoveRequest) (RemoveResponse, error) {
	var out RemoveResponse
	err := u.State.With(func(p *crafting.Player) error {
		material, err := p.RemoveToInventory(req.X, req.Y, req.Layer)
		if err != nil {
			return err
		}
		out = RemoveResponse{Material: material}
		return nil
	})
	u.observe("remove", err)
	return out, err
}
