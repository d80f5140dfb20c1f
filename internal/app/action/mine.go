package action

import (
	"strings"

	"cradium/internal/app/ports"
	"cradium/internal/domain/crafting"
)

type MineRequest struct {
	// ResourceID names the node being mined; when set, repeated mining
	// of the same node is blocked until its cooldown expires.
	ResourceID string
	Quantity   int
}

type MineResponse struct {
	Material *crafting.Material `json:"material"`
	Quantity int                `json:"quantity"`
}

// Mine rolls a procedural material, credits it to the inventory, and
// registers it in the catalog so a later save/load can resolve it even
// when it only survives on the grid.
func (u UseCase) Mine(req MineRequest) (MineResponse, error) {
	req.ResourceID = strings.TrimSpace(req.ResourceID)
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	now := u.now()
	var out MineResponse
	err := u.State.With(func(p *crafting.Player) error {
		p.PruneCooldowns(now)
		if req.ResourceID != "" {
			for _, cd := range p.Cooldowns {
				if cd.ResourceID == req.ResourceID {
					return ports.ErrConflict
				}
			}
		}

		material := crafting.MineMaterial(u.rng())
		u.Materials.Register(material)
		p.Inventory.Add(material, req.Quantity)
		p.Objects.Add("materials", material.ID)

		if req.ResourceID != "" {
			p.Cooldowns = append(p.Cooldowns, crafting.ResourceCooldown{
				ResourceID:      req.ResourceID,
				CooldownEndTime: now.Add(u.mineCooldown()),
			})
		}

		out = MineResponse{Material: material, Quantity: req.Quantity}
		return nil
	})
	u.observe("mine", err)
	return out, err
}
