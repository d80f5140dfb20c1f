// Package status projects the live player into read-only views for the
// HTTP and console shells.
package status

import (
	"time"

	"cradium/internal/app/session"
	"cradium/internal/domain/crafting"
)

type UseCase struct {
	State *session.Holder
	Now   func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// Player builds the full status view.
func (u UseCase) Player() (Response, error) {
	now := u.now()
	var out Response
	err := u.State.With(func(p *crafting.Player) error {
		out = Response{
			Name:            p.Name,
			BaseInitialized: p.BaseInitialized,
			Power:           p.Power,
			Grid: GridSummary{
				Width:    p.Grid.Width,
				Height:   p.Grid.Height,
				Layers:   p.Grid.Layers,
				Occupied: p.Grid.Occupied(),
			},
			Objects: p.Objects.Categories(),
		}
		for _, item := range p.Inventory.Items() {
			out.Inventory = append(out.Inventory, InventoryLine{Material: item.Material, Quantity: item.Quantity})
		}
		for _, m := range p.Machines {
			line := MachineLine{
				ID:              m.ID,
				Name:            m.Name,
				Behavior:        string(m.Behavior.Kind),
				Active:          m.Active,
				Power:           m.Power,
				CooldownSeconds: m.CooldownTime.Seconds(),
			}
			if remaining := m.CooldownTime - now.Sub(m.LastUsed); remaining > 0 {
				line.ReadyInSeconds = remaining.Seconds()
			}
			out.Machines = append(out.Machines, line)
		}
		out.Plants = append(out.Plants, p.Plants...)
		for _, s := range p.Scripts {
			out.Scripts = append(out.Scripts, ScriptLine{ID: s.ID, Name: s.Name})
		}
		return nil
	})
	return out, err
}

// Grid dumps the occupied grid cells.
func (u UseCase) Grid() (GridResponse, error) {
	var out GridResponse
	err := u.State.With(func(p *crafting.Player) error {
		out = GridResponse{Width: p.Grid.Width, Height: p.Grid.Height, Layers: p.Grid.Layers}
		p.Grid.EachCell(func(x, y, layer int, material *crafting.Material) {
			if material == nil {
				return
			}
			out.Cells = append(out.Cells, OccupiedCell{X: x, Y: y, Layer: layer, Material: material})
		})
		return nil
	})
	return out, err
}
