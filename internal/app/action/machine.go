package action

import (
	"fmt"
	"strings"
	"time"

	"cradium/internal/app/ports"
	"cradium/internal/domain/crafting"
)

type AddMachineRequest struct {
	Name        string
	Description string
	Properties  map[string]any
	Cooldown    time.Duration
	Power       float64
}

type AddMachineResponse struct {
	Machine *crafting.Machine `json:"machine"`
}

// AddMachine builds a machine from the given property bag and attaches
// it to the player. Machines start inactive; Activate turns them on.
func (u UseCase) AddMachine(req AddMachineRequest) (AddMachineResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return AddMachineResponse{}, ErrInvalidRequest
	}
	machine := crafting.NewMachine(req.Name, req.Description, req.Properties, req.Cooldown, req.Power)
	err := u.State.With(func(p *crafting.Player) error {
		if _, exists := p.FindMachine(req.Name); exists {
			return fmt.Errorf("machine %q: %w", req.Name, ports.ErrConflict)
		}
		p.AddMachine(machine)
		p.Objects.Add("machines", machine.ID)
		return nil
	})
	u.observe("add_machine", err)
	if err != nil {
		return AddMachineResponse{}, err
	}
	return AddMachineResponse{Machine: machine}, nil
}

type RemoveMachineRequest struct {
	Name string
}

func (u UseCase) RemoveMachine(req RemoveMachineRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return ErrInvalidRequest
	}
	err := u.State.With(func(p *crafting.Player) error {
		machine, ok := p.FindMachine(req.Name)
		if !ok {
			return fmt.Errorf("machine %q: %w", req.Name, ports.ErrNotFound)
		}
		p.RemoveMachine(req.Name)
		p.Objects.Remove("machines", machine.ID)
		return nil
	})
	u.observe("remove_machine", err)
	return err
}

type SetMachineActiveRequest struct {
	Name   string
	Active bool
}

// SetMachineActive flips the machine's automation switch.
func (u UseCase) SetMachineActive(req SetMachineActiveRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return ErrInvalidRequest
	}
	err := u.State.With(func(p *crafting.Player) error {
		machine, ok := p.FindMachine(req.Name)
		if !ok {
			return fmt.Errorf("machine %q: %w", req.Name, ports.ErrNotFound)
		}
		machine.Active = req.Active
		return nil
	})
	u.observe("set_machine_active", err)
	return err
}
