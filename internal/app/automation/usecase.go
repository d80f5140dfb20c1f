// Package automation advances the machine park: each tick fires every
// active machine whose cooldown has expired, at most once, with no
// catch-up for ticks the process slept through.
package automation

import (
	"time"

	"cradium/internal/app/ports"
	"cradium/internal/app/session"
	"cradium/internal/domain/crafting"
)

// FiredMachine describes one machine firing within a tick.
type FiredMachine struct {
	MachineID   string  `json:"machine_id"`
	MachineName string  `json:"machine_name"`
	Produced    string  `json:"produced,omitempty"`
	Power       float64 `json:"power"`
}

// TickResult is what a single scheduler pass changed. It feeds the
// websocket pulse hub.
type TickResult struct {
	At         time.Time      `json:"at"`
	Fired      []FiredMachine `json:"fired"`
	TotalPower float64        `json:"total_power"`
}

type UseCase struct {
	State     *session.Holder
	Materials *crafting.Catalog
	Metrics   ports.EngineMetrics
	Now       func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// Tick runs one scheduler pass under the session guard.
func (u UseCase) Tick() (TickResult, error) {
	now := u.now()
	result := TickResult{At: now}
	err := u.State.With(func(p *crafting.Player) error {
		for _, machine := range p.Machines {
			if !machine.Active || !machine.Fire(now) {
				continue
			}
			fired := FiredMachine{
				MachineID:   machine.ID,
				MachineName: machine.Name,
				Power:       machine.Power,
			}
			if machine.Behavior.Kind == crafting.BehaviorResourceGenerator {
				material := crafting.GeneratedMaterial(machine.Behavior.MaterialName)
				u.Materials.Register(material)
				p.Inventory.Add(material, 1)
				fired.Produced = material.Name
			}
			p.Power += machine.Power
			result.Fired = append(result.Fired, fired)
			if u.Metrics != nil {
				u.Metrics.RecordMachineFire(machine.Name)
			}
		}
		p.PruneCooldowns(now)
		result.TotalPower = p.Power
		return nil
	})
	return result, err
}
