package crafting

import (
	"time"

	"github.com/google/uuid"
)

type BehaviorKind string

const (
	BehaviorUnconfigured      BehaviorKind = "unconfigured"
	BehaviorPowerOnly         BehaviorKind = "power_only"
	BehaviorResourceGenerator BehaviorKind = "resource_generator"
)

// Behavior is the closed variant a machine dispatches on when it fires.
// It is decoded once from the raw property bag at construction or
// deserialization; the automation tick never probes the open map.
type Behavior struct {
	Kind BehaviorKind
	// MaterialName is set only for BehaviorResourceGenerator.
	MaterialName string
}

const propResourceOutput = "resource_output"

// DecodeBehavior folds the legacy property bag into a Behavior variant.
// A machine with no power and no resource output is Unconfigured.
func DecodeBehavior(properties map[string]any, power float64) Behavior {
	if properties != nil {
		if v, ok := properties[propResourceOutput]; ok {
			if name, ok := v.(string); ok && name != "" {
				return Behavior{Kind: BehaviorResourceGenerator, MaterialName: name}
			}
		}
	}
	if power != 0 {
		return Behavior{Kind: BehaviorPowerOnly}
	}
	return Behavior{Kind: BehaviorUnconfigured}
}

// MachinePart is a component installed into a machine.
type MachinePart struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PartType    string `json:"part_type"`
}

// Machine is a stateful automaton: while active and off cooldown it fires,
// producing a material (resource generators) and contributing its signed
// power to the owner. HP and Parts are optional fields kept from the
// richer machine variant.
type Machine struct {
	ID          string
	Name        string
	Description string

	// Properties is the raw bag carried for serialization fidelity.
	// Behavior is its decoded form and the only thing the tick consults.
	Properties map[string]any
	Behavior   Behavior

	Grid         *CraftingGrid
	CooldownTime time.Duration
	LastUsed     time.Time
	Power        float64
	Active       bool

	HP    float64
	Parts []MachinePart
}

func NewMachineID() string {
	return uuid.NewString()
}

// NewMachine decodes the behavior from the given properties and starts the
// machine inactive with an expired cooldown. Cooldowns below one second are
// clamped to one minute.
func NewMachine(name, description string, properties map[string]any, cooldown time.Duration, power float64) *Machine {
	if cooldown < time.Second {
		cooldown = time.Minute
	}
	return &Machine{
		ID:           NewMachineID(),
		Name:         name,
		Description:  description,
		Properties:   properties,
		Behavior:     DecodeBehavior(properties, power),
		CooldownTime: cooldown,
		Power:        power,
	}
}

// CanFire reports whether the cooldown has elapsed since the last firing.
func (m *Machine) CanFire(now time.Time) bool {
	return now.Sub(m.LastUsed) >= m.CooldownTime
}

// Fire stamps the last-used time when the cooldown allows it. This is the
// sole gate for production; a false return mutates nothing.
func (m *Machine) Fire(now time.Time) bool {
	if !m.CanFire(now) {
		return false
	}
	m.LastUsed = now
	return true
}
