package crafting

import (
	"testing"
	"time"
)

func TestMachineFireCooldownGate(t *testing.T) {
	base := time.Unix(1000, 0)
	m := NewMachine("Extractor", "pulls ore", map[string]any{"resource_output": "Ore"}, 30*time.Second, 5)

	if !m.Fire(base) {
		t.Fatalf("expected first fire to succeed")
	}
	if m.Fire(base.Add(29 * time.Second)) {
		t.Fatalf("expected fire within cooldown to fail")
	}
	if got := m.LastUsed; !got.Equal(base) {
		t.Fatalf("failed fire must not mutate LastUsed: got %v", got)
	}
	if !m.Fire(base.Add(30 * time.Second)) {
		t.Fatalf("expected fire after full cooldown to succeed")
	}
}

func TestMachineLongIdleFiresOnce(t *testing.T) {
	base := time.Unix(1000, 0)
	m := NewMachine("Extractor", "", nil, time.Minute, 0)
	m.Fire(base)

	// Hours of missed ticks collapse into a single allowed fire.
	late := base.Add(6 * time.Hour)
	if !m.Fire(late) {
		t.Fatalf("expected fire after long idle")
	}
	if m.Fire(late.Add(time.Second)) {
		t.Fatalf("no catch-up: second fire must wait the full cooldown again")
	}
}

func TestDecodeBehavior(t *testing.T) {
	cases := []struct {
		name       string
		properties map[string]any
		power      float64
		want       BehaviorKind
		material   string
	}{
		{"resource output", map[string]any{"resource_output": "Ore"}, 0, BehaviorResourceGenerator, "Ore"},
		{"resource output with power", map[string]any{"resource_output": "Ore"}, -2, BehaviorResourceGenerator, "Ore"},
		{"power only", map[string]any{"note": "x"}, 3, BehaviorPowerOnly, ""},
		{"negative power only", nil, -1, BehaviorPowerOnly, ""},
		{"unconfigured", map[string]any{}, 0, BehaviorUnconfigured, ""},
		{"empty output name", map[string]any{"resource_output": ""}, 0, BehaviorUnconfigured, ""},
		{"non-string output", map[string]any{"resource_output": 7}, 0, BehaviorUnconfigured, ""},
	}
	for _, tc := range cases {
		got := DecodeBehavior(tc.properties, tc.power)
		if got.Kind != tc.want || got.MaterialName != tc.material {
			t.Fatalf("%s: got %+v want kind=%s material=%q", tc.name, got, tc.want, tc.material)
		}
	}
}

func TestNewMachineClampsCooldown(t *testing.T) {
	m := NewMachine("X", "", nil, 0, 0)
	if m.CooldownTime != time.Minute {
		t.Fatalf("expected one minute default cooldown, got %v", m.CooldownTime)
	}
	if m.Active {
		t.Fatalf("machines start inactive")
	}
}
