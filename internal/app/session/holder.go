// Package session owns the single mutable game state. Command handling and
// the automation tick all funnel through one mutex here, so no two
// mutations ever observe inventory, grid, or cooldown state mid-change.
package session

import (
	"sync"

	"cradium/internal/domain/crafting"
)

type Holder struct {
	mu     sync.Mutex
	player *crafting.Player
}

func NewHolder(player *crafting.Player) *Holder {
	return &Holder{player: player}
}

// With runs fn with exclusive access to the player. Reads use the same gate
// as writes; the engine is a single logical thread.
func (h *Holder) With(fn func(p *crafting.Player) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(h.player)
}

// Replace swaps in a different player aggregate (used by savegame load).
func (h *Holder) Replace(player *crafting.Player) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.player = player
}
