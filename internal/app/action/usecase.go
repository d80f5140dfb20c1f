// Package action implements the player command use cases: mining,
// grid placement, crafting, and management of recipes, machines,
// plants, and scripts. Every command mutates the player through the
// shared session guard so automation ticks never observe a half-applied
// command.
package action

import (
	"errors"
	"math/rand"
	"time"

	"cradium/internal/app/ports"
	"cradium/internal/app/session"
	"cradium/internal/domain/crafting"
)

var ErrInvalidRequest = errors.New("invalid action request")

// DefaultMineCooldown throttles repeated mining of the same resource
// node.
const DefaultMineCooldown = 60 * time.Second

type UseCase struct {
	State     *session.Holder
	Materials *crafting.Catalog
	Recipes   *crafting.RecipeRegistry
	Runner    ports.ScriptRunner
	Metrics   ports.EngineMetrics

	// MineCooldown defaults to DefaultMineCooldown when zero.
	MineCooldown time.Duration

	Now  func() time.Time
	Rand *rand.Rand
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) rng() *rand.Rand {
	if u.Rand != nil {
		return u.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (u UseCase) mineCooldown() time.Duration {
	if u.MineCooldown > 0 {
		return u.MineCooldown
	}
	return DefaultMineCooldown
}

func (u UseCase) observe(command string, err error) {
	if u.Metrics == nil {
		return
	}
	u.Metrics.RecordCommand(command)
	if err != nil {
		u.Metrics.RecordFailure(command)
	}
}
