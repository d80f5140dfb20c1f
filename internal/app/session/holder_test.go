package session_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cradium/internal/app/session"
	"cradium/internal/domain/crafting"
)

func TestWithSerializesMutation(t *testing.T) {
	holder := session.NewHolder(crafting.NewPlayer("tester"))
	iron := &crafting.Material{ID: "mat-iron", Name: "Iron"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = holder.With(func(p *crafting.Player) error {
				p.Inventory.Add(iron, 1)
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, holder.With(func(p *crafting.Player) error {
		assert.Equal(t, 50, p.Inventory.Quantity("mat-iron"))
		return nil
	}))
}

func TestWithPropagatesError(t *testing.T) {
	holder := session.NewHolder(crafting.NewPlayer("tester"))
	sentinel := errors.New("boom")
	require.ErrorIs(t, holder.With(func(p *crafting.Player) error { return sentinel }), sentinel)
}

func TestReplaceSwapsPlayer(t *testing.T) {
	holder := session.NewHolder(crafting.NewPlayer("old"))
	holder.Replace(crafting.NewPlayer("new"))

	require.NoError(t, holder.With(func(p *crafting.Player) error {
		assert.Equal(t, "new", p.Name)
		return nil
	}))
}
