package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cradium/internal/adapter/repo/memory"
	"cradium/internal/app/ports"
)

func TestSlotRepoRoundTrip(t *testing.T) {
	repo := memory.NewSlotRepo()
	ctx := context.Background()

	require.NoError(t, repo.WriteSlot(ctx, "alpha", []byte(`{"name":"a"}`)))

	record, err := repo.ReadSlot(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", record.Name)
	assert.Equal(t, []byte(`{"name":"a"}`), record.Data)
	assert.False(t, record.UpdatedAt.IsZero())
}

func TestSlotRepoMissingSlot(t *testing.T) {
	repo := memory.NewSlotRepo()
	_, err := repo.ReadSlot(context.Background(), "nope")
	require.ErrorIs(t, err, ports.ErrNotFound)
	require.ErrorIs(t, repo.DeleteSlot(context.Background(), "nope"), ports.ErrNotFound)
}

func TestSlotRepoOverwriteAndCopySemantics(t *testing.T) {
	repo := memory.NewSlotRepo()
	ctx := context.Background()

	payload := []byte("first")
	require.NoError(t, repo.WriteSlot(ctx, "slot", payload))
	payload[0] = 'X'

	record, err := repo.ReadSlot(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), record.Data, "stored payload must not alias the caller's buffer")

	require.NoError(t, repo.WriteSlot(ctx, "slot", []byte("second")))
	record, err = repo.ReadSlot(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), record.Data)
}

func TestSlotRepoListSorted(t *testing.T) {
	repo := memory.NewSlotRepo()
	ctx := context.Background()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, repo.WriteSlot(ctx, name, []byte(name)))
	}

	records, err := repo.ListSlots(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)

	require.NoError(t, repo.DeleteSlot(ctx, "mid"))
	records, err = repo.ListSlots(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
