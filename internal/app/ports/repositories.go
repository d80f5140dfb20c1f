package ports

import (
	"context"
	"time"
)

// SaveSlotRecord is a named save slot with its encoded payload.
type SaveSlotRecord struct {
	Name      string
	Data      []byte
	UpdatedAt time.Time
}

// SaveSlotRepository persists encoded game state under slot names.
type SaveSlotRepository interface {
	ReadSlot(ctx context.Context, name string) (SaveSlotRecord, error)
	WriteSlot(ctx context.Context, name string, data []byte) error
	ListSlots(ctx context.Context) ([]SaveSlotRecord, error)
	DeleteSlot(ctx context.Context, name string) error
}
