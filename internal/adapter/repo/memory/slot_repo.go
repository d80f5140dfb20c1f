// Package memory is the in-process save-slot store used by the console
// shell and by tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"cradium/internal/app/ports"
)

type SlotRepo struct {
	mu    sync.RWMutex
	slots map[string]ports.SaveSlotRecord
	now   func() time.Time
}

func NewSlotRepo() *SlotRepo {
	return &SlotRepo{
		slots: make(map[string]ports.SaveSlotRecord),
		now:   time.Now,
	}
}

func (r *SlotRepo) ReadSlot(_ context.Context, name string) (ports.SaveSlotRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.slots[name]
	if !ok {
		return ports.SaveSlotRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r *SlotRepo) WriteSlot(_ context.Context, name string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	r.slots[name] = ports.SaveSlotRecord{Name: name, Data: copied, UpdatedAt: r.now()}
	return nil
}

func (r *SlotRepo) ListSlots(_ context.Context) ([]ports.SaveSlotRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]ports.SaveSlotRecord, 0, len(r.slots))
	for _, record := range r.slots {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (r *SlotRepo) DeleteSlot(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[name]; !ok {
		return ports.ErrNotFound
	}
	delete(r.slots, name)
	return nil
}
