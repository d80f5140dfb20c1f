// Package savegame moves whole player states between the session and
// named save slots.
package savegame

import (
	"context"
	"errors"
	"strings"
	"time"

	"cradium/internal/app/ports"
	"cradium/internal/app/session"
	"cradium/internal/domain/crafting"
)

var ErrInvalidSlotName = errors.New("invalid save slot name")

type UseCase struct {
	State     *session.Holder
	Slots     ports.SaveSlotRepository
	Materials *crafting.Catalog
	Recipes   *crafting.RecipeRegistry
}

// Save snapshots the current player into the named slot. The encoding
// happens under the session guard so a concurrent tick cannot tear the
// snapshot.
func (u UseCase) Save(ctx context.Context, slot string) error {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return ErrInvalidSlotName
	}
	var data []byte
	err := u.State.With(func(p *crafting.Player) error {
		encoded, err := crafting.EncodeDocument(p, u.Recipes)
		if err != nil {
			return err
		}
		data = encoded
		return nil
	})
	if err != nil {
		return err
	}
	return u.Slots.WriteSlot(ctx, slot, data)
}

// Load replaces the session player with the decoded slot contents. The
// running state is untouched when decoding fails.
func (u UseCase) Load(ctx context.Context, slot string) error {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return ErrInvalidSlotName
	}
	record, err := u.Slots.ReadSlot(ctx, slot)
	if err != nil {
		return err
	}
	player, err := crafting.DecodeDocument(record.Data, u.Materials, u.Recipes)
	if err != nil {
		return err
	}
	u.State.Replace(player)
	return nil
}

// SlotInfo describes a stored slot without its payload.
type SlotInfo struct {
	Name      string    `json:"name"`
	Size      int       `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u UseCase) List(ctx context.Context) ([]SlotInfo, error) {
	records, err := u.Slots.ListSlots(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]SlotInfo, 0, len(records))
	for _, r := range records {
		infos = append(infos, SlotInfo{Name: r.Name, Size: len(r.Data), UpdatedAt: r.UpdatedAt})
	}
	return infos, nil
}

func (u UseCase) Delete(ctx context.Context, slot string) error {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return ErrInvalidSlotName
	}
	return u.Slots.DeleteSlot(ctx, slot)
}
