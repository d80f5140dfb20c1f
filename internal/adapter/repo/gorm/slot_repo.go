package gormrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cradium/internal/app/ports"
)

// SaveSlot is the persistence model for one named save slot.
type SaveSlot struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

func (SaveSlot) TableName() string { return "save_slots" }

type SlotRepo struct {
	db *gorm.DB
}

func NewSlotRepo(db *gorm.DB) SlotRepo {
	return SlotRepo{db: db}
}

func (r SlotRepo) ReadSlot(ctx context.Context, name string) (ports.SaveSlotRecord, error) {
	var m SaveSlot
	err := r.db.WithContext(ctx).Where(&SaveSlot{Name: name}).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SaveSlotRecord{}, ports.ErrNotFound
		}
		return ports.SaveSlotRecord{}, err
	}
	return ports.SaveSlotRecord{Name: m.Name, Data: m.Data, UpdatedAt: m.UpdatedAt}, nil
}

func (r SlotRepo) WriteSlot(ctx context.Context, name string, data []byte) error {
	m := SaveSlot{Name: name, Data: data}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&m).Error
}

func (r SlotRepo) ListSlots(ctx context.Context) ([]ports.SaveSlotRecord, error) {
	var rows []SaveSlot
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.SaveSlotRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.SaveSlotRecord{Name: m.Name, Data: m.Data, UpdatedAt: m.UpdatedAt})
	}
	return out, nil
}

func (r SlotRepo) DeleteSlot(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where(&SaveSlot{Name: name}).Delete(&SaveSlot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
