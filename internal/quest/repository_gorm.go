package quest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/eternal-quest/internal/codec"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository stores saves as SaveSlot rows; the location is the slot
// name.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Save(ctx context.Context, location string, snap codec.Snapshot) error {
	var buf bytes.Buffer
	if err := codec.Encode(&buf, snap); err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	slot := SaveSlot{
		ID:      uuid.New(),
		Name:    location,
		Content: buf.String(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&slot).Error
}

func (r *gormRepository) Load(ctx context.Context, location string) (codec.Snapshot, error) {
	var slot SaveSlot
	if err := r.db.WithContext(ctx).First(&slot, "name = ?", location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return codec.Snapshot{}, fmt.Errorf("%w: slot %s", ErrNotFound, location)
		}
		return codec.Snapshot{}, err
	}
	return codec.Decode(strings.NewReader(slot.Content))
}
