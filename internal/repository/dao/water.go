package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrWaterNotFound = errors.New("water not found")

type Water struct {
	ID int64 `gorm:"primaryKey;autoIncrement:false"`

	X float64 `gorm:"not null"`
	Y float64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

func (Water) TableName() string {
	return "waters"
}

type WaterDAO struct {
	db *gorm.DB
}

func NewWaterDAO(db *gorm.DB) *WaterDAO {
	return &WaterDAO{
		db: db,
	}
}

// Upsert inserts the water point or returns the existing row with the
// same derived id, making repeated creation of the same coordinates
// idempotent.
func (d *WaterDAO) Upsert(ctx context.Context, water Water) (Water, error) {
	result := d.db.WithContext(ctx).
		Where(Water{ID: water.ID}).
		Attrs(Water{X: water.X, Y: water.Y}).
		FirstOrCreate(&water)
	if result.Error != nil {
		return Water{}, result.Error
	}

	return water, nil
}

func (d *WaterDAO) FindByID(ctx context.Context, id int64) (Water, error) {
	var water Water

	result := d.db.WithContext(ctx).First(&water, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Water{}, ErrWaterNotFound
		}

		return Water{}, result.Error
	}

	return water, nil
}

func (d *WaterDAO) FindAll(ctx context.Context) ([]Water, error) {
	var waters []Water

	result := d.db.WithContext(ctx).Find(&waters)
	if result.Error != nil {
		return nil, result.Error
	}

	return waters, nil
}
