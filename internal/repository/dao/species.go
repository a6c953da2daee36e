package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrSpeciesNotFound = errors.New("fish species not found")

type Species struct {
	ID uint `gorm:"primaryKey"`

	Name      string  `gorm:"size:255;not null"`
	AvgWeight float64 // reference value, not the weight of any caught instance
	Photo     []byte  `gorm:"type:bytea"`
}

func (Species) TableName() string {
	return "fish_species"
}

type SpeciesDAO struct {
	db *gorm.DB
}

func NewSpeciesDAO(db *gorm.DB) *SpeciesDAO {
	return &SpeciesDAO{
		db: db,
	}
}

func (d *SpeciesDAO) Insert(ctx context.Context, species Species) (Species, error) {
	result := d.db.WithContext(ctx).Create(&species)
	if result.Error != nil {
		return Species{}, result.Error
	}

	return species, nil
}

func (d *SpeciesDAO) FindByID(ctx context.Context, id uint) (Species, error) {
	var species Species

	result := d.db.WithContext(ctx).First(&species, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Species{}, ErrSpeciesNotFound
		}

		return Species{}, result.Error
	}

	return species, nil
}

func (d *SpeciesDAO) FindAll(ctx context.Context) ([]Species, error) {
	var species []Species

	result := d.db.WithContext(ctx).Find(&species)
	if result.Error != nil {
		return nil, result.Error
	}

	return species, nil
}
