package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrFisherExists   = errors.New("fisher already exists")
	ErrFisherNotFound = errors.New("fisher not found")
)

type Fisher struct {
	Email string `gorm:"primaryKey;size:255"`

	Name     string `gorm:"size:255;not null"`
	Surname  string `gorm:"size:255;not null"`
	Password string `gorm:"size:255;not null"`

	Score int    `gorm:"not null;default:0"`
	Photo []byte `gorm:"type:bytea"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type FisherDAO struct {
	db *gorm.DB
}

func NewFisherDAO(db *gorm.DB) *FisherDAO {
	return &FisherDAO{
		db: db,
	}
}

func (d *FisherDAO) Insert(ctx context.Context, fisher Fisher) (Fisher, error) {
	result := d.db.WithContext(ctx).Create(&fisher)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "fishers_pkey") {
			return Fisher{}, ErrFisherExists
		}

		return Fisher{}, result.Error
	}

	return fisher, nil
}

func (d *FisherDAO) FindByEmail(ctx context.Context, email string) (Fisher, error) {
	var fisher Fisher

	result := d.db.WithContext(ctx).First(&fisher, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Fisher{}, ErrFisherNotFound
		}

		return Fisher{}, result.Error
	}

	return fisher, nil
}

func (d *FisherDAO) UpdatePhoto(ctx context.Context, email string, photo []byte) (Fisher, error) {
	result := d.db.WithContext(ctx).
		Model(&Fisher{}).
		Where("email = ?", email).
		Update("photo", photo)
	if result.Error != nil {
		return Fisher{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Fisher{}, ErrFisherNotFound
	}

	return d.FindByEmail(ctx, email)
}

func (d *FisherDAO) FindTopByScore(ctx context.Context, limit int) ([]Fisher, error) {
	var fishers []Fisher

	result := d.db.WithContext(ctx).
		Order("score DESC").
		Limit(limit).
		Find(&fishers)
	if result.Error != nil {
		return nil, result.Error
	}

	return fishers, nil
}

func (d *FisherDAO) FindAllByScore(ctx context.Context) ([]Fisher, error) {
	var fishers []Fisher

	result := d.db.WithContext(ctx).Order("score DESC").Find(&fishers)
	if result.Error != nil {
		return nil, result.Error
	}

	return fishers, nil
}
