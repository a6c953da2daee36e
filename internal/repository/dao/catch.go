package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrSessionClosed = errors.New("fishing session already ended")

type Catch struct {
	ID uint `gorm:"primaryKey"`

	FisherEmail string  `gorm:"size:255;not null"`
	Weight      float64 `gorm:"not null"`
	Photo       []byte  `gorm:"type:bytea"`

	SessionID uint    `gorm:"not null;index"`
	Session   Session `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`

	SpeciesID uint    `gorm:"not null"`
	Species   Species `gorm:"foreignKey:SpeciesID"`
}

func (Catch) TableName() string {
	return "caught_fish"
}

type CatchDAO struct {
	db *gorm.DB
}

func NewCatchDAO(db *gorm.DB) *CatchDAO {
	return &CatchDAO{
		db: db,
	}
}

// Insert records a catch against an open session. The open check and the
// insert share one transaction, so a session closed by a concurrent
// request is seen before the row is written.
func (d *CatchDAO) Insert(ctx context.Context, catch Catch) (Catch, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireOpenSession(tx, catch.SessionID); err != nil {
			return err
		}

		return tx.Create(&catch).Error
	})
	if err != nil {
		return Catch{}, err
	}

	return catch, nil
}

// InsertVerified records a photographed catch and credits the fisher's
// score by one, atomically. The score credit is a conditional UPDATE,
// never a read-modify-write.
func (d *CatchDAO) InsertVerified(ctx context.Context, catch Catch) (Catch, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireOpenSession(tx, catch.SessionID); err != nil {
			return err
		}

		if err := tx.Create(&catch).Error; err != nil {
			return err
		}

		result := tx.Model(&Fisher{}).
			Where("email = ?", catch.FisherEmail).
			UpdateColumn("score", gorm.Expr("score + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFisherNotFound
		}

		return nil
	})
	if err != nil {
		return Catch{}, err
	}

	return catch, nil
}

func (d *CatchDAO) FindBySessionID(ctx context.Context, sessionID uint) ([]Catch, error) {
	var catches []Catch

	result := d.db.WithContext(ctx).Where("session_id = ?", sessionID).Find(&catches)
	if result.Error != nil {
		return nil, result.Error
	}

	return catches, nil
}

func requireOpenSession(tx *gorm.DB, sessionID uint) error {
	var session Session
	if err := tx.First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}

		return err
	}
	if session.EndTime != nil {
		return ErrSessionClosed
	}

	return nil
}
