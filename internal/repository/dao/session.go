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
	ErrSessionNotFound    = errors.New("fishing session not found")
	ErrSessionAlreadyOpen = errors.New("fishing session already open")
)

// Session rows carry a partial unique index on (fisher_email, water_id)
// restricted to open rows, so the database itself rejects a second open
// session for the same pair.
type Session struct {
	ID uint `gorm:"primaryKey"`

	FisherEmail string `gorm:"size:255;not null;index;uniqueIndex:uniq_open_session,where:end_time IS NULL"`
	WaterID     int64  `gorm:"not null;index;uniqueIndex:uniq_open_session,where:end_time IS NULL"`
	Water       Water  `gorm:"foreignKey:WaterID"`

	StartTime time.Time  `gorm:"not null"`
	EndTime   *time.Time // NULL while the session is open
}

func (Session) TableName() string {
	return "fishing_sessions"
}

type SessionDAO struct {
	db *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{
		db: db,
	}
}

// InsertOpen creates a new open session. The pre-check catches the
// common case cheaply; when two starts for the same (fisher, water) pair
// race past it, the uniq_open_session partial index rejects the loser
// and the unique violation is mapped to the same sentinel.
func (d *SessionDAO) InsertOpen(ctx context.Context, session Session) (Session, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open Session
		result := tx.
			Where("fisher_email = ? AND water_id = ? AND end_time IS NULL",
				session.FisherEmail, session.WaterID).
			First(&open)
		if result.Error == nil {
			return ErrSessionAlreadyOpen
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		return tx.Create(&session).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, "uniq_open_session") {
			return Session{}, ErrSessionAlreadyOpen
		}

		return Session{}, err
	}

	return session, nil
}

func (d *SessionDAO) FindByID(ctx context.Context, id uint) (Session, error) {
	var session Session

	result := d.db.WithContext(ctx).First(&session, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, result.Error
	}

	return session, nil
}

func (d *SessionDAO) FindByFisherEmail(ctx context.Context, email string) ([]Session, error) {
	var sessions []Session

	result := d.db.WithContext(ctx).Where("fisher_email = ?", email).Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}

	return sessions, nil
}

// CloseByFisherAndWater closes the pair's open session. The open row's
// id is resolved first so the close itself is the same conditional
// UPDATE as CloseByID; a concurrent close between the lookup and the
// UPDATE surfaces as ErrSessionNotFound.
func (d *SessionDAO) CloseByFisherAndWater(ctx context.Context, email string, waterID int64) (Session, error) {
	var open Session
	err := d.db.WithContext(ctx).
		Where("fisher_email = ? AND water_id = ? AND end_time IS NULL", email, waterID).
		First(&open).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, err
	}

	return d.CloseByID(ctx, open.ID)
}

// CloseByID is the same one-way transition addressed by session id.
func (d *SessionDAO) CloseByID(ctx context.Context, id uint) (Session, error) {
	result := d.db.WithContext(ctx).
		Model(&Session{}).
		Where("id = ? AND end_time IS NULL", id).
		Update("end_time", time.Now())
	if result.Error != nil {
		return Session{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Session{}, ErrSessionNotFound
	}

	return d.FindByID(ctx, id)
}
