package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDiscussionNotFound = errors.New("discussion not found")

type Discussion struct {
	ID uint `gorm:"primaryKey"`

	WaterID int64 `gorm:"not null;uniqueIndex"`
	Water   Water `gorm:"foreignKey:WaterID"`
}

type Message struct {
	ID uint `gorm:"primaryKey"`

	DiscussionID uint       `gorm:"not null;index"`
	Discussion   Discussion `gorm:"foreignKey:DiscussionID"`

	Content     string    `gorm:"not null"`
	FisherEmail string    `gorm:"size:255;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

type DiscussionDAO struct {
	db *gorm.DB
}

func NewDiscussionDAO(db *gorm.DB) *DiscussionDAO {
	return &DiscussionDAO{
		db: db,
	}
}

// UpsertByWater returns the water's existing thread or creates one.
// The unique index on water_id keeps the 1:1 relation honest even when
// two first references race.
func (d *DiscussionDAO) UpsertByWater(ctx context.Context, waterID int64) (Discussion, error) {
	discussion := Discussion{WaterID: waterID}

	result := d.db.WithContext(ctx).
		Where(Discussion{WaterID: waterID}).
		FirstOrCreate(&discussion)
	if result.Error != nil {
		return Discussion{}, result.Error
	}

	return discussion, nil
}

func (d *DiscussionDAO) FindByID(ctx context.Context, id uint) (Discussion, error) {
	var discussion Discussion

	result := d.db.WithContext(ctx).First(&discussion, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Discussion{}, ErrDiscussionNotFound
		}

		return Discussion{}, result.Error
	}

	return discussion, nil
}

func (d *DiscussionDAO) InsertMessage(ctx context.Context, message Message) (Message, error) {
	result := d.db.WithContext(ctx).Create(&message)
	if result.Error != nil {
		return Message{}, result.Error
	}

	return message, nil
}

func (d *DiscussionDAO) FindMessagesByDiscussionID(ctx context.Context, discussionID uint) ([]Message, error) {
	var messages []Message

	result := d.db.WithContext(ctx).
		Where("discussion_id = ?", discussionID).
		Order("created_at ASC, id ASC").
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}
