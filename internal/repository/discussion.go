package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository/dao"
)

var ErrDiscussionNotFound = dao.ErrDiscussionNotFound

type DiscussionDAO interface {
	UpsertByWater(ctx context.Context, waterID int64) (dao.Discussion, error)
	FindByID(ctx context.Context, id uint) (dao.Discussion, error)
	InsertMessage(ctx context.Context, message dao.Message) (dao.Message, error)
	FindMessagesByDiscussionID(ctx context.Context, discussionID uint) ([]dao.Message, error)
}

type DiscussionRepository struct {
	dao DiscussionDAO
}

func NewDiscussionRepository(dao DiscussionDAO) *DiscussionRepository {
	return &DiscussionRepository{
		dao: dao,
	}
}

func (r *DiscussionRepository) CreateOrGet(ctx context.Context, waterID int64) (domain.Discussion, error) {
	discussion, err := r.dao.UpsertByWater(ctx, waterID)
	if err != nil {
		return domain.Discussion{}, fmt.Errorf("r.dao.UpsertByWater -> %w", err)
	}

	return r.daoToDomain(discussion), nil
}

func (r *DiscussionRepository) FindByID(ctx context.Context, id uint) (domain.Discussion, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Discussion{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DiscussionRepository) CreateMessage(ctx context.Context, message domain.Message, createdAt time.Time) (domain.Message, error) {
	created, err := r.dao.InsertMessage(ctx, dao.Message{
		DiscussionID: message.DiscussionID,
		Content:      message.Content,
		FisherEmail:  message.FisherEmail,
		CreatedAt:    createdAt,
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("r.dao.InsertMessage -> %w", err)
	}

	return r.messageDaoToDomain(created), nil
}

func (r *DiscussionRepository) FindMessages(ctx context.Context, discussionID uint) ([]domain.Message, error) {
	found, err := r.dao.FindMessagesByDiscussionID(ctx, discussionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindMessagesByDiscussionID -> %w", err)
	}

	messages := make([]domain.Message, len(found))
	for i, m := range found {
		messages[i] = r.messageDaoToDomain(m)
	}

	return messages, nil
}

func (r *DiscussionRepository) daoToDomain(d dao.Discussion) domain.Discussion {
	return domain.Discussion{
		ID:      d.ID,
		WaterID: d.WaterID,
	}
}

func (r *DiscussionRepository) messageDaoToDomain(m dao.Message) domain.Message {
	return domain.Message{
		ID:           m.ID,
		DiscussionID: m.DiscussionID,
		Content:      m.Content,
		FisherEmail:  m.FisherEmail,
		CreatedAt:    m.CreatedAt,
	}
}
