package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository"
)

var ErrDiscussionNotFound = repository.ErrDiscussionNotFound

type DiscussionRepository interface {
	CreateOrGet(ctx context.Context, waterID int64) (domain.Discussion, error)
	FindByID(ctx context.Context, id uint) (domain.Discussion, error)
	CreateMessage(ctx context.Context, message domain.Message, createdAt time.Time) (domain.Message, error)
	FindMessages(ctx context.Context, discussionID uint) ([]domain.Message, error)
}

type DiscussionWaterRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Water, error)
}

type DiscussionService struct {
	repo      DiscussionRepository
	waterRepo DiscussionWaterRepository
}

func NewDiscussionService(repo DiscussionRepository, waterRepo DiscussionWaterRepository) *DiscussionService {
	return &DiscussionService{
		repo:      repo,
		waterRepo: waterRepo,
	}
}

// CreateDiscussion returns the water's thread, creating it on first
// reference. Requesting it again for the same water is not an error.
func (s *DiscussionService) CreateDiscussion(ctx context.Context, waterID int64) (domain.Discussion, error) {
	if _, err := s.waterRepo.FindByID(ctx, waterID); err != nil {
		if errors.Is(err, repository.ErrWaterNotFound) {
			return domain.Discussion{}, ErrWaterNotFound
		}

		return domain.Discussion{}, fmt.Errorf("s.waterRepo.FindByID -> %w", err)
	}

	discussion, err := s.repo.CreateOrGet(ctx, waterID)
	if err != nil {
		return domain.Discussion{}, fmt.Errorf("s.repo.CreateOrGet -> %w", err)
	}

	return discussion, nil
}

func (s *DiscussionService) CreateMessage(ctx context.Context, discussionID uint, content, fisherEmail string) (domain.Message, error) {
	if _, err := s.repo.FindByID(ctx, discussionID); err != nil {
		if errors.Is(err, repository.ErrDiscussionNotFound) {
			return domain.Message{}, ErrDiscussionNotFound
		}

		return domain.Message{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	message, err := s.repo.CreateMessage(ctx, domain.Message{
		DiscussionID: discussionID,
		Content:      content,
		FisherEmail:  fisherEmail,
	}, time.Now())
	if err != nil {
		return domain.Message{}, fmt.Errorf("s.repo.CreateMessage -> %w", err)
	}

	zap.L().Debug("message posted",
		zap.Uint("discussion_id", discussionID),
		zap.String("fisher", fisherEmail))

	return message, nil
}

func (s *DiscussionService) GetMessages(ctx context.Context, discussionID uint) ([]domain.Message, error) {
	if _, err := s.repo.FindByID(ctx, discussionID); err != nil {
		if errors.Is(err, repository.ErrDiscussionNotFound) {
			return nil, ErrDiscussionNotFound
		}

		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	messages, err := s.repo.FindMessages(ctx, discussionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindMessages -> %w", err)
	}

	if messages == nil {
		messages = []domain.Message{}
	}

	return messages, nil
}
