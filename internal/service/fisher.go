package service

import (
	"context"
	"fmt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
)

// DefaultLeaderboardSize caps the top-N query when the caller does not
// supply a count.
const DefaultLeaderboardSize = 10

type FisherRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.Fisher, error)
	FindTopByScore(ctx context.Context, limit int) ([]domain.Fisher, error)
	FindAllByScore(ctx context.Context) ([]domain.Fisher, error)
}

type FisherService struct {
	repo FisherRepository
}

func NewFisherService(repo FisherRepository) *FisherService {
	return &FisherService{
		repo: repo,
	}
}

func (s *FisherService) GetFisher(ctx context.Context, email string) (domain.Fisher, error) {
	fisher, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.Fisher{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return fisher, nil
}

func (s *FisherService) GetTopFishers(ctx context.Context, count int) ([]domain.Fisher, error) {
	if count <= 0 {
		count = DefaultLeaderboardSize
	}

	fishers, err := s.repo.FindTopByScore(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTopByScore -> %w", err)
	}

	return fishers, nil
}

func (s *FisherService) GetAllFishers(ctx context.Context) ([]domain.Fisher, error) {
	fishers, err := s.repo.FindAllByScore(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByScore -> %w", err)
	}

	return fishers, nil
}
