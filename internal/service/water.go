package service

import (
	"context"
	"fmt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository"
)

var ErrWaterNotFound = repository.ErrWaterNotFound

type WaterRepository interface {
	CreateOrGet(ctx context.Context, water domain.Water) (domain.Water, error)
	FindByID(ctx context.Context, id int64) (domain.Water, error)
	FindAll(ctx context.Context) ([]domain.Water, error)
}

type WaterService struct {
	repo WaterRepository
}

func NewWaterService(repo WaterRepository) *WaterService {
	return &WaterService{
		repo: repo,
	}
}

// CreateWater registers a water point under its coordinate-derived id.
// Creating the same coordinates again returns the existing point.
func (s *WaterService) CreateWater(ctx context.Context, x, y float64) (domain.Water, error) {
	water, err := s.repo.CreateOrGet(ctx, domain.Water{
		ID: domain.DeriveWaterID(x, y),
		X:  x,
		Y:  y,
	})
	if err != nil {
		return domain.Water{}, fmt.Errorf("s.repo.CreateOrGet -> %w", err)
	}

	return water, nil
}

func (s *WaterService) GetWaterByID(ctx context.Context, id int64) (domain.Water, error) {
	water, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Water{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return water, nil
}

func (s *WaterService) GetAllWaters(ctx context.Context) ([]domain.Water, error) {
	waters, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return waters, nil
}
