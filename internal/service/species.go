package service

import (
	"context"
	"fmt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
)

type SpeciesRepository interface {
	Create(ctx context.Context, species domain.Species) (domain.Species, error)
	FindByID(ctx context.Context, id uint) (domain.Species, error)
	FindAll(ctx context.Context) ([]domain.Species, error)
}

type SpeciesService struct {
	repo SpeciesRepository
}

func NewSpeciesService(repo SpeciesRepository) *SpeciesService {
	return &SpeciesService{
		repo: repo,
	}
}

func (s *SpeciesService) CreateSpecies(ctx context.Context, name string, avgWeight float64) (domain.Species, error) {
	species, err := s.repo.Create(ctx, domain.Species{
		Name:      name,
		AvgWeight: avgWeight,
	})
	if err != nil {
		return domain.Species{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return species, nil
}

func (s *SpeciesService) GetSpecies(ctx context.Context, id uint) (domain.Species, error) {
	species, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Species{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return species, nil
}

func (s *SpeciesService) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	species, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return species, nil
}
