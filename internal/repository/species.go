package repository

import (
	"context"
	"fmt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository/dao"
)

var ErrSpeciesNotFound = dao.ErrSpeciesNotFound

type SpeciesDAO interface {
	Insert(ctx context.Context, species dao.Species) (dao.Species, error)
	FindByID(ctx context.Context, id uint) (dao.Species, error)
	FindAll(ctx context.Context) ([]dao.Species, error)
}

type SpeciesRepository struct {
	dao SpeciesDAO
}

func NewSpeciesRepository(dao SpeciesDAO) *SpeciesRepository {
	return &SpeciesRepository{
		dao: dao,
	}
}

func (r *SpeciesRepository) Create(ctx context.Context, species domain.Species) (domain.Species, error) {
	created, err := r.dao.Insert(ctx, dao.Species{
		Name:      species.Name,
		AvgWeight: species.AvgWeight,
		Photo:     species.Photo,
	})
	if err != nil {
		return domain.Species{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SpeciesRepository) FindByID(ctx context.Context, id uint) (domain.Species, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Species{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SpeciesRepository) FindAll(ctx context.Context) ([]domain.Species, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	species := make([]domain.Species, len(found))
	for i, s := range found {
		species[i] = r.daoToDomain(s)
	}

	return species, nil
}

func (r *SpeciesRepository) daoToDomain(s dao.Species) domain.Species {
	return domain.Species{
		ID:        s.ID,
		Name:      s.Name,
		AvgWeight: s.AvgWeight,
		Photo:     s.Photo,
	}
}
