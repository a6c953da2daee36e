package repository

import (
	"context"
	"fmt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository/dao"
)

var ErrWaterNotFound = dao.ErrWaterNotFound

type WaterDAO interface {
	Upsert(ctx context.Context, water dao.Water) (dao.Water, error)
	FindByID(ctx context.Context, id int64) (dao.Water, error)
	FindAll(ctx context.Context) ([]dao.Water, error)
}

type WaterRepository struct {
	dao WaterDAO
}

func NewWaterRepository(dao WaterDAO) *WaterRepository {
	return &WaterRepository{
		dao: dao,
	}
}

func (r *WaterRepository) CreateOrGet(ctx context.Context, water domain.Water) (domain.Water, error) {
	upserted, err := r.dao.Upsert(ctx, dao.Water{
		ID: water.ID,
		X:  water.X,
		Y:  water.Y,
	})
	if err != nil {
		return domain.Water{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(upserted), nil
}

func (r *WaterRepository) FindByID(ctx context.Context, id int64) (domain.Water, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Water{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *WaterRepository) FindAll(ctx context.Context) ([]domain.Water, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	waters := make([]domain.Water, len(found))
	for i, w := range found {
		waters[i] = r.daoToDomain(w)
	}

	return waters, nil
}

func (r *WaterRepository) daoToDomain(w dao.Water) domain.Water {
	return domain.Water{
		ID:        w.ID,
		X:         w.X,
		Y:         w.Y,
		CreatedAt: w.CreatedAt,
	}
}
