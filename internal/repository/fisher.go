package repository

import (
	"context"
	"fmt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository/dao"
)

var (
	ErrFisherExists   = dao.ErrFisherExists
	ErrFisherNotFound = dao.ErrFisherNotFound
)

type FisherDAO interface {
	Insert(ctx context.Context, fisher dao.Fisher) (dao.Fisher, error)
	FindByEmail(ctx context.Context, email string) (dao.Fisher, error)
	UpdatePhoto(ctx context.Context, email string, photo []byte) (dao.Fisher, error)
	FindTopByScore(ctx context.Context, limit int) ([]dao.Fisher, error)
	FindAllByScore(ctx context.Context) ([]dao.Fisher, error)
}

type FisherRepository struct {
	dao FisherDAO
}

func NewFisherRepository(dao FisherDAO) *FisherRepository {
	return &FisherRepository{
		dao: dao,
	}
}

func (r *FisherRepository) Create(ctx context.Context, fisher domain.Fisher) (domain.Fisher, error) {
	created, err := r.dao.Insert(ctx, dao.Fisher{
		Email:    fisher.Email,
		Name:     fisher.Name,
		Surname:  fisher.Surname,
		Password: fisher.Password,
		Score:    0,
	})
	if err != nil {
		return domain.Fisher{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FisherRepository) FindByEmail(ctx context.Context, email string) (domain.Fisher, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Fisher{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FisherRepository) UpdatePhoto(ctx context.Context, email string, photo []byte) (domain.Fisher, error) {
	updated, err := r.dao.UpdatePhoto(ctx, email, photo)
	if err != nil {
		return domain.Fisher{}, fmt.Errorf("r.dao.UpdatePhoto -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *FisherRepository) FindTopByScore(ctx context.Context, limit int) ([]domain.Fisher, error) {
	found, err := r.dao.FindTopByScore(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTopByScore -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *FisherRepository) FindAllByScore(ctx context.Context) ([]domain.Fisher, error) {
	found, err := r.dao.FindAllByScore(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByScore -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *FisherRepository) daoToDomain(f dao.Fisher) domain.Fisher {
	return domain.Fisher{
		Email:     f.Email,
		Name:      f.Name,
		Surname:   f.Surname,
		Password:  f.Password,
		Score:     f.Score,
		Photo:     f.Photo,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (r *FisherRepository) daosToDomain(fishers []dao.Fisher) []domain.Fisher {
	result := make([]domain.Fisher, len(fishers))
	for i, f := range fishers {
		result[i] = r.daoToDomain(f)
	}

	return result
}
