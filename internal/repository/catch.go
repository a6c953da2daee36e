package repository

import (
	"context"
	"fmt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository/dao"
)

var ErrSessionClosed = dao.ErrSessionClosed

type CatchDAO interface {
	Insert(ctx context.Context, catch dao.Catch) (dao.Catch, error)
	InsertVerified(ctx context.Context, catch dao.Catch) (dao.Catch, error)
	FindBySessionID(ctx context.Context, sessionID uint) ([]dao.Catch, error)
}

type CatchRepository struct {
	dao CatchDAO
}

func NewCatchRepository(dao CatchDAO) *CatchRepository {
	return &CatchRepository{
		dao: dao,
	}
}

func (r *CatchRepository) Create(ctx context.Context, catch domain.Catch) (domain.Catch, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(catch))
	if err != nil {
		return domain.Catch{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// CreateVerified persists a photographed catch and credits the owning
// fisher's score in the same transaction.
func (r *CatchRepository) CreateVerified(ctx context.Context, catch domain.Catch) (domain.Catch, error) {
	created, err := r.dao.InsertVerified(ctx, r.domainToDao(catch))
	if err != nil {
		return domain.Catch{}, fmt.Errorf("r.dao.InsertVerified -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CatchRepository) FindBySessionID(ctx context.Context, sessionID uint) ([]domain.Catch, error) {
	found, err := r.dao.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySessionID -> %w", err)
	}

	catches := make([]domain.Catch, len(found))
	for i, c := range found {
		catches[i] = r.daoToDomain(c)
	}

	return catches, nil
}

func (r *CatchRepository) domainToDao(c domain.Catch) dao.Catch {
	return dao.Catch{
		FisherEmail: c.FisherEmail,
		Weight:      c.Weight,
		Photo:       c.Photo,
		SessionID:   c.SessionID,
		SpeciesID:   c.SpeciesID,
	}
}

func (r *CatchRepository) daoToDomain(c dao.Catch) domain.Catch {
	return domain.Catch{
		ID:          c.ID,
		FisherEmail: c.FisherEmail,
		Weight:      c.Weight,
		Photo:       c.Photo,
		SessionID:   c.SessionID,
		SpeciesID:   c.SpeciesID,
	}
}
