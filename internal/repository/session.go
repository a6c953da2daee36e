package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository/dao"
)

var (
	ErrSessionNotFound    = dao.ErrSessionNotFound
	ErrSessionAlreadyOpen = dao.ErrSessionAlreadyOpen
)

type SessionDAO interface {
	InsertOpen(ctx context.Context, session dao.Session) (dao.Session, error)
	FindByID(ctx context.Context, id uint) (dao.Session, error)
	FindByFisherEmail(ctx context.Context, email string) ([]dao.Session, error)
	CloseByFisherAndWater(ctx context.Context, email string, waterID int64) (dao.Session, error)
	CloseByID(ctx context.Context, id uint) (dao.Session, error)
}

type SessionRepository struct {
	dao SessionDAO
}

func NewSessionRepository(dao SessionDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func (r *SessionRepository) CreateOpen(ctx context.Context, fisherEmail string, waterID int64, startTime time.Time) (domain.Session, error) {
	created, err := r.dao.InsertOpen(ctx, dao.Session{
		FisherEmail: fisherEmail,
		WaterID:     waterID,
		StartTime:   startTime,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.InsertOpen -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id uint) (domain.Session, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SessionRepository) FindByFisherEmail(ctx context.Context, email string) ([]domain.Session, error) {
	found, err := r.dao.FindByFisherEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByFisherEmail -> %w", err)
	}

	sessions := make([]domain.Session, len(found))
	for i, s := range found {
		sessions[i] = r.daoToDomain(s)
	}

	return sessions, nil
}

func (r *SessionRepository) CloseByFisherAndWater(ctx context.Context, email string, waterID int64) (domain.Session, error) {
	closed, err := r.dao.CloseByFisherAndWater(ctx, email, waterID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.CloseByFisherAndWater -> %w", err)
	}

	return r.daoToDomain(closed), nil
}

func (r *SessionRepository) CloseByID(ctx context.Context, id uint) (domain.Session, error) {
	closed, err := r.dao.CloseByID(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.CloseByID -> %w", err)
	}

	return r.daoToDomain(closed), nil
}

func (r *SessionRepository) daoToDomain(s dao.Session) domain.Session {
	return domain.Session{
		ID:          s.ID,
		FisherEmail: s.FisherEmail,
		WaterID:     s.WaterID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
	}
}
