package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository"
)

var (
	ErrSessionNotFound    = repository.ErrSessionNotFound
	ErrSessionAlreadyOpen = repository.ErrSessionAlreadyOpen
)

type SessionRepository interface {
	CreateOpen(ctx context.Context, fisherEmail string, waterID int64, startTime time.Time) (domain.Session, error)
	FindByID(ctx context.Context, id uint) (domain.Session, error)
	FindByFisherEmail(ctx context.Context, email string) ([]domain.Session, error)
	CloseByFisherAndWater(ctx context.Context, email string, waterID int64) (domain.Session, error)
	CloseByID(ctx context.Context, id uint) (domain.Session, error)
}

type SessionWaterRepository interface {
	CreateOrGet(ctx context.Context, water domain.Water) (domain.Water, error)
}

// SessionService owns the session state machine: a session is created
// Open and closed exactly once. At most one open session exists per
// (fisher, water) pair; a fisher may hold open sessions at different
// waters simultaneously.
type SessionService struct {
	repo      SessionRepository
	waterRepo SessionWaterRepository
}

func NewSessionService(repo SessionRepository, waterRepo SessionWaterRepository) *SessionService {
	return &SessionService{
		repo:      repo,
		waterRepo: waterRepo,
	}
}

// StartSession opens a session at the water point with the given
// coordinates, creating the point on first reference.
func (s *SessionService) StartSession(ctx context.Context, fisherEmail string, x, y float64) (domain.Session, error) {
	water, err := s.waterRepo.CreateOrGet(ctx, domain.Water{
		ID: domain.DeriveWaterID(x, y),
		X:  x,
		Y:  y,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.waterRepo.CreateOrGet -> %w", err)
	}

	session, err := s.repo.CreateOpen(ctx, fisherEmail, water.ID, time.Now())
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.CreateOpen -> %w", err)
	}

	return session, nil
}

// EndSession closes the fisher's open session at the given coordinates.
func (s *SessionService) EndSession(ctx context.Context, fisherEmail string, x, y float64) (domain.Session, error) {
	session, err := s.repo.CloseByFisherAndWater(ctx, fisherEmail, domain.DeriveWaterID(x, y))
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.CloseByFisherAndWater -> %w", err)
	}

	return session, nil
}

// EndSessionByID closes an open session addressed directly by id.
func (s *SessionService) EndSessionByID(ctx context.Context, id uint) (domain.Session, error) {
	session, err := s.repo.CloseByID(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.CloseByID -> %w", err)
	}

	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, id uint) (domain.Session, error) {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return session, nil
}

// GetSessionsByFisher returns all of a fisher's sessions, open and closed.
func (s *SessionService) GetSessionsByFisher(ctx context.Context, email string) ([]domain.Session, error) {
	sessions, err := s.repo.FindByFisherEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByFisherEmail -> %w", err)
	}

	return sessions, nil
}
