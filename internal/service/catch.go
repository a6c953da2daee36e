package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository"
)

var (
	ErrSessionClosed   = repository.ErrSessionClosed
	ErrSpeciesNotFound = repository.ErrSpeciesNotFound
)

type CatchRepository interface {
	Create(ctx context.Context, catch domain.Catch) (domain.Catch, error)
	CreateVerified(ctx context.Context, catch domain.Catch) (domain.Catch, error)
	FindBySessionID(ctx context.Context, sessionID uint) ([]domain.Catch, error)
}

type CatchSessionRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Session, error)
}

type CatchSpeciesRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Species, error)
}

// CatchService is the catch ledger. A catch may only be added to an open
// session and is always attributed to the session's owner. The
// proof-of-catch rule lives here: only a catch submitted with a photo
// counts toward the fisher's score.
type CatchService struct {
	repo        CatchRepository
	sessionRepo CatchSessionRepository
	speciesRepo CatchSpeciesRepository
}

func NewCatchService(repo CatchRepository, sessionRepo CatchSessionRepository, speciesRepo CatchSpeciesRepository) *CatchService {
	return &CatchService{
		repo:        repo,
		sessionRepo: sessionRepo,
		speciesRepo: speciesRepo,
	}
}

// AddCatch records an unphotographed catch. The fisher's score is not
// touched on this path.
func (s *CatchService) AddCatch(ctx context.Context, sessionID, speciesID uint, weight float64) (domain.Catch, error) {
	catch, err := s.buildCatch(ctx, sessionID, speciesID, weight)
	if err != nil {
		return domain.Catch{}, err
	}

	created, err := s.repo.Create(ctx, catch)
	if err != nil {
		return domain.Catch{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// AddCatchWithPhoto records a catch carrying photographic evidence and
// credits the owning fisher's score by exactly one. An empty photo
// degrades to the unscored path.
func (s *CatchService) AddCatchWithPhoto(ctx context.Context, sessionID, speciesID uint, weight float64, photo []byte) (domain.Catch, error) {
	catch, err := s.buildCatch(ctx, sessionID, speciesID, weight)
	if err != nil {
		return domain.Catch{}, err
	}

	if len(photo) == 0 {
		created, err := s.repo.Create(ctx, catch)
		if err != nil {
			return domain.Catch{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		return created, nil
	}

	catch.Photo = photo
	created, err := s.repo.CreateVerified(ctx, catch)
	if err != nil {
		return domain.Catch{}, fmt.Errorf("s.repo.CreateVerified -> %w", err)
	}

	return created, nil
}

// GetCatchesBySession lists the session's catches. The session must
// exist; a session with no catches yields an empty list, not an error.
func (s *CatchService) GetCatchesBySession(ctx context.Context, sessionID uint) ([]domain.Catch, error) {
	if _, err := s.sessionRepo.FindByID(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}

		return nil, fmt.Errorf("s.sessionRepo.FindByID -> %w", err)
	}

	catches, err := s.repo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySessionID -> %w", err)
	}

	if catches == nil {
		catches = []domain.Catch{}
	}

	return catches, nil
}

func (s *CatchService) buildCatch(ctx context.Context, sessionID, speciesID uint, weight float64) (domain.Catch, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Catch{}, ErrSessionNotFound
		}

		return domain.Catch{}, fmt.Errorf("s.sessionRepo.FindByID -> %w", err)
	}
	if !session.IsOpen() {
		return domain.Catch{}, ErrSessionClosed
	}

	if _, err = s.speciesRepo.FindByID(ctx, speciesID); err != nil {
		if errors.Is(err, repository.ErrSpeciesNotFound) {
			return domain.Catch{}, ErrSpeciesNotFound
		}

		return domain.Catch{}, fmt.Errorf("s.speciesRepo.FindByID -> %w", err)
	}

	return domain.Catch{
		FisherEmail: session.FisherEmail,
		Weight:      weight,
		SessionID:   session.ID,
		SpeciesID:   speciesID,
	}, nil
}
