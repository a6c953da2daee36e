package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository"
)

var (
	ErrFisherExists   = repository.ErrFisherExists
	ErrFisherNotFound = repository.ErrFisherNotFound
	ErrWrongPassword  = errors.New("wrong password")
)

type AuthFisherRepository interface {
	Create(ctx context.Context, fisher domain.Fisher) (domain.Fisher, error)
	FindByEmail(ctx context.Context, email string) (domain.Fisher, error)
	UpdatePhoto(ctx context.Context, email string, photo []byte) (domain.Fisher, error)
}

type AuthService struct {
	repo AuthFisherRepository
}

func NewAuthService(repo AuthFisherRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Register creates a fisher account with score 0. Passwords are stored
// as bcrypt hashes, never plaintext.
func (s *AuthService) Register(ctx context.Context, fisher domain.Fisher) (domain.Fisher, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(fisher.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Fisher{}, err
	}
	fisher.Password = string(hash)

	created, err := s.repo.Create(ctx, fisher)
	if err != nil {
		return domain.Fisher{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Fisher, error) {
	fisher, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrFisherNotFound) {
			return domain.Fisher{}, ErrFisherNotFound
		}

		return domain.Fisher{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(fisher.Password), []byte(password)); err != nil {
		return domain.Fisher{}, ErrWrongPassword
	}

	return fisher, nil
}

func (s *AuthService) UpdatePhoto(ctx context.Context, email string, photo []byte) (domain.Fisher, error) {
	updated, err := s.repo.UpdatePhoto(ctx, email, photo)
	if err != nil {
		return domain.Fisher{}, fmt.Errorf("s.repo.UpdatePhoto -> %w", err)
	}

	return updated, nil
}
