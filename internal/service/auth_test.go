package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository"
)

// fakeFisherRepo is an in-memory stand-in for repository.FisherRepository.
type fakeFisherRepo struct {
	fishers map[string]domain.Fisher
}

func newFakeFisherRepo() *fakeFisherRepo {
	return &fakeFisherRepo{
		fishers: make(map[string]domain.Fisher),
	}
}

func (f *fakeFisherRepo) Create(_ context.Context, fisher domain.Fisher) (domain.Fisher, error) {
	if _, ok := f.fishers[fisher.Email]; ok {
		return domain.Fisher{}, repository.ErrFisherExists
	}

	fisher.Score = 0
	f.fishers[fisher.Email] = fisher

	return fisher, nil
}

func (f *fakeFisherRepo) FindByEmail(_ context.Context, email string) (domain.Fisher, error) {
	fisher, ok := f.fishers[email]
	if !ok {
		return domain.Fisher{}, repository.ErrFisherNotFound
	}

	return fisher, nil
}

func (f *fakeFisherRepo) UpdatePhoto(_ context.Context, email string, photo []byte) (domain.Fisher, error) {
	fisher, ok := f.fishers[email]
	if !ok {
		return domain.Fisher{}, repository.ErrFisherNotFound
	}

	fisher.Photo = photo
	f.fishers[email] = fisher

	return fisher, nil
}

func (f *fakeFisherRepo) FindTopByScore(_ context.Context, limit int) ([]domain.Fisher, error) {
	all, _ := f.FindAllByScore(context.Background())
	if len(all) > limit {
		all = all[:limit]
	}

	return all, nil
}

func (f *fakeFisherRepo) FindAllByScore(_ context.Context) ([]domain.Fisher, error) {
	result := make([]domain.Fisher, 0, len(f.fishers))
	for _, fisher := range f.fishers {
		result = append(result, fisher)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	return result, nil
}

func TestAuthService_Register(t *testing.T) {
	repo := newFakeFisherRepo()
	svc := NewAuthService(repo)

	created, err := svc.Register(context.Background(), domain.Fisher{
		Email:    "a@x.com",
		Name:     "Alice",
		Surname:  "Angler",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Email)
	assert.Equal(t, 0, created.Score)

	// The stored password must be a bcrypt hash of the plaintext.
	stored := repo.fishers["a@x.com"].Password
	assert.NotEqual(t, "secret123", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("secret123")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeFisherRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), domain.Fisher{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), domain.Fisher{Email: "a@x.com", Password: "another456"})
	assert.ErrorIs(t, err, ErrFisherExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeFisherRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), domain.Fisher{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		fisher, err := svc.Login(context.Background(), "a@x.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", fisher.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "a@x.com", "wrong-password")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@x.com", "secret123")
		assert.ErrorIs(t, err, ErrFisherNotFound)
	})
}

func TestAuthService_UpdatePhoto(t *testing.T) {
	repo := newFakeFisherRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), domain.Fisher{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	updated, err := svc.UpdatePhoto(context.Background(), "a@x.com", []byte{0x1, 0x2})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1, 0x2}, updated.Photo)

	_, err = svc.UpdatePhoto(context.Background(), "nobody@x.com", []byte{0x1})
	assert.ErrorIs(t, err, ErrFisherNotFound)
}
