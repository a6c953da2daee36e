package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/repository"
)

// fakeSessionRepo mirrors the DAO's guarantees: at most one open session
// per (fisher, water) pair, and close is a conditional one-way transition.
type fakeSessionRepo struct {
	sessions map[uint]domain.Session
	nextID   uint
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[uint]domain.Session),
		nextID:   1,
	}
}

func (f *fakeSessionRepo) CreateOpen(_ context.Context, fisherEmail string, waterID int64, startTime time.Time) (domain.Session, error) {
	for _, s := range f.sessions {
		if s.FisherEmail == fisherEmail && s.WaterID == waterID && s.EndTime == nil {
			return domain.Session{}, repository.ErrSessionAlreadyOpen
		}
	}

	session := domain.Session{
		ID:          f.nextID,
		FisherEmail: fisherEmail,
		WaterID:     waterID,
		StartTime:   startTime,
	}
	f.sessions[session.ID] = session
	f.nextID++

	return session, nil
}

func (f *fakeSessionRepo) FindByID(_ context.Context, id uint) (domain.Session, error) {
	session, ok := f.sessions[id]
	if !ok {
		return domain.Session{}, repository.ErrSessionNotFound
	}

	return session, nil
}

func (f *fakeSessionRepo) FindByFisherEmail(_ context.Context, email string) ([]domain.Session, error) {
	var result []domain.Session
	for _, s := range f.sessions {
		if s.FisherEmail == email {
			result = append(result, s)
		}
	}

	return result, nil
}

func (f *fakeSessionRepo) CloseByFisherAndWater(_ context.Context, email string, waterID int64) (domain.Session, error) {
	for id, s := range f.sessions {
		if s.FisherEmail == email && s.WaterID == waterID && s.EndTime == nil {
			now := time.Now()
			s.EndTime = &now
			f.sessions[id] = s

			return s, nil
		}
	}

	return domain.Session{}, repository.ErrSessionNotFound
}

func (f *fakeSessionRepo) CloseByID(_ context.Context, id uint) (domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok || s.EndTime != nil {
		return domain.Session{}, repository.ErrSessionNotFound
	}

	now := time.Now()
	s.EndTime = &now
	f.sessions[id] = s

	return s, nil
}

type fakeWaterRepo struct {
	waters map[int64]domain.Water
}

func newFakeWaterRepo() *fakeWaterRepo {
	return &fakeWaterRepo{
		waters: make(map[int64]domain.Water),
	}
}

func (f *fakeWaterRepo) CreateOrGet(_ context.Context, water domain.Water) (domain.Water, error) {
	if existing, ok := f.waters[water.ID]; ok {
		return existing, nil
	}

	f.waters[water.ID] = water

	return water, nil
}

func (f *fakeWaterRepo) FindByID(_ context.Context, id int64) (domain.Water, error) {
	water, ok := f.waters[id]
	if !ok {
		return domain.Water{}, repository.ErrWaterNotFound
	}

	return water, nil
}

func (f *fakeWaterRepo) FindAll(_ context.Context) ([]domain.Water, error) {
	result := make([]domain.Water, 0, len(f.waters))
	for _, w := range f.waters {
		result = append(result, w)
	}

	return result, nil
}

func TestSessionService_StartSession(t *testing.T) {
	waters := newFakeWaterRepo()
	svc := NewSessionService(newFakeSessionRepo(), waters)

	session, err := svc.StartSession(context.Background(), "a@x.com", 55.0, 37.0)
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", session.FisherEmail)
	assert.Equal(t, domain.DeriveWaterID(55.0, 37.0), session.WaterID)
	assert.True(t, session.IsOpen())
	assert.False(t, session.StartTime.IsZero())

	// Starting at a water point registers it on first reference.
	_, err = waters.FindByID(context.Background(), session.WaterID)
	assert.NoError(t, err)
}

func TestSessionService_StartSession_AlreadyOpen(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), newFakeWaterRepo())

	_, err := svc.StartSession(context.Background(), "a@x.com", 55.0, 37.0)
	require.NoError(t, err)

	_, err = svc.StartSession(context.Background(), "a@x.com", 55.0, 37.0)
	assert.ErrorIs(t, err, ErrSessionAlreadyOpen)

	// A different water is fine: the invariant is scoped per pair.
	_, err = svc.StartSession(context.Background(), "a@x.com", 60.0, 30.0)
	assert.NoError(t, err)

	// So is a different fisher at the same water.
	_, err = svc.StartSession(context.Background(), "b@x.com", 55.0, 37.0)
	assert.NoError(t, err)
}

func TestSessionService_EndSession(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), newFakeWaterRepo())

	_, err := svc.StartSession(context.Background(), "a@x.com", 55.0, 37.0)
	require.NoError(t, err)

	closed, err := svc.EndSession(context.Background(), "a@x.com", 55.0, 37.0)
	require.NoError(t, err)
	require.NotNil(t, closed.EndTime)
	assert.False(t, closed.IsOpen())

	// Closed is terminal: a second end on the same pair finds nothing.
	_, err = svc.EndSession(context.Background(), "a@x.com", 55.0, 37.0)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_EndSessionByID(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), newFakeWaterRepo())

	session, err := svc.StartSession(context.Background(), "a@x.com", 55.0, 37.0)
	require.NoError(t, err)

	closed, err := svc.EndSessionByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.NotNil(t, closed.EndTime)

	_, err = svc.EndSessionByID(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.EndSessionByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_GetSession(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), newFakeWaterRepo())

	session, err := svc.StartSession(context.Background(), "a@x.com", 55.0, 37.0)
	require.NoError(t, err)

	found, err := svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)

	// Closed sessions stay retrievable by id.
	_, err = svc.EndSessionByID(context.Background(), session.ID)
	require.NoError(t, err)
	found, err = svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.False(t, found.IsOpen())

	_, err = svc.GetSession(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_GetSessionsByFisher(t *testing.T) {
	svc := NewSessionService(newFakeSessionRepo(), newFakeWaterRepo())

	_, err := svc.StartSession(context.Background(), "a@x.com", 55.0, 37.0)
	require.NoError(t, err)
	_, err = svc.StartSession(context.Background(), "a@x.com", 60.0, 30.0)
	require.NoError(t, err)
	_, err = svc.EndSession(context.Background(), "a@x.com", 55.0, 37.0)
	require.NoError(t, err)

	sessions, err := svc.GetSessionsByFisher(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Len(t, sessions, 2) // open and closed both included
}
