package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/service"
)

// stubSessionService lets each test plug in just the calls it expects.
type stubSessionService struct {
	startFn       func(ctx context.Context, fisherEmail string, x, y float64) (domain.Session, error)
	endFn         func(ctx context.Context, fisherEmail string, x, y float64) (domain.Session, error)
	endByIDFn     func(ctx context.Context, id uint) (domain.Session, error)
	getFn         func(ctx context.Context, id uint) (domain.Session, error)
	getByFisherFn func(ctx context.Context, email string) ([]domain.Session, error)
}

func (s *stubSessionService) StartSession(ctx context.Context, fisherEmail string, x, y float64) (domain.Session, error) {
	return s.startFn(ctx, fisherEmail, x, y)
}

func (s *stubSessionService) EndSession(ctx context.Context, fisherEmail string, x, y float64) (domain.Session, error) {
	return s.endFn(ctx, fisherEmail, x, y)
}

func (s *stubSessionService) EndSessionByID(ctx context.Context, id uint) (domain.Session, error) {
	return s.endByIDFn(ctx, id)
}

func (s *stubSessionService) GetSession(ctx context.Context, id uint) (domain.Session, error) {
	return s.getFn(ctx, id)
}

func (s *stubSessionService) GetSessionsByFisher(ctx context.Context, email string) ([]domain.Session, error) {
	return s.getByFisherFn(ctx, email)
}

type stubCatchService struct {
	addFn          func(ctx context.Context, sessionID, speciesID uint, weight float64) (domain.Catch, error)
	addWithPhotoFn func(ctx context.Context, sessionID, speciesID uint, weight float64, photo []byte) (domain.Catch, error)
	getBySessionFn func(ctx context.Context, sessionID uint) ([]domain.Catch, error)
}

func (s *stubCatchService) AddCatch(ctx context.Context, sessionID, speciesID uint, weight float64) (domain.Catch, error) {
	return s.addFn(ctx, sessionID, speciesID, weight)
}

func (s *stubCatchService) AddCatchWithPhoto(ctx context.Context, sessionID, speciesID uint, weight float64, photo []byte) (domain.Catch, error) {
	return s.addWithPhotoFn(ctx, sessionID, speciesID, weight, photo)
}

func (s *stubCatchService) GetCatchesBySession(ctx context.Context, sessionID uint) ([]domain.Catch, error) {
	return s.getBySessionFn(ctx, sessionID)
}

func newFishingRouter(sessions *stubSessionService, catches *stubCatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewFishingHandler(sessions, catches)

	router := gin.New()
	group := router.Group("/api/fishing")
	group.POST("/start", h.HandleStartFishing)
	group.POST("/end", h.HandleEndFishing)
	group.POST("/end/:sessionID", h.HandleEndFishingByID)
	group.POST("/add-caught-fish", h.HandleAddCaughtFish)
	group.GET("/:sessionID", h.HandleGetFishing)
	group.GET("/fisher/:email", h.HandleGetFishingsByFisher)

	return router
}

func TestHandleStartFishing(t *testing.T) {
	sessions := &stubSessionService{
		startFn: func(_ context.Context, fisherEmail string, x, y float64) (domain.Session, error) {
			return domain.Session{
				ID:          1,
				FisherEmail: fisherEmail,
				WaterID:     domain.DeriveWaterID(x, y),
				StartTime:   time.Now(),
			}, nil
		},
	}
	router := newFishingRouter(sessions, &stubCatchService{})

	body := `{"fisher_email":"a@x.com","water":{"x":55.7,"y":37.6}}`
	req := httptest.NewRequest(http.MethodPost, "/api/fishing/start", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got domain.Session
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "a@x.com", got.FisherEmail)
	assert.Equal(t, domain.DeriveWaterID(55.7, 37.6), got.WaterID)
}

func TestHandleStartFishing_Conflict(t *testing.T) {
	sessions := &stubSessionService{
		startFn: func(_ context.Context, _ string, _, _ float64) (domain.Session, error) {
			return domain.Session{}, service.ErrSessionAlreadyOpen
		},
	}
	router := newFishingRouter(sessions, &stubCatchService{})

	body := `{"fisher_email":"a@x.com","water":{"x":55.7,"y":37.6}}`
	req := httptest.NewRequest(http.MethodPost, "/api/fishing/start", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHandleStartFishing_InvalidEmail(t *testing.T) {
	router := newFishingRouter(&stubSessionService{}, &stubCatchService{})

	body := `{"fisher_email":"not-an-email","water":{"x":55.7,"y":37.6}}`
	req := httptest.NewRequest(http.MethodPost, "/api/fishing/start", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleEndFishing_NotFound(t *testing.T) {
	sessions := &stubSessionService{
		endFn: func(_ context.Context, _ string, _, _ float64) (domain.Session, error) {
			return domain.Session{}, service.ErrSessionNotFound
		},
	}
	router := newFishingRouter(sessions, &stubCatchService{})

	body := `{"fisher_email":"a@x.com","water":{"x":55.7,"y":37.6}}`
	req := httptest.NewRequest(http.MethodPost, "/api/fishing/end", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleEndFishingByID(t *testing.T) {
	now := time.Now()
	sessions := &stubSessionService{
		endByIDFn: func(_ context.Context, id uint) (domain.Session, error) {
			return domain.Session{ID: id, EndTime: &now}, nil
		},
	}
	router := newFishingRouter(sessions, &stubCatchService{})

	req := httptest.NewRequest(http.MethodPost, "/api/fishing/end/7", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got domain.Session
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, uint(7), got.ID)
	assert.NotNil(t, got.EndTime)
}

func TestHandleEndFishingByID_BadID(t *testing.T) {
	router := newFishingRouter(&stubSessionService{}, &stubCatchService{})

	req := httptest.NewRequest(http.MethodPost, "/api/fishing/end/abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleAddCaughtFish_SessionClosed(t *testing.T) {
	catches := &stubCatchService{
		addFn: func(_ context.Context, _, _ uint, _ float64) (domain.Catch, error) {
			return domain.Catch{}, service.ErrSessionClosed
		},
	}
	router := newFishingRouter(&stubSessionService{}, catches)

	body := `{"fishing_id":1,"fish_id":2,"weight":1.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/fishing/add-caught-fish", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHandleAddCaughtFish_SpeciesNotFound(t *testing.T) {
	catches := &stubCatchService{
		addFn: func(_ context.Context, _, _ uint, _ float64) (domain.Catch, error) {
			return domain.Catch{}, service.ErrSpeciesNotFound
		},
	}
	router := newFishingRouter(&stubSessionService{}, catches)

	body := `{"fishing_id":1,"fish_id":42,"weight":1.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/fishing/add-caught-fish", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleGetFishingsByFisher(t *testing.T) {
	sessions := &stubSessionService{
		getByFisherFn: func(_ context.Context, email string) ([]domain.Session, error) {
			return []domain.Session{
				{ID: 1, FisherEmail: email},
				{ID: 2, FisherEmail: email},
			}, nil
		},
	}
	router := newFishingRouter(sessions, &stubCatchService{})

	req := httptest.NewRequest(http.MethodGet, "/api/fishing/fisher/a@x.com", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got []domain.Session
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
