package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/service"
)

func newCatchRouter(svc *stubCatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewCatchHandler(svc)

	router := gin.New()
	router.POST("/api/caught-fish", h.HandleCreateCaughtFish)
	router.GET("/api/fish/caught/:sessionID", h.HandleGetCaughtFish)

	return router
}

func buildCatchForm(t *testing.T, data string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("data", data))
	if photo != nil {
		part, err := writer.CreateFormFile("photo", "catch.jpg")
		require.NoError(t, err)
		_, err = part.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestHandleCreateCaughtFish_WithPhoto(t *testing.T) {
	var gotPhoto []byte
	svc := &stubCatchService{
		addWithPhotoFn: func(_ context.Context, sessionID, speciesID uint, weight float64, photo []byte) (domain.Catch, error) {
			gotPhoto = photo
			return domain.Catch{
				ID:        1,
				SessionID: sessionID,
				SpeciesID: speciesID,
				Weight:    weight,
				Photo:     photo,
			}, nil
		},
	}
	router := newCatchRouter(svc)

	buf, contentType := buildCatchForm(t, `{"fishing_id":1,"fish_id":2,"weight":3.5}`, []byte{0xFF, 0xD8})
	req := httptest.NewRequest(http.MethodPost, "/api/caught-fish", buf)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []byte{0xFF, 0xD8}, gotPhoto)

	var got domain.Catch
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, uint(1), got.SessionID)
	assert.Equal(t, 3.5, got.Weight)
}

func TestHandleCreateCaughtFish_WithoutPhoto(t *testing.T) {
	svc := &stubCatchService{
		addWithPhotoFn: func(_ context.Context, sessionID, speciesID uint, weight float64, photo []byte) (domain.Catch, error) {
			// A missing photo part arrives as nil, not an error.
			assert.Nil(t, photo)
			return domain.Catch{SessionID: sessionID, SpeciesID: speciesID, Weight: weight}, nil
		},
	}
	router := newCatchRouter(svc)

	buf, contentType := buildCatchForm(t, `{"fishing_id":1,"fish_id":2,"weight":3.5}`, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/caught-fish", buf)
	req.Header.Set("Content-Type", contentType)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHandleCreateCaughtFish_BadData(t *testing.T) {
	router := newCatchRouter(&stubCatchService{})

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{{{`},
		{name: "missing ids", data: `{"weight":3.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, contentType := buildCatchForm(t, tt.data, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/caught-fish", buf)
			req.Header.Set("Content-Type", contentType)

			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestHandleCreateCaughtFish_MissingDataPart(t *testing.T) {
	router := newCatchRouter(&stubCatchService{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/caught-fish", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleGetCaughtFish(t *testing.T) {
	svc := &stubCatchService{
		getBySessionFn: func(_ context.Context, sessionID uint) ([]domain.Catch, error) {
			return []domain.Catch{{ID: 1, SessionID: sessionID}}, nil
		},
	}
	router := newCatchRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/fish/caught/5", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got []domain.Catch
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, uint(5), got[0].SessionID)
}

func TestHandleGetCaughtFish_EmptySession(t *testing.T) {
	svc := &stubCatchService{
		getBySessionFn: func(_ context.Context, _ uint) ([]domain.Catch, error) {
			return []domain.Catch{}, nil
		},
	}
	router := newCatchRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/fish/caught/5", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestHandleGetCaughtFish_SessionNotFound(t *testing.T) {
	svc := &stubCatchService{
		getBySessionFn: func(_ context.Context, _ uint) ([]domain.Catch, error) {
			return nil, service.ErrSessionNotFound
		},
	}
	router := newCatchRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/fish/caught/999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
