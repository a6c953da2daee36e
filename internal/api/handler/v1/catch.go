package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fishmasters/fishmasters-api/internal/api/handler/v1/request"
	"github.com/fishmasters/fishmasters-api/internal/api/handler/v1/response"
	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/service"
)

type CatchService interface {
	AddCatch(ctx context.Context, sessionID, speciesID uint, weight float64) (domain.Catch, error)
	AddCatchWithPhoto(ctx context.Context, sessionID, speciesID uint, weight float64, photo []byte) (domain.Catch, error)
	GetCatchesBySession(ctx context.Context, sessionID uint) ([]domain.Catch, error)
}

type CatchHandler struct {
	svc CatchService
}

func NewCatchHandler(svc CatchService) *CatchHandler {
	return &CatchHandler{
		svc: svc,
	}
}

// HandleCreateCaughtFish godoc
// @Summary      Create a caught fish with an optional photo
// @Description  A catch submitted with a photo is a verified catch and raises the fisher's score by one
// @Tags         caught-fish
// @Accept       multipart/form-data
// @Produce      json
// @Param        data     formData   string true  "catch payload (request.AddCaughtFishRequest JSON)"
// @Param        photo    formData   file   false "photo of the catch"
// @Success      200      {object}   domain.Catch
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/caught-fish [post]
func (h *CatchHandler) HandleCreateCaughtFish(ctx *gin.Context) {
	data := ctx.PostForm("data")
	if data == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("data part is required")))
		return
	}

	var req request.AddCaughtFishRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	photo, err := readFormFile(ctx, "photo")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	catch, err := h.svc.AddCatchWithPhoto(ctx.Request.Context(), req.FishingID, req.FishID, req.Weight, photo)
	if err != nil {
		renderCatchErr(ctx, req.FishingID, req.FishID, err, "v1.HandleCreateCaughtFish -> h.svc.AddCatchWithPhoto")
		return
	}

	ctx.JSON(http.StatusOK, catch)
}

// HandleGetCaughtFish godoc
// @Summary      Get caught fishes by fishing session id
// @Description  Returns an empty list when the session has no catches
// @Tags         caught-fish
// @Produce      json
// @Param        sessionID  path      int true "session id"
// @Success      200       {array}    domain.Catch
// @Failure      400       {object}   response.Err
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Router       /api/fish/caught/{sessionID} [get]
func (h *CatchHandler) HandleGetCaughtFish(ctx *gin.Context) {
	sessionID, ok := parseUintParam(ctx, "sessionID")
	if !ok {
		return
	}

	catches, err := h.svc.GetCatchesBySession(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("fishing session", "id", sessionID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCaughtFish -> h.svc.GetCatchesBySession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, catches)
}
