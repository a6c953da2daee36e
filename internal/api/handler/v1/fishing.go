package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fishmasters/fishmasters-api/internal/api/handler/v1/request"
	"github.com/fishmasters/fishmasters-api/internal/api/handler/v1/response"
	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/service"
)

type SessionService interface {
	StartSession(ctx context.Context, fisherEmail string, x, y float64) (domain.Session, error)
	EndSession(ctx context.Context, fisherEmail string, x, y float64) (domain.Session, error)
	EndSessionByID(ctx context.Context, id uint) (domain.Session, error)
	GetSession(ctx context.Context, id uint) (domain.Session, error)
	GetSessionsByFisher(ctx context.Context, email string) ([]domain.Session, error)
}

type FishingHandler struct {
	svc      SessionService
	catchSvc CatchService
}

func NewFishingHandler(svc SessionService, catchSvc CatchService) *FishingHandler {
	return &FishingHandler{
		svc:      svc,
		catchSvc: catchSvc,
	}
}

// HandleStartFishing godoc
// @Summary      Start a new fishing session
// @Description  Opens a session at the water point, creating the point on first reference
// @Tags         fishing
// @Produce      json
// @Param        request   body      request.FishingEventRequest true "request body"
// @Success      200      {object}   domain.Session
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/fishing/start [post]
func (h *FishingHandler) HandleStartFishing(ctx *gin.Context) {
	var req request.FishingEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	session, err := h.svc.StartSession(ctx.Request.Context(), req.FisherEmail, req.Water.X, req.Water.Y)
	if err != nil {
		if errors.Is(err, service.ErrSessionAlreadyOpen) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrSessionAlreadyOpen))
			return
		}

		err = fmt.Errorf("v1.HandleStartFishing -> h.svc.StartSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// HandleEndFishing godoc
// @Summary      End the current fishing session
// @Description  Closes the fisher's open session at the given water point
// @Tags         fishing
// @Produce      json
// @Param        request   body      request.FishingEventRequest true "request body"
// @Success      200      {object}   domain.Session
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/fishing/end [post]
func (h *FishingHandler) HandleEndFishing(ctx *gin.Context) {
	var req request.FishingEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	session, err := h.svc.EndSession(ctx.Request.Context(), req.FisherEmail, req.Water.X, req.Water.Y)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("open fishing session", "fisher", req.FisherEmail))
			return
		}

		err = fmt.Errorf("v1.HandleEndFishing -> h.svc.EndSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// HandleEndFishingByID godoc
// @Summary      End a fishing session by id
// @Tags         fishing
// @Produce      json
// @Param        sessionID  path      int true "session id"
// @Success      200       {object}   domain.Session
// @Failure      400       {object}   response.Err
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Router       /api/fishing/end/{sessionID} [post]
func (h *FishingHandler) HandleEndFishingByID(ctx *gin.Context) {
	sessionID, ok := parseUintParam(ctx, "sessionID")
	if !ok {
		return
	}

	session, err := h.svc.EndSessionByID(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("open fishing session", "id", sessionID))
			return
		}

		err = fmt.Errorf("v1.HandleEndFishingByID -> h.svc.EndSessionByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// HandleAddCaughtFish godoc
// @Summary      Add a caught fish to an open fishing session
// @Description  Records a catch without a photo; the fisher's score is unaffected
// @Tags         fishing
// @Produce      json
// @Param        request   body      request.AddCaughtFishRequest true "request body"
// @Success      200      {object}   domain.Catch
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/fishing/add-caught-fish [post]
func (h *FishingHandler) HandleAddCaughtFish(ctx *gin.Context) {
	var req request.AddCaughtFishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	catch, err := h.catchSvc.AddCatch(ctx.Request.Context(), req.FishingID, req.FishID, req.Weight)
	if err != nil {
		renderCatchErr(ctx, req.FishingID, req.FishID, err, "v1.HandleAddCaughtFish -> h.catchSvc.AddCatch")
		return
	}

	ctx.JSON(http.StatusOK, catch)
}

// HandleGetFishing godoc
// @Summary      Get a fishing session by id
// @Tags         fishing
// @Produce      json
// @Param        sessionID  path      int true "session id"
// @Success      200       {object}   domain.Session
// @Failure      400       {object}   response.Err
// @Failure      404       {object}   response.Err
// @Failure      500       {object}   response.Err
// @Router       /api/fishing/{sessionID} [get]
func (h *FishingHandler) HandleGetFishing(ctx *gin.Context) {
	sessionID, ok := parseUintParam(ctx, "sessionID")
	if !ok {
		return
	}

	session, err := h.svc.GetSession(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("fishing session", "id", sessionID))
			return
		}

		err = fmt.Errorf("v1.HandleGetFishing -> h.svc.GetSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// HandleGetFishingsByFisher godoc
// @Summary      Get all fishing sessions of a fisher
// @Tags         fishing
// @Produce      json
// @Param        email   path      string true "fisher email"
// @Success      200    {array}    domain.Session
// @Failure      500    {object}   response.Err
// @Router       /api/fishing/fisher/{email} [get]
func (h *FishingHandler) HandleGetFishingsByFisher(ctx *gin.Context) {
	email := ctx.Param("email")

	sessions, err := h.svc.GetSessionsByFisher(ctx.Request.Context(), email)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetFishingsByFisher -> h.svc.GetSessionsByFisher -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sessions)
}

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %v (%v)", name, raw)))
		return 0, false
	}

	return uint(value), true
}

func renderCatchErr(ctx *gin.Context, sessionID, speciesID uint, err error, op string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.RenderErr(ctx, response.ErrNotFound("fishing session", "id", sessionID))
	case errors.Is(err, service.ErrSessionClosed):
		response.RenderErr(ctx, response.ErrUnprocessableEntity(service.ErrSessionClosed))
	case errors.Is(err, service.ErrSpeciesNotFound):
		response.RenderErr(ctx, response.ErrNotFound("fish species", "id", speciesID))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%v -> %w", op, err)))
	}
}
