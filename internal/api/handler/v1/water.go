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

type WaterService interface {
	CreateWater(ctx context.Context, x, y float64) (domain.Water, error)
	GetWaterByID(ctx context.Context, id int64) (domain.Water, error)
	GetAllWaters(ctx context.Context) ([]domain.Water, error)
}

type WaterHandler struct {
	svc WaterService
}

func NewWaterHandler(svc WaterService) *WaterHandler {
	return &WaterHandler{
		svc: svc,
	}
}

// HandleCreateWater godoc
// @Summary      Create a new water point
// @Description  The water id is derived from the coordinates; repeating the call returns the existing point
// @Tags         water
// @Produce      json
// @Param        request   body      request.CreateWaterRequest true "request body"
// @Success      200      {object}   domain.Water
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/water/create [post]
func (h *WaterHandler) HandleCreateWater(ctx *gin.Context) {
	var req request.CreateWaterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	water, err := h.svc.CreateWater(ctx.Request.Context(), *req.X, *req.Y)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateWater -> h.svc.CreateWater -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, water)
}

// HandleGetWater godoc
// @Summary      Get a water point by id
// @Tags         water
// @Produce      json
// @Param        waterID  path      int true "water id"
// @Success      200     {object}   domain.Water
// @Failure      400     {object}   response.Err
// @Failure      404     {object}   response.Err
// @Failure      500     {object}   response.Err
// @Router       /api/water/{waterID} [get]
func (h *WaterHandler) HandleGetWater(ctx *gin.Context) {
	raw := ctx.Param("waterID")
	waterID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid waterID (%v)", raw)))
		return
	}

	water, err := h.svc.GetWaterByID(ctx.Request.Context(), waterID)
	if err != nil {
		if errors.Is(err, service.ErrWaterNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("water", "id", waterID))
			return
		}

		err = fmt.Errorf("v1.HandleGetWater -> h.svc.GetWaterByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, water)
}

// HandleGetAllWaters godoc
// @Summary      Get all water points
// @Tags         water
// @Produce      json
// @Success      200   {array}    domain.Water
// @Failure      500   {object}   response.Err
// @Router       /api/water/all [get]
func (h *WaterHandler) HandleGetAllWaters(ctx *gin.Context) {
	waters, err := h.svc.GetAllWaters(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAllWaters -> h.svc.GetAllWaters -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, waters)
}
