package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fishmasters/fishmasters-api/internal/api/handler/v1/request"
	"github.com/fishmasters/fishmasters-api/internal/api/handler/v1/response"
	"github.com/fishmasters/fishmasters-api/internal/domain"
)

type SpeciesService interface {
	CreateSpecies(ctx context.Context, name string, avgWeight float64) (domain.Species, error)
	ListSpecies(ctx context.Context) ([]domain.Species, error)
}

// FishHandler serves the species catalog.
type FishHandler struct {
	svc SpeciesService
}

func NewFishHandler(svc SpeciesService) *FishHandler {
	return &FishHandler{
		svc: svc,
	}
}

// HandleCreateFish godoc
// @Summary      Add a fish species to the catalog
// @Tags         fish
// @Produce      json
// @Param        request   body      request.CreateSpeciesRequest true "request body"
// @Success      201      {object}   domain.Species
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/fish/create [post]
func (h *FishHandler) HandleCreateFish(ctx *gin.Context) {
	var req request.CreateSpeciesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	species, err := h.svc.CreateSpecies(ctx.Request.Context(), req.Name, req.AvgWeight)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateFish -> h.svc.CreateSpecies -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, species)
}

// HandleGetAllFish godoc
// @Summary      List the fish species catalog
// @Tags         fish
// @Produce      json
// @Success      200   {array}    domain.Species
// @Failure      500   {object}   response.Err
// @Router       /api/fish/all [get]
func (h *FishHandler) HandleGetAllFish(ctx *gin.Context) {
	species, err := h.svc.ListSpecies(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAllFish -> h.svc.ListSpecies -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, species)
}
