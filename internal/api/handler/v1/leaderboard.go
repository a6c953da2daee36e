package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fishmasters/fishmasters-api/internal/api/handler/v1/response"
	"github.com/fishmasters/fishmasters-api/internal/domain"
)

type LeaderboardService interface {
	GetTopFishers(ctx context.Context, count int) ([]domain.Fisher, error)
	GetAllFishers(ctx context.Context) ([]domain.Fisher, error)
}

type LeaderboardHandler struct {
	svc LeaderboardService
}

func NewLeaderboardHandler(svc LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		svc: svc,
	}
}

// HandleGetTopFishers godoc
// @Summary      Get the top fishers by score
// @Tags         leaderboard
// @Produce      json
// @Param        count   query      int false "number of fishers to return" default(10)
// @Success      200    {array}    domain.Fisher
// @Failure      400    {object}   response.Err
// @Failure      500    {object}   response.Err
// @Router       /api/leaderboard/top [get]
func (h *LeaderboardHandler) HandleGetTopFishers(ctx *gin.Context) {
	raw := ctx.DefaultQuery("count", "10")
	count, err := strconv.Atoi(raw)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid count (%v)", raw)))
		return
	}

	fishers, err := h.svc.GetTopFishers(ctx.Request.Context(), count)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTopFishers -> h.svc.GetTopFishers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, fishers)
}

// HandleGetAllFishers godoc
// @Summary      Get all fishers ordered by score
// @Tags         leaderboard
// @Produce      json
// @Success      200   {array}    domain.Fisher
// @Failure      500   {object}   response.Err
// @Router       /api/leaderboard/all [get]
func (h *LeaderboardHandler) HandleGetAllFishers(ctx *gin.Context) {
	fishers, err := h.svc.GetAllFishers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAllFishers -> h.svc.GetAllFishers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, fishers)
}
