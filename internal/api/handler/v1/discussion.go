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

type DiscussionService interface {
	CreateDiscussion(ctx context.Context, waterID int64) (domain.Discussion, error)
	CreateMessage(ctx context.Context, discussionID uint, content, fisherEmail string) (domain.Message, error)
	GetMessages(ctx context.Context, discussionID uint) ([]domain.Message, error)
}

type DiscussionHandler struct {
	svc DiscussionService
}

func NewDiscussionHandler(svc DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{
		svc: svc,
	}
}

// HandleCreateDiscussion godoc
// @Summary      Create or fetch the discussion of a water point
// @Description  Idempotent; returns the existing thread id when one already exists
// @Tags         discussion
// @Produce      json
// @Param        waterID  path      int true "water id"
// @Success      200     {integer}  uint
// @Failure      400     {object}   response.Err
// @Failure      404     {object}   response.Err
// @Failure      500     {object}   response.Err
// @Router       /api/discussion/{waterID} [post]
func (h *DiscussionHandler) HandleCreateDiscussion(ctx *gin.Context) {
	raw := ctx.Param("waterID")
	waterID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid waterID (%v)", raw)))
		return
	}

	discussion, err := h.svc.CreateDiscussion(ctx.Request.Context(), waterID)
	if err != nil {
		if errors.Is(err, service.ErrWaterNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("water", "id", waterID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateDiscussion -> h.svc.CreateDiscussion -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, discussion.ID)
}

// HandleGetMessages godoc
// @Summary      Get all messages of a discussion
// @Tags         discussion
// @Produce      json
// @Param        discussionID  path      int true "discussion id"
// @Success      200          {array}    response.MessageResponse
// @Failure      400          {object}   response.Err
// @Failure      404          {object}   response.Err
// @Failure      500          {object}   response.Err
// @Router       /api/discussion/messages/{discussionID} [get]
func (h *DiscussionHandler) HandleGetMessages(ctx *gin.Context) {
	discussionID, ok := parseUintParam(ctx, "discussionID")
	if !ok {
		return
	}

	messages, err := h.svc.GetMessages(ctx.Request.Context(), discussionID)
	if err != nil {
		if errors.Is(err, service.ErrDiscussionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("discussion", "id", discussionID))
			return
		}

		err = fmt.Errorf("v1.HandleGetMessages -> h.svc.GetMessages -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessageResponses(messages))
}

// HandleCreateMessage godoc
// @Summary      Post a message in a discussion
// @Tags         discussion
// @Produce      json
// @Param        request   body      request.CreateMessageRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /api/discussion/messages/createMessage [post]
func (h *DiscussionHandler) HandleCreateMessage(ctx *gin.Context) {
	var req request.CreateMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	message, err := h.svc.CreateMessage(ctx.Request.Context(), req.DiscussionID, req.Content, req.FisherEmail)
	if err != nil {
		if errors.Is(err, service.ErrDiscussionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("discussion", "id", req.DiscussionID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateMessage -> h.svc.CreateMessage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessageResponse(message))
}
