package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fishmasters/fishmasters-api/internal/api/handler/v1/request"
	"github.com/fishmasters/fishmasters-api/internal/api/handler/v1/response"
	"github.com/fishmasters/fishmasters-api/internal/config"
	"github.com/fishmasters/fishmasters-api/internal/domain"
	"github.com/fishmasters/fishmasters-api/internal/pkg/jwthelper"
	"github.com/fishmasters/fishmasters-api/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, fisher domain.Fisher) (domain.Fisher, error)
	Login(ctx context.Context, email, password string) (domain.Fisher, error)
	UpdatePhoto(ctx context.Context, email string, photo []byte) (domain.Fisher, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new fisher
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   domain.Fisher
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fisher, err := h.svc.Register(ctx.Request.Context(), domain.Fisher{
		Email:    req.Email,
		Name:     req.Name,
		Surname:  req.Surname,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrFisherExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrFisherExists))
			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, fisher)
}

// HandleLogin godoc
// @Summary      Login an existing fisher
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fisher, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrFisherNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), fisher.Email, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:  token,
		Fisher: fisher,
	})
}

// HandleUpdatePhoto godoc
// @Summary      Update fisher profile photo
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        email    formData   string true  "fisher email"
// @Param        photo    formData   file   true  "profile photo"
// @Success      200      {object}   domain.Fisher
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/update-photo [post]
func (h *AuthHandler) HandleUpdatePhoto(ctx *gin.Context) {
	email := ctx.PostForm("email")
	if email == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("email is required")))
		return
	}

	photo, err := readFormFile(ctx, "photo")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fisher, err := h.svc.UpdatePhoto(ctx.Request.Context(), email, photo)
	if err != nil {
		if errors.Is(err, service.ErrFisherNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("fisher", "email", email))
			return
		}

		err = fmt.Errorf("v1.HandleUpdatePhoto -> h.svc.UpdatePhoto -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, fisher)
}

// readFormFile returns the named multipart file's bytes, or nil when the
// part is absent. Absence is not an error; unreadable bytes are.
func readFormFile(ctx *gin.Context, name string) ([]byte, error) {
	header, err := ctx.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("header.Open -> %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll -> %w", err)
	}

	return data, nil
}
