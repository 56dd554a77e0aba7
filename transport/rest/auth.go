package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/mastermind-backend/internal/apperror"
	"github.com/rocketscienceinc/mastermind-backend/internal/entity"
)

type userService interface {
	SaveUser(ctx context.Context, user *entity.User) error
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

type authService interface {
	GenerateToken(email string) (string, error)
}

type AuthHandler interface {
	Login(ctx echo.Context) error
}

type authHandler struct {
	logger *slog.Logger

	users userService
	auth  authService
}

func NewAuth(logger *slog.Logger, users userService, auth authService) AuthHandler {
	return &authHandler{
		logger: logger,
		users:  users,
		auth:   auth,
	}
}

type loginRequest struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login registers the email on first sight and returns a session token.
func (that *authHandler) Login(ctx echo.Context) error {
	log := that.logger.With("method", "Login")

	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.String(http.StatusBadRequest, "invalid request body")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return ctx.String(http.StatusBadRequest, "email is required")
	}

	reqCtx := ctx.Request().Context()

	_, err := that.users.GetUserByEmail(reqCtx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		if err = that.users.SaveUser(reqCtx, &entity.User{Email: email}); err != nil {
			log.Error("failed to save user", "error", err)
			return ctx.String(http.StatusInternalServerError, "Internal Server Error")
		}
	} else if err != nil {
		log.Error("failed to look up user", "error", err)
		return ctx.String(http.StatusInternalServerError, "Internal Server Error")
	}

	token, err := that.auth.GenerateToken(email)
	if err != nil {
		log.Error("failed to generate token", "error", err)
		return ctx.String(http.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(http.StatusOK, loginResponse{Token: token})
}
