package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mastermind-backend/internal/apperror"
	"github.com/rocketscienceinc/mastermind-backend/internal/entity"
)

type fakeUserService struct {
	users map[string]*entity.User
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: make(map[string]*entity.User)}
}

func (that *fakeUserService) SaveUser(_ context.Context, user *entity.User) error {
	that.users[user.Email] = user
	return nil
}

func (that *fakeUserService) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := that.users[email]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

type fakeAuthService struct{}

func (fakeAuthService) GenerateToken(email string) (string, error) {
	return "token-for-" + email, nil
}

func newLoginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	t.Run("Registers a new email and returns a token", func(t *testing.T) {
		// Given: a login handler with an empty user store
		users := newFakeUserService()
		handler := NewAuth(logger, users, fakeAuthService{})
		ctx, rec := newLoginContext(t, `{"email":"player@example.com"}`)

		// When: logging in with a fresh email
		err := handler.Login(ctx)

		// Then: the user is saved and a token is issued
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, users.users, "player@example.com")

		var resp loginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "token-for-player@example.com", resp.Token)
	})

	t.Run("Existing email is not saved twice", func(t *testing.T) {
		// Given: a store that already knows the email
		users := newFakeUserService()
		users.users["player@example.com"] = &entity.User{Email: "player@example.com"}
		handler := NewAuth(logger, users, fakeAuthService{})
		ctx, rec := newLoginContext(t, `{"email":"player@example.com"}`)

		// When: logging in again
		err := handler.Login(ctx)

		// Then: the login still succeeds
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing email is a bad request", func(t *testing.T) {
		handler := NewAuth(logger, newFakeUserService(), fakeAuthService{})
		ctx, rec := newLoginContext(t, `{}`)

		err := handler.Login(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
