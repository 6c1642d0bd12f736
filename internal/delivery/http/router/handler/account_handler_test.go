package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounts/internal/delivery/http/validator"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase returns canned outputs.
type stubAccountUsecase struct {
	registerOut *usecase.RegisterOutput
	registerErr error
	loginOut    *usecase.LoginOutput
	loginErr    error
	listOut     *usecase.ListOutput
	listErr     error
}

func (s *stubAccountUsecase) Register(context.Context, *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerOut, s.registerErr
}

func (s *stubAccountUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOut, s.loginErr
}

func (s *stubAccountUsecase) ListAll(context.Context) (*usecase.ListOutput, error) {
	return s.listOut, s.listErr
}

func newHandlerContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAccountHandler_Register(t *testing.T) {
	uc := &stubAccountUsecase{
		registerOut: &usecase.RegisterOutput{
			User: usecase.PublicUser{
				ID:        1,
				Username:  "alice",
				Email:     "alice@example.com",
				CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	h := NewAccountHandler(uc, discardLogger())

	c, rec := newHandlerContext(t, http.MethodPost, "/api/users/register",
		`{"username":"alice","email":"alice@example.com","password":"password123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body["message"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Contains(t, user, "createdAt")

	// The digest never appears in a response, under any field name.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestAccountHandler_RegisterMissingFields(t *testing.T) {
	h := NewAccountHandler(&stubAccountUsecase{}, discardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/api/users/register",
		`{"username":"alice"}`)

	err := h.Register(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestAccountHandler_RegisterMalformedBody(t *testing.T) {
	h := NewAccountHandler(&stubAccountUsecase{}, discardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/api/users/register", `{not json`)

	err := h.Register(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestAccountHandler_Login(t *testing.T) {
	uc := &stubAccountUsecase{
		loginOut: &usecase.LoginOutput{
			Token: "signed-token",
			User:  usecase.SessionUser{ID: 1, Username: "alice", Email: "alice@example.com"},
		},
	}
	h := NewAccountHandler(uc, discardLogger())

	c, rec := newHandlerContext(t, http.MethodPost, "/api/users/login",
		`{"email":"alice@example.com","password":"password123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "signed-token", body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "createdAt")
}

func TestAccountHandler_LoginInvalidCredentials(t *testing.T) {
	h := NewAccountHandler(&stubAccountUsecase{
		loginErr: domainerrors.ErrInvalidCredentials,
	}, discardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/api/users/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	err := h.Login(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestAccountHandler_List(t *testing.T) {
	uc := &stubAccountUsecase{
		listOut: &usecase.ListOutput{
			Count: 2,
			Users: []usecase.PublicUser{
				{ID: 2, Username: "bob", Email: "bob@example.com"},
				{ID: 1, Username: "alice", Email: "alice@example.com"},
			},
		},
	}
	h := NewAccountHandler(uc, discardLogger())

	c, rec := newHandlerContext(t, http.MethodGet, "/api/users", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["count"])

	users, ok := body["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 2)

	first, ok := users[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bob", first["username"])

	assert.NotContains(t, rec.Body.String(), "password")
}
