package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/server/middleware"
	"github.com/jonathan/interview-coach/internal/types"
)

func testAuthHandler(t *testing.T) (*AuthHandler, *UserService) {
	t.Helper()
	svc, _ := testUserService()
	return NewAuthHandler(svc, testJWTService("test-secret")), svc
}

func postJSON(handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_RegisterThenLogin(t *testing.T) {
	handler, _ := testAuthHandler(t)

	rec := postJSON(handler.Register, "/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&registered))
	require.NotNil(t, registered.User)
	assert.Equal(t, "alex@example.com", registered.User.Email)
	assert.NotEmpty(t, registered.Token)

	rec = postJSON(handler.Login, "/auth/login",
		`{"email":"alex@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var loggedIn types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&loggedIn))
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	handler, _ := testAuthHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing email", `{"name":"Alex","password":"hunter2hunter2"}`},
		{"invalid email", `{"name":"Alex","email":"not-an-email","password":"hunter2hunter2"}`},
		{"short password", `{"name":"Alex","email":"alex@example.com","password":"short"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(handler.Register, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestAuthHandler_RegisterDuplicateEmailConflicts(t *testing.T) {
	handler, _ := testAuthHandler(t)
	body := `{"name":"Alex","email":"alex@example.com","password":"hunter2hunter2"}`

	rec := postJSON(handler.Register, "/auth/register", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(handler.Register, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	handler, _ := testAuthHandler(t)
	postJSON(handler.Register, "/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"hunter2hunter2"}`)

	rec := postJSON(handler.Login, "/auth/login",
		`{"email":"alex@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	handler, svc := testAuthHandler(t)
	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/auth/password",
		strings.NewReader(`{"current_password":"hunter2hunter2","new_password":"brand-new-pass"}`))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey(), user.ID))
	rec := httptest.NewRecorder()
	handler.UpdatePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	loginRec := postJSON(handler.Login, "/auth/login",
		`{"email":"alex@example.com","password":"brand-new-pass"}`)
	assert.Equal(t, http.StatusOK, loginRec.Code)
}

func TestAuthHandler_UpdatePasswordRequiresAuthContext(t *testing.T) {
	handler, _ := testAuthHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/auth/password",
		strings.NewReader(`{"current_password":"a","new_password":"brand-new-pass"}`))
	rec := httptest.NewRecorder()
	handler.UpdatePassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_UpdatePasswordWrongCurrent(t *testing.T) {
	handler, svc := testAuthHandler(t)
	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/auth/password",
		strings.NewReader(`{"current_password":"wrong","new_password":"brand-new-pass"}`))
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey(), user.ID))
	rec := httptest.NewRecorder()
	handler.UpdatePassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWriteError_JSONShape(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusTeapot, "short and stout")

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "short and stout", body["error"])
}
