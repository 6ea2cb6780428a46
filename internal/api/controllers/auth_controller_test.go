package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exodus/internal/models/db_models"
	"exodus/internal/models/request_models"
	"exodus/pkg/utils"
)

type fakeAuthService struct {
	user   *db_models.User
	token  string
	err    error
	claims *utils.Claims
}

func (f *fakeAuthService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, string, error) {
	return f.user, f.token, f.err
}

func (f *fakeAuthService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, string, error) {
	return f.user, f.token, f.err
}

func (f *fakeAuthService) Check(token string) (*utils.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.claims != nil {
		return f.claims, nil
	}
	return nil, utils.ErrInvalidToken
}

func newAuthRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAuthController(svc)
	r.POST("/api/auth/signup", ctrl.Signup)
	r.POST("/api/auth/login", ctrl.Login)
	r.GET("/api/auth/logout", ctrl.Logout)
	r.GET("/api/auth/check", ctrl.Check)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignup_CreatedWithoutPasswordInBody(t *testing.T) {
	user := &db_models.User{
		Name:           "Ann",
		Email:          "ann@x.com",
		PasswordHash:   "$2a$10$secret-hash",
		BitcoinAddress: "tb1qpayout",
	}
	user.ID = 1
	r := newAuthRouter(&fakeAuthService{user: user, token: "session-token"})

	w := doJSON(r, http.MethodPost, "/api/auth/signup",
		`{"name":"Ann","email":"ann@x.com","password":"pw123"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"ann@x.com"`)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret-hash")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "session-token", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestSignup_ShortNameRejected(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := doJSON(r, http.MethodPost, "/api/auth/signup",
		`{"name":"Al","email":"al@x.com","password":"pw123"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"errors"`)
}

func TestSignup_DuplicateEmailIs422(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{err: utils.ErrEmailAlreadyExists})

	w := doJSON(r, http.MethodPost, "/api/auth/signup",
		`{"name":"Ann","email":"ann@x.com","password":"pw123"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "E-mail already in use")
}

func TestLogin_BadCredentialsGenericMessage(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{err: utils.ErrInvalidCredentials})

	w := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"ann@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Email or password incorrect!")
}

func TestCheck_MissingCookie(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := doJSON(r, http.MethodGet, "/api/auth/check", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided.")
}

func TestCheck_ValidCookie(t *testing.T) {
	claims := &utils.Claims{UserID: 7, Email: "ann@x.com", Name: "Ann"}
	r := newAuthRouter(&fakeAuthService{claims: claims})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "session-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ann@x.com"`)
}

func TestCheck_RejectedToken(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{err: utils.ErrInvalidToken})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "stale-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestLogout_ClearsCookie(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := doJSON(r, http.MethodGet, "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
