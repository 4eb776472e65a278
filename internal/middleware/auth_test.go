package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forcefocus/api/internal/config"
	"forcefocus/api/internal/models"
	"forcefocus/api/internal/security"
)

type fakeUserFinder struct {
	users map[string]models.User
	err   error
}

func (f fakeUserFinder) GetByID(_ context.Context, userID string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	user, ok := f.users[userID]
	if !ok {
		return models.User{}, assert.AnError
	}
	return user, nil
}

func authTestRouter(t *testing.T, cfg *config.AppConfig, users UserFinder) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Auth(cfg, users))
	router.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
	})
	return router
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Security: config.SecurityConfig{JWTAccessSecret: "test-secret"},
	}
}

func TestAuthResolvesUser(t *testing.T) {
	cfg := testConfig()
	finder := fakeUserFinder{users: map[string]models.User{
		"user-1": {ID: "user-1", Email: "u@example.com"},
	}}

	token, err := security.GenerateAccessToken(cfg.Security.JWTAccessSecret, "user-1", "u@example.com", time.Minute)
	require.NoError(t, err)

	router := authTestRouter(t, cfg, finder)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestAuthMissingHeader(t *testing.T) {
	router := authTestRouter(t, testConfig(), fakeUserFinder{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_token")
}

func TestAuthMalformedToken(t *testing.T) {
	router := authTestRouter(t, testConfig(), fakeUserFinder{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_token")
}

func TestAuthUnknownUser(t *testing.T) {
	cfg := testConfig()
	token, err := security.GenerateAccessToken(cfg.Security.JWTAccessSecret, "ghost", "", time.Minute)
	require.NoError(t, err)

	router := authTestRouter(t, cfg, fakeUserFinder{users: map[string]models.User{}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_not_found")
}
