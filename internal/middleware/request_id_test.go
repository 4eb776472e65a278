package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})
	return router
}

func TestRequestIDMinted(t *testing.T) {
	router := requestIDRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

	header := rec.Header().Get("X-Request-Id")
	require.NotEmpty(t, header)
	assert.Equal(t, header, rec.Body.String(), "context id and response header must agree")
}

func TestRequestIDHonorsCallerSupplied(t *testing.T) {
	router := requestIDRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Request-Id", "agent-supplied-id")
	router.ServeHTTP(rec, req)

	assert.Equal(t, "agent-supplied-id", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "agent-supplied-id", rec.Body.String())
}
