package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"forcefocus/api/internal/repository"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "invalid identifier", err: repository.ErrInvalidIdentifier, wantCode: http.StatusBadRequest, wantBody: "invalid_identifier"},
		{name: "validation", err: &repository.ValidationError{Reason: "end_time must be after start_time"}, wantCode: http.StatusBadRequest, wantBody: "validation_failed"},
		{name: "forbidden", err: repository.ErrForbidden, wantCode: http.StatusForbidden, wantBody: "forbidden"},
		{name: "not found", err: repository.ErrNotFound, wantCode: http.StatusNotFound, wantBody: "not_found"},
		{name: "driver error", err: errors.New("connection reset"), wantCode: http.StatusInternalServerError, wantBody: "store_unavailable"},
	}

	h := HandlerSet{log: zerolog.Nop()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/probe", nil)

			h.respondError(c, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRespondErrorWrappedValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := HandlerSet{log: zerolog.Nop()}
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/probe", nil)

	h.respondError(c, &repository.ValidationError{Reason: "interruption_count must be >= 0"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "interruption_count")
}
