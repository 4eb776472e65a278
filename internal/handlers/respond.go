package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forcefocus/api/internal/middleware"
	"forcefocus/api/internal/repository"
)

// respondError maps the store error taxonomy onto stable machine codes; the
// detail field carries free text and clients must not match on it. Anything
// unrecognized is reported as the store being unavailable.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	var verr *repository.ValidationError

	switch {
	case errors.Is(err, repository.ErrInvalidIdentifier):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_identifier", "detail": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "detail": verr.Reason})
	case errors.Is(err, repository.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "detail": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "detail": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store_unavailable"})
	}
}

func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": detail})
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
