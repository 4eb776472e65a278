package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"forcefocus/api/internal/models"
)

type settingsPatchRequest struct {
	Settings map[string]any `json:"settings" binding:"required"`
}

type fcmTokenAddRequest struct {
	Token string `json:"token" binding:"required"`
}

// fcmTokenDeleteRequest accepts both field names the clients have used.
// No token at all means "clear every registered token".
type fcmTokenDeleteRequest struct {
	Token    *string `json:"token"`
	FCMToken *string `json:"fcm_token"`
}

func (r fcmTokenDeleteRequest) resolvedToken() *string {
	if r.Token != nil {
		return r.Token
	}
	return r.FCMToken
}

type blockedAppRequest struct {
	AppName string `json:"app_name" binding:"required"`
}

type userResponse struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	CreatedAt   time.Time      `json:"created_at"`
	LastLoginAt *time.Time     `json:"last_login_at"`
	Settings    map[string]any `json:"settings"`
	FCMTokens   []string       `json:"fcm_tokens"`
	BlockedApps []string       `json:"blocked_apps"`
}

func toUserResponse(u models.User) userResponse {
	settings := u.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	tokens := u.FCMTokens
	if tokens == nil {
		tokens = []string{}
	}
	apps := u.BlockedApps
	if apps == nil {
		apps = []string{}
	}
	return userResponse{
		ID:          u.IDString(),
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
		Settings:    settings,
		FCMTokens:   tokens,
		BlockedApps: apps,
	}
}

func (h HandlerSet) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h HandlerSet) UpdateMySettings(c *gin.Context) {
	var req settingsPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.users.UpdateSettings(c.Request.Context(), currentUserID(c), req.Settings)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h HandlerSet) AddMyFCMToken(c *gin.Context) {
	var req fcmTokenAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.users.AddFCMToken(c.Request.Context(), currentUserID(c), req.Token)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h HandlerSet) RemoveMyFCMToken(c *gin.Context) {
	// DELETE may arrive with no body at all; that selects the wildcard clear.
	var req fcmTokenDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err.Error())
		return
	}

	if _, err := h.users.RemoveFCMToken(c.Request.Context(), currentUserID(c), req.resolvedToken()); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "FCM token removed"})
}

func (h HandlerSet) AddMyBlockedApp(c *gin.Context) {
	var req blockedAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.users.AddBlockedApp(c.Request.Context(), currentUserID(c), req.AppName)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h HandlerSet) RemoveMyBlockedApp(c *gin.Context) {
	var req blockedAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.users.RemoveBlockedApp(c.Request.Context(), currentUserID(c), req.AppName)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}
