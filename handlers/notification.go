package handlers

import (
	"net/http"

	"mindwell/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler registers FCM device tokens for push delivery.
type NotificationHandler struct {
	Tokens notification.TokenStore
}

func NewNotificationHandler(tokens notification.TokenStore) *NotificationHandler {
	return &NotificationHandler{Tokens: tokens}
}

// RegisterToken stores the caller's current device token.
func (h *NotificationHandler) RegisterToken(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	var input struct {
		Role  string `json:"role" binding:"required"`
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Role != notification.RoleUser && input.Role != notification.RoleTherapist {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	if err := h.Tokens.Register(c.Request.Context(), input.Role, id, input.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register token", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"registered": true})
}
