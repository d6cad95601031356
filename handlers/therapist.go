package handlers

import (
	"net/http"
	"strconv"

	"mindwell/services/presence"
	"mindwell/services/therapist"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TherapistHandler exposes profile browsing and the online signal.
type TherapistHandler struct {
	Service  therapist.TherapistService
	Presence presence.Service
}

func NewTherapistHandler(svc therapist.TherapistService, pres presence.Service) *TherapistHandler {
	return &TherapistHandler{Service: svc, Presence: pres}
}

// ListTherapists returns a page of browsable profiles.
func (h *TherapistHandler) ListTherapists(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	therapists, err := h.Service.List(c.Request.Context(), limit, offset)
	if err != nil {
		utils.GetLogger().Error("Failed to list therapists", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list therapists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapists": therapists})
}

// GetTherapist returns a single profile.
func (h *TherapistHandler) GetTherapist(c *gin.Context) {
	id := c.Param("id")
	t, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Therapist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapist": t})
}

// GetPresence reports whether the therapist is currently online.
func (h *TherapistHandler) GetPresence(c *gin.Context) {
	id := c.Param("id")
	online, err := h.Presence.IsOnline(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("Failed to check presence", zap.String("therapistID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check presence"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapistId": id, "online": online})
}

// Heartbeat records a presence heartbeat for the authenticated therapist.
func (h *TherapistHandler) Heartbeat(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Therapist not authenticated"})
		return
	}
	if err := h.Presence.Heartbeat(c.Request.Context(), therapistID); err != nil {
		utils.GetLogger().Error("Failed to record heartbeat", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record heartbeat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapistId": therapistID, "online": true})
}
