package handlers

import (
	"net/http"
	"strconv"

	"mindwell/services/journal"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JournalHandler exposes mood/journal entry CRUD for the authenticated user.
type JournalHandler struct {
	Service journal.JournalService
}

func NewJournalHandler(svc journal.JournalService) *JournalHandler {
	return &JournalHandler{Service: svc}
}

// CreateEntry records a new journal entry.
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	var input journal.EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	entry, err := h.Service.Create(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create entry", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// ListEntries returns the user's own entries, newest first.
func (h *JournalHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	entries, err := h.Service.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		utils.GetLogger().Error("Failed to list journal entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// UpdateEntry replaces the user-editable fields of an entry.
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	var input journal.EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	entry, err := h.Service.Update(c.Request.Context(), userID, c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update entry", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// DeleteEntry removes an entry owned by the user.
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	if err := h.Service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "failed to delete entry", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
