package handlers

import (
	"net/http"

	"mindwell/models"
	"mindwell/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Service scheduling.BookingSessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc scheduling.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// bookingErrorStatus maps validation failures to HTTP statuses. All of
// them are terminal at this boundary; the client decides what to do next.
func bookingErrorStatus(code string) int {
	switch code {
	case scheduling.CodeNoSlotSelected, scheduling.CodeMissingDateOrTime:
		return http.StatusBadRequest
	case scheduling.CodeStaleSlot, scheduling.CodeLeadTimeViolation, scheduling.CodeNotOnline:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) respondError(c *gin.Context, err error, fallback string) {
	if code := scheduling.ErrorCode(err); code != "" {
		c.JSON(bookingErrorStatus(code), gin.H{"error": err.Error(), "code": code})
		return
	}
	h.Logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
}

func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// StartSession creates a new booking session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	var input struct {
		TherapistID string `json:"therapistId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.StartSession(c.Request.Context(), userID, input.TherapistID)
	if err != nil {
		h.respondError(c, err, "failed to start booking session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": session.SessionID, "selection": session.Selection})
}

// SetDate updates the session's date and returns recomputed availability.
func (h *BookingHandler) SetDate(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.SetDate(c.Request.Context(), sessionID, input.Date)
	if err != nil {
		h.respondError(c, err, "failed to update booking session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "availability": result})
}

// SetDuration updates the session's duration class and returns recomputed
// availability.
func (h *BookingHandler) SetDuration(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Duration models.DurationClass `json:"duration" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.SetDuration(c.Request.Context(), sessionID, input.Duration)
	if err != nil {
		h.respondError(c, err, "failed to update booking session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "availability": result})
}

// ChooseSlot records the user's slot pick.
func (h *BookingHandler) ChooseSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Slot models.TimeSlotTemplate `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.ChooseSlot(c.Request.Context(), sessionID, input.Slot)
	if err != nil {
		h.respondError(c, err, "failed to choose slot")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "selection": session.Selection})
}

// Confirm finalizes the selection and hands the descriptor to payment.
func (h *BookingHandler) Confirm(c *gin.Context) {
	sessionID := c.Param("sessionID")

	descriptor, invoice, err := h.Service.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err, "booking confirmation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": descriptor, "invoice": invoice})
}

// CancelSession abandons an in-progress booking session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.respondError(c, err, "failed to cancel booking session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "cancelled": true})
}

// GetAvailability answers a stateless availability query.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	duration := models.DurationClass(c.Query("duration"))
	if date == "" || duration == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and duration query parameters are required"})
		return
	}

	result, err := h.Service.Availability(c.Request.Context(), date, duration)
	if err != nil {
		h.respondError(c, err, "failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitCustomRequest validates a user-proposed time and emits it to the
// pending-approval queue.
func (h *BookingHandler) SubmitCustomRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	var input struct {
		TherapistID string                        `json:"therapistId" binding:"required"`
		Request     scheduling.CustomRequestInput `json:"request"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	req, err := h.Service.SubmitCustomRequest(c.Request.Context(), userID, input.TherapistID, input.Request)
	if err != nil {
		h.respondError(c, err, "failed to submit custom request")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"request": req})
}

// RequestImmediate books a synthesized near-term session when the
// therapist is online.
func (h *BookingHandler) RequestImmediate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	var input struct {
		TherapistID string `json:"therapistId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	descriptor, invoice, err := h.Service.RequestImmediate(c.Request.Context(), userID, input.TherapistID)
	if err != nil {
		h.respondError(c, err, "failed to request immediate session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": descriptor, "invoice": invoice})
}
