package routes

import (
	"mindwell/handlers"
	"mindwell/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers needed to register all routes.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Therapist    *handlers.TherapistHandler
	Journal      *handlers.JournalHandler
	Notification *handlers.NotificationHandler
}

// RegisterRoutes wires every endpoint of the platform.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	auth := middleware.AuthMiddleware()

	booking := r.Group("/api/booking", auth)
	{
		booking.POST("/session", h.Booking.StartSession)
		booking.PUT("/session/:sessionID/date", h.Booking.SetDate)
		booking.PUT("/session/:sessionID/duration", h.Booking.SetDuration)
		booking.PUT("/session/:sessionID/slot", h.Booking.ChooseSlot)
		booking.POST("/session/:sessionID/confirm", h.Booking.Confirm)
		booking.DELETE("/session/:sessionID", h.Booking.CancelSession)
		booking.GET("/availability", h.Booking.GetAvailability)
		booking.POST("/custom", h.Booking.SubmitCustomRequest)
		booking.POST("/immediate", h.Booking.RequestImmediate)
	}

	therapists := r.Group("/api/therapists")
	{
		therapists.GET("", h.Therapist.ListTherapists)
		therapists.GET("/:id", h.Therapist.GetTherapist)
		therapists.GET("/:id/presence", h.Therapist.GetPresence)
	}

	presence := r.Group("/api/presence", auth)
	{
		presence.POST("/heartbeat", h.Therapist.Heartbeat)
	}

	journal := r.Group("/api/journal", auth)
	{
		journal.POST("", h.Journal.CreateEntry)
		journal.GET("", h.Journal.ListEntries)
		journal.PUT("/:id", h.Journal.UpdateEntry)
		journal.DELETE("/:id", h.Journal.DeleteEntry)
	}

	notifications := r.Group("/api/notifications", auth)
	{
		notifications.POST("/token", h.Notification.RegisterToken)
	}
}
