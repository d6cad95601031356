// File: mindwell/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindwell/config"
	"mindwell/cron"
	"mindwell/database"
	journalRepo "mindwell/database/repository/journal"
	therapistRepo "mindwell/database/repository/therapist"
	"mindwell/handlers"
	"mindwell/middleware"
	"mindwell/routes"
	"mindwell/services/journal"
	"mindwell/services/notification"
	"mindwell/services/payment"
	"mindwell/services/presence"
	"mindwell/services/scheduling"
	"mindwell/services/tasks"
	"mindwell/services/therapist"
	"mindwell/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitPresenceCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	thRepo := therapistRepo.NewMongoTherapistRepo()
	jrnRepo := journalRepo.NewMongoJournalRepo()

	// collaborators.
	tokenStore := &notification.RedisTokenStore{Client: utils.GetCacheClient()}
	notificationService, err := notification.NewDefaultNotificationService(tokenStore)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	presenceService := &presence.RedisPresenceService{
		Client: utils.GetPresenceCacheClient(),
		TTL:    time.Duration(config.AppConfig.PresenceTTLSeconds) * time.Second,
	}

	approvalClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer approvalClient.Close()
	approvalSink := &tasks.AsynqApprovalSink{Client: approvalClient}

	paymentProcessor := payment.NewStripeProcessor(logger)

	// services.
	bookingService := &scheduling.DefaultBookingSessionService{
		Cache:     utils.GetCacheClient(),
		Payments:  paymentProcessor,
		Approvals: approvalSink,
		Notifier:  notificationService,
		Presence:  presenceService,
		Booked:    scheduling.UnimplementedBookedSlotStore{},
		Currency:  config.AppConfig.Currency,
	}
	therapistService := &therapist.DefaultTherapistService{Repo: thRepo}
	journalService := &journal.DefaultJournalService{Repo: jrnRepo}

	// Start the pending-approval worker.
	cron.InitApprovalWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Therapist:    handlers.NewTherapistHandler(therapistService, presenceService),
		Journal:      handlers.NewJournalHandler(journalService),
		Notification: handlers.NewNotificationHandler(tokenStore),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
