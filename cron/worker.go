package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"mindwell/config"
	"mindwell/services/notification"
	"mindwell/services/tasks"

	"github.com/hibiken/asynq"
)

// InitApprovalWorker runs the async worker consuming pending-approval
// tasks in the background.
func InitApprovalWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeApprovalRequest, handleApprovalTask(notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ApprovalWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ApprovalWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ApprovalWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleApprovalTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ApprovalPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ApprovalHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ApprovalHandler] custom request %s awaiting approval from therapist %s", p.RequestID, p.TherapistID)

		data := map[string]string{
			"requestId": p.RequestID,
			"date":      p.Date,
			"time":      p.Time,
			"duration":  string(p.Duration),
		}
		body := fmt.Sprintf("A client proposed a %s session on %s at %s.", p.Duration, p.Date, p.Time)

		if err := notifSvc.SendTherapistPush(ctx, p.TherapistID, "Session request pending approval", body, data); err != nil {
			log.Printf("[ApprovalHandler] failed to notify therapist: %v", err)
			return err
		}
		return nil
	}
}
