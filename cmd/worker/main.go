// cmd/worker/main.go
package main

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/config"
	"github.com/alertemeds/alertemeds-backend/internal/db"
	"github.com/alertemeds/alertemeds-backend/internal/logger"
	"github.com/alertemeds/alertemeds-backend/internal/mailer"
	"github.com/alertemeds/alertemeds-backend/internal/queue"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
	"github.com/alertemeds/alertemeds-backend/internal/service"
)

// maxRetries bounds redelivery of a failing send job. After that the
// email stays FAILED and an operator can re-trigger it from the admin UI.
const maxRetries = 3

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	conn, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer conn.Close()

	q, err := queue.Connect(cfg.Queue.URL, cfg.Queue.Name)
	if err != nil {
		log.Fatal("failed to connect to queue", zap.Error(err))
	}
	defer q.Close()

	ctx := context.Background()
	sesSender, err := mailer.NewSESSender(ctx, cfg.Mailer.Region, cfg.Mailer.FromEmail)
	if err != nil {
		log.Fatal("failed to initialise SES", zap.Error(err))
	}

	sender := &service.SenderService{
		EmailRepo:   &repository.EmailRepository{DB: conn},
		ContactRepo: &repository.ContactRepository{DB: conn},
		Mailer:      sesSender,
		BaseURL:     cfg.App.BaseURL,
		Logger:      log,
	}

	msgs, err := q.Consume()
	if err != nil {
		log.Fatal("failed to register consumer", zap.Error(err))
	}

	log.Info("worker running, waiting for send jobs", zap.String("queue", cfg.Queue.Name))

	for d := range msgs {
		var job queue.SendJob
		if err := json.Unmarshal(d.Body, &job); err != nil {
			log.Warn("invalid job payload, dropping", zap.Error(err))
			d.Ack(false)
			continue
		}

		if err := sender.ProcessJob(ctx, job.EmailID); err != nil {
			retryCount := queue.RetryCount(d)
			if retryCount < maxRetries {
				log.Warn("send failed, requeueing",
					zap.Int("email_id", job.EmailID),
					zap.Int("retry", retryCount+1),
					zap.Error(err))
				if reqErr := q.Requeue(d, retryCount+1); reqErr != nil {
					log.Error("requeue failed", zap.Int("email_id", job.EmailID), zap.Error(reqErr))
				}
			} else {
				log.Error("send failed permanently, giving up",
					zap.Int("email_id", job.EmailID), zap.Error(err))
			}
			d.Ack(false)
			continue
		}

		d.Ack(false)
	}
}
