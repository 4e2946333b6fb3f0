package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"filebox/config"
	"filebox/internal/infrastructure/postgres"
	"filebox/internal/infrastructure/queue"
	"filebox/internal/worker"
	"filebox/pkg/helpers"
	"filebox/pkg/mailer"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-worker", cfg.Env)

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	for _, q := range []string{cfg.FileQueue, cfg.UserQueue} {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			log.Fatalf("queue declare %s: %v", q, err)
		}
	}

	var mail worker.Mailer
	if cfg.MailSendEnabled && cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" && cfg.MailgunSender != "" {
		mail = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	} else {
		logger.Info("mail sending disabled, welcome emails will only be logged")
	}

	proc := worker.NewProcessor(
		postgres.NewFileRepository(pool),
		postgres.NewUserRepository(pool),
		mail,
		logger,
	)

	fileMsgs, err := ch.Consume(cfg.FileQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume %s: %v", cfg.FileQueue, err)
	}
	userMsgs, err := ch.Consume(cfg.UserQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume %s: %v", cfg.UserQueue, err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for msg := range fileMsgs {
			var job queue.FileJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				logger.WithError(err).Warn("bad file job payload")
				_ = msg.Nack(false, false)
				continue
			}
			c, cancel := context.WithTimeout(ctx, 30*time.Second)
			err := proc.HandleFileJob(c, job)
			cancel()
			if err != nil {
				logger.WithError(err).WithField("file_id", job.FileID).Error("file job failed, requeueing")
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
	}()

	go func() {
		defer wg.Done()
		for msg := range userMsgs {
			var job queue.UserJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				logger.WithError(err).Warn("bad user job payload")
				_ = msg.Nack(false, false)
				continue
			}
			c, cancel := context.WithTimeout(ctx, 30*time.Second)
			err := proc.HandleUserJob(c, job)
			cancel()
			if err != nil {
				logger.WithError(err).WithField("user_id", job.UserID).Error("user job failed, requeueing")
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
	}()

	logger.Infof("worker listening on queues %s, %s", cfg.FileQueue, cfg.UserQueue)
	<-stop
	logger.Info("shutting down...")
	_ = ch.Close()

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
	}
}
