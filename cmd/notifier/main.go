// The notifier tails the booking event stream and writes a structured
// audit line per event. It runs as a separate process and is only
// useful when NATS messaging is enabled.
package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/stan.go"

	"volair/internal/config"
	"volair/internal/logger"
	"volair/internal/messaging"
	"volair/internal/models"
)

func main() {
	cfg := config.Load()
	cfg.NATS.ClientID = "volair-notifier"

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	if cfg.NATS.URL == "" {
		logger.Fatal("NATS_URL is required for the notifier")
	}

	natsClient, err := messaging.Connect(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}
	defer natsClient.Close()

	subjects := []string{
		models.EventUserRegistered,
		models.EventBookingCreated,
		models.EventBookingModified,
		models.EventBookingCancelled,
	}

	for _, subject := range subjects {
		subj := subject
		_, err := natsClient.Subscribe(subj, func(msg *stan.Msg) {
			var payload map[string]any
			if err := json.Unmarshal(msg.Data, &payload); err != nil {
				log.Error("Failed to decode event", "subject", subj, "error", err)
				return
			}
			log.Info("Event received", "subject", subj, "payload", payload)
		})
		if err != nil {
			logger.Fatal("Failed to subscribe", "subject", subj, "error", err)
		}
	}

	log.Info("Notifier started", "subjects", subjects)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Notifier stopped")
}
