package consumers

import (
	"context"
	"log/slog"

	"tantsuball/internal/config"
	"tantsuball/internal/messaging"
	"tantsuball/internal/models"
)

type ConsumerService struct {
	nats     *messaging.NATSClient
	handlers *Handlers
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	return &ConsumerService{
		nats:     natsClient,
		handlers: NewHandlers(),
	}, nil
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	if _, err := cs.nats.SubscribeQueue(models.EventBookingCreated, "consumers", cs.handlers.HandleBookingCreated); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue(models.EventBookingCancelled, "consumers", cs.handlers.HandleBookingCancelled); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue(models.EventUserRegistered, "consumers", cs.handlers.HandleUserRegistered); err != nil {
		return err
	}

	return nil
}

func (cs *ConsumerService) Shutdown(_ context.Context) error {
	return cs.nats.Close()
}
