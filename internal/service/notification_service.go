package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"ai-legalaid-be/internal/websocket"
	pktNats "ai-legalaid-be/pkg/nats"
)

// ExchangeNotification is the websocket payload pushed when an exchange
// commits, so clients refresh session lists without polling.
type ExchangeNotification struct {
	Event         string    `json:"event"`
	ExchangeId    uuid.UUID `json:"exchange_id"`
	ChatSessionId uuid.UUID `json:"chat_session_id"`
	Degraded      bool      `json:"degraded"`
	Persisted     bool      `json:"persisted"`
	CommittedAt   time.Time `json:"committed_at"`
}

type INotificationService interface {
	Start() error
}

type notificationService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
}

func NewNotificationService(subscriber *pktNats.Subscriber, hub *websocket.Hub) INotificationService {
	return &notificationService{
		subscriber: subscriber,
		hub:        hub,
	}
}

// Start attaches the durable consumer. Events delivered while no instance
// was running are replayed on reconnect.
func (s *notificationService) Start() error {
	if s.subscriber == nil {
		log.Printf("[WARN] NATS subscriber not configured, exchange notifications disabled")
		return nil
	}

	return s.subscriber.SubscribeExchangeCommitted("notif-service-worker", func(ctx context.Context, event pktNats.ExchangeCommittedEvent) error {
		s.hub.Send(event.UserId, ExchangeNotification{
			Event:         "exchange.committed",
			ExchangeId:    event.ExchangeId,
			ChatSessionId: event.ChatSessionId,
			Degraded:      event.Degraded,
			Persisted:     event.Persisted,
			CommittedAt:   event.CommittedAt,
		})
		return nil
	})
}
