package consumers

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/nats-io/stan.go"

	"tantsuball/internal/models"
)

// Handlers processes the domain events the API publishes. It keeps a
// running tally per user so operators can follow booking activity
// from the consumer logs.
type Handlers struct {
	mu          sync.Mutex
	activeCount map[string]int
}

func NewHandlers() *Handlers {
	return &Handlers{activeCount: make(map[string]int)}
}

func (h *Handlers) HandleBookingCreated(msg *stan.Msg) {
	var event models.BookingCreatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking created event", "error", err)
		return
	}

	h.mu.Lock()
	h.activeCount[event.UserID]++
	count := h.activeCount[event.UserID]
	h.mu.Unlock()

	slog.Info("Booking created",
		"booking_id", event.BookingID,
		"user_id", event.UserID,
		"event_id", event.EventID,
		"dance_id", event.DanceID,
		"partner_id", event.PartnerID,
		"active_bookings", count)
}

func (h *Handlers) HandleBookingCancelled(msg *stan.Msg) {
	var event models.BookingCancelledEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking cancelled event", "error", err)
		return
	}

	h.mu.Lock()
	if h.activeCount[event.UserID] > 0 {
		h.activeCount[event.UserID]--
	}
	count := h.activeCount[event.UserID]
	h.mu.Unlock()

	slog.Info("Booking cancelled",
		"booking_id", event.BookingID,
		"user_id", event.UserID,
		"active_bookings", count)
}

func (h *Handlers) HandleUserRegistered(msg *stan.Msg) {
	var event models.UserRegisteredEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal user registered event", "error", err)
		return
	}

	slog.Info("User registered", "user_id", event.UserID, "email", event.Email)
}
