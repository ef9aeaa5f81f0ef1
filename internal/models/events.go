package models

import "time"

// NATS Event Types
const (
	EventUserRegistered   = "user.registered"
	EventUserLoggedIn     = "user.logged_in"
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// UserRegisteredEvent represents a user registration event
type UserRegisteredEvent struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// UserLoggedInEvent represents a successful login event
type UserLoggedInEvent struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingCreatedEvent represents a booking creation event
type BookingCreatedEvent struct {
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	DanceID   string    `json:"dance_id"`
	PartnerID string    `json:"partner_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingCancelledEvent represents a booking cancellation event
type BookingCancelledEvent struct {
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}
