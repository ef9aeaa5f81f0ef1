package service

import (
	"context"
	"fmt"
	"time"

	apperrors "tantsuball/internal/errors"
	"tantsuball/internal/logger"
	"tantsuball/internal/messaging"
	"tantsuball/internal/metrics"
	"tantsuball/internal/models"
	"tantsuball/internal/repository"
)

type BookingService struct {
	bookingRepo repository.BookingRepository
	natsClient  *messaging.NATSClient
}

func NewBookingService(bookingRepo repository.BookingRepository, natsClient *messaging.NATSClient) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		natsClient:  natsClient,
	}
}

// Create appends a confirmed booking. Referential checks happen in the
// workflow before this is called; duplicates for the same
// user/event/dance are permitted, matching the demo semantics.
func (s *BookingService) Create(ctx context.Context, booking *models.Booking) error {
	booking.Confirmed = true
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.BookingsCreated.Inc()

	event := models.BookingCreatedEvent{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		EventID:   booking.EventID,
		DanceID:   booking.DanceID,
		PartnerID: booking.PartnerID,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventBookingCreated, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish booking created event",
			"error", err,
			"booking_id", booking.ID,
			"event_type", models.EventBookingCreated)
	}

	return nil
}

// ListForUser returns the user's bookings, a linear filter over the
// full collection.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return bookings, nil
}

// Cancel removes the booking if it exists and belongs to the caller.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return apperrors.ErrBookingNotFound
	}
	if booking.UserID != userID {
		return apperrors.ErrForbidden
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	metrics.BookingsCancelled.Inc()

	event := models.BookingCancelledEvent{
		BookingID: bookingID,
		UserID:    userID,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventBookingCancelled, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish booking cancelled event",
			"error", err,
			"booking_id", bookingID,
			"event_type", models.EventBookingCancelled)
	}

	return nil
}
