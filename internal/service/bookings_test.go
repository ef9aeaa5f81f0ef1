package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tantsuball/internal/errors"
	"tantsuball/internal/models"
)

func TestCreateThenListRoundTrip(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	booking := &models.Booking{
		UserID:    "1",
		EventID:   "4",
		DanceID:   "6",
		PartnerID: "5",
	}
	require.NoError(t, svc.Bookings.Create(ctx, booking))
	assert.True(t, booking.Confirmed)

	bookings, err := svc.Bookings.ListForUser(ctx, "1")
	require.NoError(t, err)

	var matches []models.Booking
	for _, b := range bookings {
		if b.ID == booking.ID {
			matches = append(matches, b)
		}
	}
	require.Len(t, matches, 1)
	assert.Equal(t, "4", matches[0].EventID)
	assert.Equal(t, "6", matches[0].DanceID)
	assert.Equal(t, "5", matches[0].PartnerID)
}

func TestCancelRemovesBooking(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	// Seeded booking "1" belongs to user "1"
	require.NoError(t, svc.Bookings.Cancel(ctx, "1", "1"))

	bookings, err := svc.Bookings.ListForUser(ctx, "1")
	require.NoError(t, err)
	for _, b := range bookings {
		assert.NotEqual(t, "1", b.ID)
	}
}

func TestCancelMissingBooking(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	err := svc.Bookings.Cancel(ctx, "1", "does-not-exist")
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)

	// Store unchanged
	bookings, err := svc.Bookings.ListForUser(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestCancelForeignBookingIsForbidden(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	err := svc.Bookings.Cancel(ctx, "2", "1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// The owner still sees the booking
	bookings, err := svc.Bookings.ListForUser(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestDuplicateBookingsAreAllowed(t *testing.T) {
	svc := testServices(t)
	ctx := context.Background()

	// Same user/event/dance twice: the demo semantics permit it
	first := &models.Booking{UserID: "1", EventID: "1", DanceID: "3"}
	second := &models.Booking{UserID: "1", EventID: "1", DanceID: "3"}
	require.NoError(t, svc.Bookings.Create(ctx, first))
	require.NoError(t, svc.Bookings.Create(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)
}
