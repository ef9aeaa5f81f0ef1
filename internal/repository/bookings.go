package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tantsuball/internal/inventory"
	"tantsuball/internal/models"
)

// MemoryBookingRepository holds bookings in memory, seeded from the
// inventory. Create assigns a uuid when the booking has no id yet.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
	delay    time.Duration
}

func NewBookingRepository(inv *inventory.Inventory, delay time.Duration) *MemoryBookingRepository {
	bookings := make([]models.Booking, len(inv.Bookings))
	copy(bookings, inv.Bookings)
	return &MemoryBookingRepository{bookings: bookings, delay: delay}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if err := simulate(ctx, r.delay); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemoryBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			booking := r.bookings[i]
			return &booking, nil
		}
	}
	return nil, nil
}

func (r *MemoryBookingRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *MemoryBookingRepository) Delete(ctx context.Context, id string) error {
	if err := simulate(ctx, r.delay); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}
