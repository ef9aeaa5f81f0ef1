package repository

import (
	"context"
	"sync"
	"time"

	"tantsuball/internal/inventory"
	"tantsuball/internal/models"
)

// MemoryPartnerRepository serves the partner catalog. Availability is
// part of the seed and never mutated by bookings.
type MemoryPartnerRepository struct {
	mu       sync.RWMutex
	partners []models.Partner
	delay    time.Duration
}

func NewPartnerRepository(inv *inventory.Inventory, delay time.Duration) *MemoryPartnerRepository {
	partners := make([]models.Partner, len(inv.Partners))
	copy(partners, inv.Partners)
	return &MemoryPartnerRepository{partners: partners, delay: delay}
}

func (r *MemoryPartnerRepository) List(ctx context.Context) ([]models.Partner, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Partner, len(r.partners))
	copy(result, r.partners)
	return result, nil
}

func (r *MemoryPartnerRepository) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.partners {
		if r.partners[i].ID == id {
			partner := r.partners[i]
			return &partner, nil
		}
	}
	return nil, nil
}
