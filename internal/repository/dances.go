package repository

import (
	"context"
	"sync"
	"time"

	"tantsuball/internal/inventory"
	"tantsuball/internal/models"
)

// MemoryDanceRepository serves the dance style catalog.
type MemoryDanceRepository struct {
	mu     sync.RWMutex
	dances []models.Dance
	delay  time.Duration
}

func NewDanceRepository(inv *inventory.Inventory, delay time.Duration) *MemoryDanceRepository {
	dances := make([]models.Dance, len(inv.Dances))
	copy(dances, inv.Dances)
	return &MemoryDanceRepository{dances: dances, delay: delay}
}

func (r *MemoryDanceRepository) List(ctx context.Context) ([]models.Dance, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Dance, len(r.dances))
	copy(result, r.dances)
	return result, nil
}

func (r *MemoryDanceRepository) GetByID(ctx context.Context, id string) (*models.Dance, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.dances {
		if r.dances[i].ID == id {
			dance := r.dances[i]
			return &dance, nil
		}
	}
	return nil, nil
}
