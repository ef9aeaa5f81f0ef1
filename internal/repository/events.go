package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"tantsuball/internal/inventory"
	"tantsuball/internal/models"
)

// MemoryEventRepository serves the immutable event catalog from the
// seeded inventory. There is no write path.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events []models.Event
	delay  time.Duration
}

func NewEventRepository(inv *inventory.Inventory, delay time.Duration) *MemoryEventRepository {
	events := make([]models.Event, len(inv.Events))
	copy(events, inv.Events)
	return &MemoryEventRepository{events: events, delay: delay}
}

// List returns events, optionally narrowed by a case-insensitive title
// query and an exact date (YYYY-MM-DD).
func (r *MemoryEventRepository) List(ctx context.Context, query, date string) ([]models.Event, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Event, 0, len(r.events))
	for _, e := range r.events {
		if query != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(query)) {
			continue
		}
		if date != "" && e.Date != date {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (r *MemoryEventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.events {
		if r.events[i].ID == id {
			event := r.events[i]
			return &event, nil
		}
	}
	return nil, nil
}
