package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"tantsuball/internal/inventory"
	"tantsuball/internal/models"
)

// MemoryUserRepository holds users in memory, seeded from the
// inventory. New users get sequential string ids continuing the seed.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
	delay  time.Duration
}

func NewUserRepository(inv *inventory.Inventory, delay time.Duration) *MemoryUserRepository {
	users := make([]models.User, len(inv.Users))
	copy(users, inv.Users)
	return &MemoryUserRepository{
		users:  users,
		nextID: len(users) + 1,
		delay:  delay,
	}
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := simulate(ctx, r.delay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := simulate(ctx, r.delay); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = strconv.Itoa(r.nextID)
		r.nextID++
	}
	r.users = append(r.users, *user)
	return nil
}
