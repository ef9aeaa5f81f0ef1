package repository

import (
	"context"
	"time"

	"tantsuball/internal/database"
	"tantsuball/internal/inventory"
	"tantsuball/internal/models"
)

// Per-entity repository boundaries. The in-memory implementations wrap
// the seeded inventory; users and bookings can alternatively be backed
// by Postgres. Getters return (nil, nil) for unknown ids.

type EventRepository interface {
	List(ctx context.Context, query, date string) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
}

type PartnerRepository interface {
	List(ctx context.Context) ([]models.Partner, error)
	GetByID(ctx context.Context, id string) (*models.Partner, error)
}

type DanceRepository interface {
	List(ctx context.Context) ([]models.Dance, error)
	GetByID(ctx context.Context, id string) (*models.Dance, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	Delete(ctx context.Context, id string) error
}

type Repositories struct {
	Events   EventRepository
	Partners PartnerRepository
	Dances   DanceRepository
	Users    UserRepository
	Bookings BookingRepository
}

// NewRepositories wires every repository to the in-memory inventory.
// delay is the artificial latency injected into each call.
func NewRepositories(inv *inventory.Inventory, delay time.Duration) *Repositories {
	return &Repositories{
		Events:   NewEventRepository(inv, delay),
		Partners: NewPartnerRepository(inv, delay),
		Dances:   NewDanceRepository(inv, delay),
		Users:    NewUserRepository(inv, delay),
		Bookings: NewBookingRepository(inv, delay),
	}
}

// NewRepositoriesWithDatabase keeps the read-only catalog in memory
// and moves the mutable collections (users, bookings) to Postgres.
func NewRepositoriesWithDatabase(inv *inventory.Inventory, db *database.DB, delay time.Duration) *Repositories {
	return &Repositories{
		Events:   NewEventRepository(inv, delay),
		Partners: NewPartnerRepository(inv, delay),
		Dances:   NewDanceRepository(inv, delay),
		Users:    NewPostgresUserRepository(db),
		Bookings: NewPostgresBookingRepository(db),
	}
}
