package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"tantsuball/internal/database"
	"tantsuball/internal/models"
)

// Postgres-backed implementations for the mutable collections. The
// catalog repositories stay in memory regardless of driver.

type PostgresUserRepository struct {
	db *database.DB
}

func NewPostgresUserRepository(db *database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password FROM users WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password FROM users WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.Password)
	return err
}

type PostgresBookingRepository struct {
	db *database.DB
}

func NewPostgresBookingRepository(db *database.DB) *PostgresBookingRepository {
	return &PostgresBookingRepository{db: db}
}

func (r *PostgresBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	query := `
		INSERT INTO bookings (id, user_id, event_id, dance_id, partner_id, confirmed)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.UserID,
		booking.EventID,
		booking.DanceID,
		booking.PartnerID,
		booking.Confirmed,
	)
	return err
}

func (r *PostgresBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	booking := &models.Booking{}
	var partnerID sql.NullString
	query := `
		SELECT id, user_id, event_id, dance_id, partner_id, confirmed
		FROM bookings
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.EventID,
		&booking.DanceID,
		&partnerID,
		&booking.Confirmed,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	booking.PartnerID = partnerID.String
	return booking, nil
}

func (r *PostgresBookingRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	query := `
		SELECT id, user_id, event_id, dance_id, partner_id, confirmed
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var booking models.Booking
		var partnerID sql.NullString
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.EventID,
			&booking.DanceID,
			&partnerID,
			&booking.Confirmed,
		)
		if err != nil {
			return nil, err
		}
		booking.PartnerID = partnerID.String
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *PostgresBookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
