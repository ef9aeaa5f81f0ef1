package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "tantsuball/internal/errors"
	"tantsuball/internal/logger"
	"tantsuball/internal/messaging"
	"tantsuball/internal/metrics"
	"tantsuball/internal/models"
	"tantsuball/internal/repository"
	"tantsuball/internal/session"
)

type AuthService struct {
	userRepo   repository.UserRepository
	sessions   session.Store
	natsClient *messaging.NATSClient
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store, natsClient *messaging.NATSClient) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		natsClient: natsClient,
	}
}

// Login validates the credentials against the user store and, on
// success, issues a session token and durably records the identity.
// The returned user never carries the password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.SessionResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.Password != password {
		return nil, apperrors.ErrInvalidCredentials
	}

	resp, err := s.establishSession(ctx, *user)
	if err != nil {
		return nil, err
	}

	metrics.Logins.Inc()

	event := models.UserLoggedInEvent{
		UserID:    user.ID,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventUserLoggedIn, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish login event",
			"error", err,
			"user_id", user.ID,
			"event_type", models.EventUserLoggedIn)
	}

	return resp, nil
}

// Register creates a new user unless the email is already taken, then
// establishes a session for it. The session state is untouched on
// failure.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.SessionResponse, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailInUse
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp, err := s.establishSession(ctx, *user)
	if err != nil {
		return nil, err
	}

	metrics.Registrations.Inc()

	event := models.UserRegisteredEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventUserRegistered, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish registration event",
			"error", err,
			"user_id", user.ID,
			"event_type", models.EventUserRegistered)
	}

	return resp, nil
}

// Logout clears the persisted session for the token. Unknown tokens
// are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Restore re-establishes a previously saved identity without asking
// for credentials again. The saved identity is cross-checked against
// the user store; a stale record is dropped and treated as no session.
func (s *AuthService) Restore(ctx context.Context, token string) (*models.SessionResponse, error) {
	id, err := s.sessions.Load(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if id == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	user, err := s.userRepo.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		// Saved identity points at a user that no longer exists
		_ = s.sessions.Delete(ctx, token)
		return nil, apperrors.ErrNotAuthenticated
	}

	return &models.SessionResponse{Token: token, User: user.Sanitized()}, nil
}

func (s *AuthService) establishSession(ctx context.Context, user models.User) (*models.SessionResponse, error) {
	token := uuid.New().String()
	id := session.Identity{
		Token:   token,
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		SavedAt: time.Now(),
	}
	if err := s.sessions.Save(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &models.SessionResponse{Token: token, User: user.Sanitized()}, nil
}
