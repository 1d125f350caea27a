package service

import (
	"context"
	"fmt"
	"time"

	"volair/internal/auth"
	apperrors "volair/internal/errors"
	"volair/internal/logger"
	"volair/internal/messaging"
	"volair/internal/models"
	"volair/internal/repository"
)

type UserService struct {
	users      *repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
	natsClient *messaging.NATSClient
}

func NewUserService(users *repository.UserRepository, tokens *auth.TokenManager, cfg auth.Config, natsClient *messaging.NATSClient) *UserService {
	return &UserService{
		users:      users,
		tokens:     tokens,
		bcryptCost: cfg.BcryptCost,
		natsClient: natsClient,
	}
}

// Register creates an account and logs the new user straight in,
// returning the account and a fresh token
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, "", apperrors.Validation("all fields are required")
	}
	if len(req.Password) < 6 {
		return nil, "", apperrors.Validation("password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	event := models.UserRegisteredEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventUserRegistered, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish user registered event",
			"error", err,
			"user_id", user.ID)
	}

	return user, token, nil
}

// Authenticate verifies credentials and issues a token. Unknown email
// and wrong password both come back as ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", apperrors.Validation("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// GetProfile returns the account behind an authenticated caller
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
