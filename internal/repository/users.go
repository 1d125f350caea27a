package repository

import (
	"context"

	apperrors "volair/internal/errors"
	"volair/internal/models"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create assigns the next user id and stores the account. The email
// uniqueness check happens under the same lock as the insert so two
// registrations can never share an address.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailRegistered
		}
	}

	user.ID = s.nextUserID()
	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

// GetByEmail returns the account with the given email, or nil
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, nil
}

// GetByID returns the account with the given id, or nil
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			user := *u
			return &user, nil
		}
	}
	return nil, nil
}
