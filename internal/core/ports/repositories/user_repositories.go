package repositories

import (
	"context"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
)

// UserReader defines read operations for staff accounts.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for staff accounts.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	// SetUserActive toggles the active flag; deactivated users cannot log in.
	SetUserActive(ctx context.Context, userID string, active bool) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
