package services

import (
	"context"

	"github.com/tandoorlabs/pos-backend/internal/core/domain"
	"github.com/tandoorlabs/pos-backend/internal/dto"
)

// UserSvcFacade manages staff accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeactivateUser(ctx context.Context, userID string) error
}

// AuthSvcFacade authenticates staff and issues session tokens.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed JWT with its
	// expiry. Fails with ErrUnauthorized on bad credentials or a
	// deactivated account.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
