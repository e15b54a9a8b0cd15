package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase exposes read access to accounts.
type UserUsecase interface {
	// GetProfile returns the account of the authenticated user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
