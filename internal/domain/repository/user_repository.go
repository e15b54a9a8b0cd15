package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository stores accounts. Emails are compared in their normalized
// (trimmed, lower-cased) form.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create assigns ID and timestamps on user. A taken email yields
	// domain errors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
}
