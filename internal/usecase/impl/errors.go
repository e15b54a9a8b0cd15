// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateRepoError maps repository sentinels onto the AppError taxonomy.
// Anything else is wrapped and surfaces as an internal error.
func translateRepoError(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrPostNotFound):
		return domainerrors.ErrPostNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrCommentNotFound):
		return domainerrors.ErrCommentNotFound.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}
