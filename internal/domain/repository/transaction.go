package repository

import "context"

// TransactionManager runs a unit of work atomically. Nothing written through
// the factory is visible to other callers unless fn returns nil.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewPostRepository() PostRepository
	NewCommentRepository() CommentRepository
}
