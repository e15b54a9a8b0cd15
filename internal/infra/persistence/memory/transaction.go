package memory

import (
	"context"

	"blog/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{guard{store: f.store, inTx: true}}
}

func (f *repositoryFactory) NewPostRepository() repository.PostRepository {
	return &postRepository{guard{store: f.store, inTx: true}}
}

func (f *repositoryFactory) NewCommentRepository() repository.CommentRepository {
	return &commentRepository{guard{store: f.store, inTx: true}}
}

// NewTransactionManager returns a TransactionManager over store. Transactions
// hold the store's write lock, so they are serialized and fully isolated; a
// failing or panicking transaction restores the state it started from.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.snapshot()
	committed := false
	defer func() {
		if !committed {
			tm.store.restore(snap)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		return err
	}
	committed = true

	return nil
}
