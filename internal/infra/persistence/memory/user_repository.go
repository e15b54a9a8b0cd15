package memory

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	guard
}

// NewUserRepository returns a UserRepository backed by store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{guard{store: store}}
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	defer repo.rlock()()

	u := repo.store.userCopy(id)
	if u == nil {
		return nil, repository.ErrUserNotFound
	}

	return u, nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	defer repo.rlock()()

	id, ok := repo.store.emails[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.store.userCopy(id), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer repo.lock()()

	s := repo.store
	if _, taken := s.emails[user.Email]; taken {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = *user
	s.emails[user.Email] = user.ID

	return nil
}
