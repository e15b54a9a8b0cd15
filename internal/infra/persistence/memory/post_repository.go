package memory

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"

	"github.com/google/uuid"
)

type postRepository struct {
	guard
}

// NewPostRepository returns a PostRepository backed by store.
func NewPostRepository(store *Store) repository.PostRepository {
	return &postRepository{guard{store: store}}
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer repo.lock()()

	s := repo.store
	if _, ok := s.users[post.OwnerID]; !ok {
		return repository.ErrUserNotFound
	}

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := s.now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Comments == nil {
		post.Comments = []*entity.Comment{}
	}

	stored := *post
	stored.Owner = nil
	stored.Comments = nil
	s.posts[post.ID] = postRecord{post: stored, seq: s.nextSeq()}

	return nil
}

func (repo *postRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Post, error) {
	defer repo.rlock()()

	rec, ok := repo.store.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}

	return repo.store.hydratePost(rec), nil
}

func (repo *postRepository) FindAll(_ context.Context) ([]*entity.Post, error) {
	defer repo.rlock()()

	return repo.store.postsWhere(func(*entity.Post) bool { return true }), nil
}

func (repo *postRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Post, error) {
	defer repo.rlock()()

	return repo.store.postsWhere(func(p *entity.Post) bool { return p.OwnerID == ownerID }), nil
}

func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer repo.lock()()

	s := repo.store
	rec, ok := s.posts[post.ID]
	if !ok {
		return repository.ErrPostNotFound
	}

	rec.post.Title = post.Title
	rec.post.Content = post.Content
	rec.post.UpdatedAt = s.now()
	s.posts[post.ID] = rec

	post.UpdatedAt = rec.post.UpdatedAt

	return nil
}

// Delete removes the post and, like the SQL schema, its comments.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer repo.lock()()

	s := repo.store
	if _, ok := s.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(s.posts, id)

	for commentID, rec := range s.comments {
		if rec.comment.PostID == id {
			delete(s.comments, commentID)
		}
	}

	return nil
}
