package memory

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"

	"github.com/google/uuid"
)

type commentRepository struct {
	guard
}

// NewCommentRepository returns a CommentRepository backed by store.
func NewCommentRepository(store *Store) repository.CommentRepository {
	return &commentRepository{guard{store: store}}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer repo.lock()()

	s := repo.store
	if _, ok := s.posts[comment.PostID]; !ok {
		return repository.ErrPostNotFound
	}
	if _, ok := s.users[comment.AuthorID]; !ok {
		return repository.ErrUserNotFound
	}

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	comment.CreatedAt = s.now()

	stored := *comment
	stored.Author = nil
	s.comments[comment.ID] = commentRecord{comment: stored, seq: s.nextSeq()}

	return nil
}

func (repo *commentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	defer repo.rlock()()

	rec, ok := repo.store.comments[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}

	return repo.store.hydrateComment(rec), nil
}

func (repo *commentRepository) FindByPost(_ context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	defer repo.rlock()()

	return repo.store.commentsOf(postID), nil
}

func (repo *commentRepository) DeleteByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	defer repo.lock()()

	var deleted int64
	for id, rec := range repo.store.comments {
		if rec.comment.PostID == postID {
			delete(repo.store.comments, id)
			deleted++
		}
	}

	return deleted, nil
}

func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer repo.lock()()

	if _, ok := repo.store.comments[id]; !ok {
		return repository.ErrCommentNotFound
	}
	delete(repo.store.comments, id)

	return nil
}
