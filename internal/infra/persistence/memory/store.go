// Package memory is an in-process implementation of the repository interfaces.
// It backs the "memory" storage driver for local development and the usecase
// and router tests.
package memory

import (
	"cmp"
	"maps"
	"slices"
	"sync"
	"time"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

type postRecord struct {
	post entity.Post // Owner and Comments are always nil here.
	seq  uint64
}

type commentRecord struct {
	comment entity.Comment // Author is always nil here.
	seq     uint64
}

// Store holds every table. A zero Store is not usable; call NewStore.
type Store struct {
	mu sync.RWMutex

	users    map[uuid.UUID]entity.User
	emails   map[string]uuid.UUID
	posts    map[uuid.UUID]postRecord
	comments map[uuid.UUID]commentRecord
	seq      uint64

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]entity.User),
		emails:   make(map[string]uuid.UUID),
		posts:    make(map[uuid.UUID]postRecord),
		comments: make(map[uuid.UUID]commentRecord),
		now:      time.Now,
	}
}

type snapshot struct {
	users    map[uuid.UUID]entity.User
	emails   map[string]uuid.UUID
	posts    map[uuid.UUID]postRecord
	comments map[uuid.UUID]commentRecord
	seq      uint64
}

// snapshot and restore must be called with mu held.
func (s *Store) snapshot() snapshot {
	return snapshot{
		users:    maps.Clone(s.users),
		emails:   maps.Clone(s.emails),
		posts:    maps.Clone(s.posts),
		comments: maps.Clone(s.comments),
		seq:      s.seq,
	}
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.emails = snap.emails
	s.posts = snap.posts
	s.comments = snap.comments
	s.seq = snap.seq
}

func (s *Store) nextSeq() uint64 {
	s.seq++

	return s.seq
}

func (s *Store) userCopy(id uuid.UUID) *entity.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}

	return &u
}

func (s *Store) hydrateComment(rec commentRecord) *entity.Comment {
	c := rec.comment
	c.Author = s.userCopy(c.AuthorID)

	return &c
}

// commentsOf returns a post's comments, oldest first.
func (s *Store) commentsOf(postID uuid.UUID) []*entity.Comment {
	recs := make([]commentRecord, 0)
	for _, rec := range s.comments {
		if rec.comment.PostID == postID {
			recs = append(recs, rec)
		}
	}
	slices.SortFunc(recs, func(a, b commentRecord) int {
		if c := a.comment.CreatedAt.Compare(b.comment.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.seq, b.seq)
	})

	out := make([]*entity.Comment, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.hydrateComment(rec))
	}

	return out
}

func (s *Store) hydratePost(rec postRecord) *entity.Post {
	p := rec.post
	p.Owner = s.userCopy(p.OwnerID)
	p.Comments = s.commentsOf(p.ID)

	return &p
}

// postsWhere returns matching posts, newest first.
func (s *Store) postsWhere(match func(*entity.Post) bool) []*entity.Post {
	recs := make([]postRecord, 0, len(s.posts))
	for _, rec := range s.posts {
		if match(&rec.post) {
			recs = append(recs, rec)
		}
	}
	slices.SortFunc(recs, func(a, b postRecord) int {
		if c := b.post.CreatedAt.Compare(a.post.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.seq, a.seq)
	})

	out := make([]*entity.Post, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.hydratePost(rec))
	}

	return out
}

// guard locks the store unless the caller already runs inside a transaction,
// which holds the write lock for its whole duration.
type guard struct {
	store *Store
	inTx  bool
}

func (g guard) lock() func() {
	if g.inTx {
		return func() {}
	}
	g.store.mu.Lock()

	return g.store.mu.Unlock
}

func (g guard) rlock() func() {
	if g.inTx {
		return func() {}
	}
	g.store.mu.RLock()

	return g.store.mu.RUnlock
}
