package entity

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CommentDeletePolicy decides who may delete a comment.
type CommentDeletePolicy string

const (
	// CommentDeleteByAuthor allows only the comment's author to delete it.
	CommentDeleteByAuthor CommentDeletePolicy = "author"
	// CommentDeleteByAnyone allows any authenticated user to delete any comment.
	CommentDeleteByAnyone CommentDeletePolicy = "any"
)

// ParseCommentDeletePolicy converts a configuration value into a policy.
// An empty value selects CommentDeleteByAuthor.
func ParseCommentDeletePolicy(s string) (CommentDeletePolicy, error) {
	switch CommentDeletePolicy(s) {
	case "", CommentDeleteByAuthor:
		return CommentDeleteByAuthor, nil
	case CommentDeleteByAnyone:
		return CommentDeleteByAnyone, nil
	default:
		return "", errors.Errorf("unknown comment delete policy: %q", s)
	}
}

// Allows reports whether requesterID may delete the comment.
func (p CommentDeletePolicy) Allows(comment *Comment, requesterID uuid.UUID) bool {
	if p == CommentDeleteByAnyone {
		return true
	}

	return comment.IsAuthoredBy(requesterID)
}
