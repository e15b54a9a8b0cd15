// Package repository declares the storage contracts the usecases depend on.
// Implementations live under internal/infra/persistence.
package repository

import "blog/internal/errors"

// Lookup misses. Stores return these unwrapped so callers can match with errors.Is.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)
