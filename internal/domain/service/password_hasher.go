// Package service declares the domain's pluggable capabilities. Implementations live in internal/infra.
package service

// PasswordHasher turns passwords into one-way hashes and verifies them.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
