// Package service defines interfaces for core, stateless domain logic and for
// the per-request collaborators a guard drives.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with different parameters
	// than the hasher currently uses.
	NeedsRehash(hash string) bool
}
