// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password. Each call uses
	// a fresh random salt, so hashing the same plaintext twice yields
	// different digests.
	Hash(password string) (string, error)

	// Check compares a plaintext password with an encoded digest. A malformed
	// digest and a wrong password are both reported as a plain false.
	Check(password, encodedHash string) bool
}
