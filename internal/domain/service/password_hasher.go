// Package service defines the domain-facing interfaces implemented by infra:
// password hashing, access tokens and run event publishing.
package service

import "storefront/internal/domain/entity"

// PasswordHasher turns the plaintext passwords of generated users into the
// hashes that stores persist.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}

// SealPassword hashes the plaintext password of a user record and clears it,
// so that no store ever writes plaintext. Other records and users without a
// plaintext password are left as they are.
func SealPassword(hasher PasswordHasher, rec entity.Record) error {
	user, ok := rec.(*entity.User)
	if !ok || user.Password == "" {
		return nil
	}

	hash, err := hasher.Hash(user.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.Password = ""

	return nil
}
