// Package auth provides one-way password hashing for seeded credentials.
package auth

import "golang.org/x/crypto/bcrypt"

// seedCost matches the work factor the production backend uses when it
// creates accounts, so seeded credentials verify identically.
const seedCost = 12

// HashPassword returns a bcrypt hash of the plaintext with a fresh random
// salt. Two calls with the same input produce different digests.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), seedCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether the plaintext matches the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
