package utils

import (
	"fmt"

	"job_board/internal/apperr"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for inputs bcrypt cannot digest.
var ErrPasswordTooLong = apperr.Validation([]apperr.FieldViolation{
	{Field: "password", Message: "password must be at most 72 bytes long"},
})

// PasswordHasher hashes and verifies passwords with bcrypt at a fixed cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher. Costs outside bcrypt's range
// fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a self-describing bcrypt digest (algorithm, cost, salt and hash).
func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// Verify reports whether password matches digest. A malformed digest is a mismatch.
func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// HashPassword hashes password at the default cost.
func HashPassword(password string) (string, error) {
	return NewPasswordHasher(bcrypt.DefaultCost).Hash(password)
}

// CheckPasswordHash compares a password with a bcrypt digest.
func CheckPasswordHash(password, hash string) bool {
	return NewPasswordHasher(bcrypt.DefaultCost).Verify(password, hash)
}
