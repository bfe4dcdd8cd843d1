package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"travelhub/internal/domain/service"
)

const (
	defaultDigestIterations = 210_000
	digestKeyLength         = 32
)

// digestHasher derives a deterministic PBKDF2-HMAC-SHA256 digest.
// The configured pepper acts as a fixed salt, so equal passwords produce equal hashes.
type digestHasher struct {
	pepper     []byte
	iterations int
}

// NewDigestHasher is the constructor for digestHasher.
func NewDigestHasher(pepper string, iterations int) service.PasswordHasher {
	if iterations <= 0 {
		iterations = defaultDigestIterations
	}

	return &digestHasher{
		pepper:     []byte(pepper),
		iterations: iterations,
	}
}

// Hash returns the lowercase hex digest of the password.
func (h *digestHasher) Hash(password string) (string, error) {
	return hex.EncodeToString(h.derive(password)), nil
}

// Check recomputes the digest and compares it in constant time.
func (h *digestHasher) Check(password, hash string) bool {
	stored, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(h.derive(password), stored) == 1
}

func (h *digestHasher) derive(password string) []byte {
	return pbkdf2.Key([]byte(password), h.pepper, h.iterations, digestKeyLength, sha256.New)
}
