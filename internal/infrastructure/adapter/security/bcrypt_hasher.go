package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPinHasher hashes PINs with bcrypt. Each hash carries its own salt.
type BcryptPinHasher struct {
	cost int
}

// NewBcryptPinHasher creates a hasher with the given cost, falling back to
// bcrypt.DefaultCost when the cost is out of range
func NewBcryptPinHasher(cost int) *BcryptPinHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPinHasher{cost: cost}
}

// Hash returns a salted bcrypt hash of the PIN
func (h *BcryptPinHasher) Hash(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}
	return string(hash), nil
}

// Verify compares the PIN with the stored hash in constant time
func (h *BcryptPinHasher) Verify(hash, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
