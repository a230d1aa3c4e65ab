package core

// PinHasher hashes and verifies account PINs
type PinHasher interface {
	// Hash returns a salted hash of the PIN. Hashing the same PIN twice yields different hashes.
	Hash(pin string) (string, error)
	// Verify reports whether the PIN matches the stored hash
	Verify(hash, pin string) bool
}
