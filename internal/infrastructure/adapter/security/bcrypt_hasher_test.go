package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPinHasher(t *testing.T) {
	hasher := NewBcryptPinHasher(bcrypt.MinCost)

	t.Run("Round trip", func(t *testing.T) {
		hash, err := hasher.Hash("1234")

		require.NoError(t, err)
		assert.NotEqual(t, "1234", hash)
		assert.True(t, hasher.Verify(hash, "1234"))
		assert.False(t, hasher.Verify(hash, "4321"))
		assert.False(t, hasher.Verify(hash, ""))
	})

	t.Run("Same pin yields different hashes", func(t *testing.T) {
		first, err := hasher.Hash("1234")
		require.NoError(t, err)
		second, err := hasher.Hash("1234")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, hasher.Verify(first, "1234"))
		assert.True(t, hasher.Verify(second, "1234"))
	})

	t.Run("Malformed hash never verifies", func(t *testing.T) {
		assert.False(t, hasher.Verify("not-a-hash", "1234"))
	})

	t.Run("Overlong pin is rejected", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("1", 73))
		assert.Error(t, err)
	})
}

func TestNewBcryptPinHasherCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPinHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPinHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcryptPinHasher(12).cost)
}
