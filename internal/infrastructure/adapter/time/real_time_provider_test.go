package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealTimeProvider(t *testing.T) {
	t.Run("Now is UTC by default", func(t *testing.T) {
		p := NewRealTimeProvider()
		assert.Equal(t, time.UTC, p.Now().Location())
	})

	t.Run("Named zone", func(t *testing.T) {
		p, err := NewRealTimeProviderIn("UTC")
		require.NoError(t, err)
		assert.Equal(t, "UTC", p.Now().Location().String())
	})

	t.Run("Unknown zone", func(t *testing.T) {
		_, err := NewRealTimeProviderIn("Not/AZone")
		assert.Error(t, err)
	})

	t.Run("Sleep returns early when context is canceled", func(t *testing.T) {
		p := NewRealTimeProvider()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := p.Sleep(ctx, core.Minute)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("Sleep completes", func(t *testing.T) {
		p := NewRealTimeProvider()
		assert.NoError(t, p.Sleep(context.Background(), core.Millisecond))
	})
}
