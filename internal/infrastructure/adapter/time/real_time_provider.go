package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock.
// Location, when set, is applied to Now so transaction dates follow the configured zone.
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a new real time provider using UTC
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{location: time.UTC}
}

// NewRealTimeProviderIn creates a real time provider for the named IANA zone
func NewRealTimeProviderIn(zone string) (*RealTimeProvider, error) {
	if zone == "" {
		return NewRealTimeProvider(), nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &RealTimeProvider{location: loc}, nil
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.location)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Sleep pauses for d or until ctx is done, whichever comes first
func (p *RealTimeProvider) Sleep(ctx context.Context, d core.Duration) error {
	timer := time.NewTimer(d.Std())
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
