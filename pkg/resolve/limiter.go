package resolve

import (
	"errors"
	"sync"

	mhttp "github.com/feedarr/feedarr/pkg/http"
)

// Provider names an external service the resolver talks to
type Provider string

const (
	ProviderPrimary   Provider = "primary"
	ProviderSecondary Provider = "secondary"
	ProviderWebSearch Provider = "websearch"
	ProviderLibrary   Provider = "library"
)

// Limiter tracks providers that signaled a rate limit. A limited provider is
// skipped for the remainder of the current run; the rest of the pipeline
// keeps going. Safe for concurrent use so parallel workers share one view.
type Limiter struct {
	mu       sync.Mutex
	disabled map[Provider]struct{}
}

// NewLimiter creates an empty Limiter for a run
func NewLimiter() *Limiter {
	return &Limiter{disabled: make(map[Provider]struct{})}
}

// Disabled reports whether the provider was rate limited this run
func (l *Limiter) Disabled(p Provider) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.disabled[p]
	return ok
}

// Disable removes the provider from the rest of the run
func (l *Limiter) Disable(p Provider) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled[p] = struct{}{}
}

// Observe inspects a provider error and disables the provider when it was a
// rate-limit signal. It returns true if the provider is now disabled.
func (l *Limiter) Observe(p Provider, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, mhttp.ErrRateLimited) {
		l.Disable(p)
		return true
	}
	return false
}
