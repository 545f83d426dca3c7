package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per client in process memory.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	rps      rate.Limit
	burst    int
	now      func() time.Time
}

func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		visitors: make(map[string]*clientLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return m.visitor(key).Allow(), nil
}

func (m *MemoryLimiter) visitor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, exists := m.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(m.rps, m.burst)
		m.visitors[key] = &clientLimiter{limiter, m.now()}
		return limiter
	}

	v.lastSeen = m.now()
	return v.limiter
}

// Cleanup forgets clients not seen for longer than idle.
func (m *MemoryLimiter) Cleanup(idle time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, v := range m.visitors {
		if m.now().Sub(v.lastSeen) > idle {
			delete(m.visitors, key)
		}
	}
}

// StartCleanupLoop runs Cleanup every interval until ctx is done.
func (m *MemoryLimiter) StartCleanupLoop(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Cleanup(idle)
		}
	}
}

func (m *MemoryLimiter) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.visitors)
}
