package ratelimit

import (
	"sync"
	"time"
)

// Limiter throttles PIN verification per client key. Allow reports whether a
// new attempt may proceed; Fail records a miss and returns attempts left
// before lockout; Reset clears the key after a successful check.
type Limiter interface {
	Allow(key string) (retryAfter time.Duration, ok bool)
	Fail(key string) (remaining int)
	Reset(key string)
}

type entry struct {
	failures    int
	lockedUntil time.Time
	lastSeen    time.Time
}

// MemoryLimiter keeps attempt counts in process memory. Entries idle past the
// lockout window are dropped lazily on access.
type MemoryLimiter struct {
	mu          sync.Mutex
	entries     map[string]*entry
	maxAttempts int
	lockout     time.Duration

	now func() time.Time
}

func NewMemoryLimiter(maxAttempts int, lockout time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		entries:     make(map[string]*entry),
		maxAttempts: maxAttempts,
		lockout:     lockout,
		now:         time.Now,
	}
}

func (l *MemoryLimiter) Allow(key string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.entries[key]
	if !ok {
		return 0, true
	}
	e.lastSeen = now
	if now.Before(e.lockedUntil) {
		return e.lockedUntil.Sub(now), false
	}
	return 0, true
}

func (l *MemoryLimiter) Fail(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.failures++
	e.lastSeen = now

	remaining := l.maxAttempts - e.failures
	if remaining <= 0 {
		e.lockedUntil = now.Add(l.lockout)
		e.failures = 0
		return 0
	}
	return remaining
}

func (l *MemoryLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

// sweep drops entries idle for longer than the lockout window. Callers hold
// the mutex.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) > l.lockout && now.After(e.lockedUntil) {
			delete(l.entries, key)
		}
	}
}
