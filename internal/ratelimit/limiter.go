package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a process-scoped fixed-window counter keyed by caller identity.
// A fixed window admits up to 2×max requests across a window boundary; that
// burst is an accepted property of the policy, not a defect.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	done    chan struct{}
	closeMu sync.Once
	now     func() time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

func New() *Limiter {
	l := &Limiter{
		windows: make(map[string]*window),
		done:    make(chan struct{}),
		now:     time.Now,
	}

	go l.startCleanup(5 * time.Minute)
	return l
}

// Allow increments the counter for key, starting a fresh window when none is
// active. RetryAfter is rounded up to whole seconds for the Retry-After hint.
func (l *Limiter) Allow(key string, windowDur time.Duration, max int) Decision {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(windowDur)}
		return Decision{Allowed: true, Remaining: max - 1}
	}

	if w.count >= max {
		retry := w.resetAt.Sub(now)
		if rem := retry % time.Second; rem != 0 {
			retry += time.Second - rem
		}
		return Decision{Allowed: false, RetryAfter: retry}
	}

	w.count++
	return Decision{Allowed: true, Remaining: max - w.count}
}

func (l *Limiter) startCleanup(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-t.C:
			now := l.now()
			l.mu.Lock()
			for key, w := range l.windows {
				if !now.Before(w.resetAt) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

func (l *Limiter) Close() {
	l.closeMu.Do(
		func() {
			close(l.done)
		},
	)
}
