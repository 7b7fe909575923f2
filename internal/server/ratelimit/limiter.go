// Package ratelimit keeps an in-process token bucket per caller key.
package ratelimit

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/timex"
	"golang.org/x/time/rate"
)

// AnonymousKey is the shared key of unauthenticated callers.
const AnonymousKey = common.RoleAnonymous

// Key builds the bucket key of a caller. An empty principal is anonymous.
func Key(principalID, role string) string {
	if principalID == "" {
		return AnonymousKey
	}
	return principalID + ":" + role
}

// Snapshot is a point-in-time view of one bucket.
type Snapshot struct {
	Capacity   int
	Tokens     float64
	LastRefill time.Time
}

type bucket struct {
	capacity int
	limiter  *rate.Limiter

	mu   sync.Mutex
	last time.Time
}

// Limiter admits up to a class capacity of requests per window for each key,
// refilling continuously.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	classes  map[string]int
	fallback int
	window   time.Duration
	now      timex.Clock
}

// New builds a limiter from per-role capacities. Keys whose role is not in
// classes get the smallest configured capacity. A nil clock means timex.Now.
func New(classes map[string]int, window time.Duration, now timex.Clock) (*Limiter, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: rate limit window must be positive", common.ErrConfiguration)
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: no rate limit classes", common.ErrConfiguration)
	}
	fallback := math.MaxInt
	copied := make(map[string]int, len(classes))
	for role, capacity := range classes {
		if capacity <= 0 {
			return nil, fmt.Errorf("%w: rate limit for %q must be positive", common.ErrConfiguration, role)
		}
		copied[role] = capacity
		fallback = min(fallback, capacity)
	}
	if now == nil {
		now = timex.Now
	}
	return &Limiter{
		buckets:  map[string]*bucket{},
		classes:  copied,
		fallback: fallback,
		window:   window,
		now:      now,
	}, nil
}

// TryAcquire takes one token from the bucket of key.
func (l *Limiter) TryAcquire(key string) bool {
	b := l.bucket(key)
	now := l.now()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = now
	return b.limiter.AllowN(now, 1)
}

// Snapshot reports the state of the bucket of key, creating it if needed.
func (l *Limiter) Snapshot(key string) Snapshot {
	b := l.bucket(key)

	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		Capacity:   b.capacity,
		Tokens:     b.limiter.TokensAt(l.now()),
		LastRefill: b.last,
	}
}

func (l *Limiter) bucket(key string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := l.capacity(key)
	b := &bucket{
		capacity: capacity,
		limiter:  rate.NewLimiter(rate.Limit(float64(capacity)/l.window.Seconds()), capacity),
	}
	l.buckets[key] = b
	return b
}

func (l *Limiter) capacity(key string) int {
	role := key
	if i := strings.LastIndex(key, ":"); i >= 0 {
		role = key[i+1:]
	}
	if c, ok := l.classes[role]; ok {
		return c
	}
	return l.fallback
}
