package middleware

import (
	"context"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	apperrors "travelbook/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type cacheEntry[R any] struct {
	result    R
	expiresAt time.Time
	forever   bool
}

// QueryCache memoizes a use case by the serialized form of its query.
// Two queries cache together only when their serializations match
// byte for byte, so field order in composite queries is significant.
// Entries are never evicted; a fresh decorator starts a fresh cache.
type QueryCache[Q any, R any] struct {
	inner   UseCase[Q, R]
	timeout time.Duration
	forever bool

	mu      sync.Mutex
	entries map[string]cacheEntry[R]

	now func() time.Time
}

// NewQueryCache decorates a use case with result caching. A zero
// timeout means entries stay valid for the life of the cache.
func NewQueryCache[Q any, R any](inner UseCase[Q, R], timeout time.Duration) *QueryCache[Q, R] {
	return &QueryCache[Q, R]{
		inner:   inner,
		timeout: timeout,
		forever: timeout == 0,
		entries: make(map[string]cacheEntry[R]),
		now:     time.Now,
	}
}

// Execute returns the cached result when a live entry exists for the
// query fingerprint, and delegates otherwise. A delegated call that
// fails is not cached.
func (c *QueryCache[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	key, err := json.MarshalToString(query)
	if err != nil {
		var zero R
		return zero, apperrors.NewInternalError("failed to fingerprint query").WithCause(err)
	}

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()

	if ok && (entry.forever || !c.now().After(entry.expiresAt)) {
		return entry.result, nil
	}

	result, err := c.inner.Execute(ctx, query)
	if err != nil {
		var zero R
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry[R]{
		result:    result,
		expiresAt: c.now().Add(c.timeout),
		forever:   c.forever,
	}
	c.mu.Unlock()

	return result, nil
}
