package query

import (
	"context"
	"fmt"
)

// Query binds a key to the typed function that loads it.
type Query[T any] struct {
	Key Key
	Fn  func(ctx context.Context) (T, error)
}

// Fetch returns the cached value of q when fresh and loads it otherwise.
// Callers of the same key share a single request.
func Fetch[T any](ctx context.Context, c *Cache, q Query[T]) (T, error) {
	v, err := c.read(ctx, q.Key, func(ctx context.Context) (any, error) {
		return q.Fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := v.(T)
	if !ok && v != nil {
		var zero T
		return zero, fmt.Errorf("query %s: cached %T is not %T", q.Key, v, zero)
	}
	return t, nil
}

// Peek returns the last stored value of key without any I/O, stale or not.
func Peek[T any](c *Cache, key Key) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return zero, false
	}
	t, ok := e.value.(T)
	return t, ok
}
