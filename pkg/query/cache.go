// Package query is a client-side cache for remote collections.
//
// Each logical resource is stored under a Key together with its last successful
// result, a staleness flag and the function that loads it. Concurrent reads of
// the same key share one in-flight request. Invalidate marks keys stale and
// refreshes the ones that currently have observers in the background, so views
// keep rendering the previous value until the new one lands. Mutate runs a
// write and invalidates its declared keys once it settles, whatever the outcome.
//
// Keys are hierarchical: invalidating "loans" also invalidates "loans:client:7".
//
// Every invalidation bumps the key's generation. A response whose request was
// issued before the latest invalidation is kept as a stale value and, when the
// key is observed, another request is chained after it. At most one request per
// key is in flight at any time and the newest server state is always the last
// one stored.
package query

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Key string

// Covers reports whether invalidating k also invalidates other.
func (k Key) Covers(other Key) bool {
	return other == k || strings.HasPrefix(string(other), string(k)+":")
}

// Event is emitted after a background refresh finishes.
type Event struct {
	Key Key
	Err error
}

type fetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value     any
	hasValue  bool
	stale     bool
	gen       uint64
	observers int
	inflight  bool
	// chain is set when a response arrived for an outdated generation or the
	// key was invalidated while a request was running.
	chain bool
	fetch fetchFunc
}

type Cache struct {
	mu       sync.Mutex
	entries  map[Key]*entry
	group    singleflight.Group
	listener func(Event)
	log      *zap.Logger
	wg       sync.WaitGroup
	closed   bool
}

type Option func(*Cache)

func WithListener(fn func(Event)) Option {
	return func(c *Cache) {
		c.listener = fn
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[Key]*entry),
		log:     zap.NewNop(),
	}
	for _, op := range opts {
		op(c)
	}
	return c
}

// SetListener replaces the listener; the app wires it once the UI program exists.
func (c *Cache) SetListener(fn func(Event)) {
	c.mu.Lock()
	c.listener = fn
	c.mu.Unlock()
}

func (c *Cache) entry(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

func (c *Cache) read(ctx context.Context, key Key, fn fetchFunc) (any, error) {
	c.mu.Lock()
	e := c.entry(key)
	e.fetch = fn
	if e.hasValue && !e.stale {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()
	return c.load(ctx, key)
}

func (c *Cache) load(ctx context.Context, key Key) (any, error) {
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(string(key), func() (any, error) {
		return c.run(flightCtx, key)
	})
	select {
	case res := <-ch:
		c.afterFlight(key)
		return res.Val, res.Err
	case <-ctx.Done():
		c.mu.Lock()
		closed := c.closed
		if !closed {
			c.wg.Add(1)
		}
		c.mu.Unlock()
		if closed {
			return nil, ctx.Err()
		}
		go func() {
			defer c.wg.Done()
			<-ch
			c.afterFlight(key)
		}()
		return nil, ctx.Err()
	}
}

func (c *Cache) run(ctx context.Context, key Key) (any, error) {
	c.mu.Lock()
	e := c.entry(key)
	fn, gen := e.fetch, e.gen
	e.inflight = true
	c.mu.Unlock()

	c.log.Debug("fetch", zap.String("key", string(key)), zap.Uint64("gen", gen))
	v, err := fn(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	e.inflight = false
	if err != nil {
		c.log.Debug("fetch failed", zap.String("key", string(key)), zap.Error(err))
		return nil, err
	}
	e.value, e.hasValue = v, true
	e.stale = e.gen != gen
	if e.stale && e.observers > 0 {
		e.chain = true
	}
	return v, nil
}

// afterFlight starts the refresh chained by an outdated response. It runs once
// the flight has left the singleflight group, so the new request is a new flight.
func (c *Cache) afterFlight(key Key) {
	c.mu.Lock()
	e := c.entry(key)
	chain := e.chain && !c.closed
	e.chain = false
	if chain {
		c.wg.Add(1)
	}
	c.mu.Unlock()
	if chain {
		go c.refresh(key)
	}
}

func (c *Cache) refresh(key Key) {
	defer c.wg.Done()
	_, err := c.load(context.Background(), key)
	c.mu.Lock()
	listener := c.listener
	c.mu.Unlock()
	if listener != nil {
		listener(Event{Key: key, Err: err})
	}
}

// Invalidate marks key and every key nested under it stale. Observed keys with
// a known loader are refreshed in the background.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	c.entry(key)
	var refresh []Key
	for k, e := range c.entries {
		if !key.Covers(k) {
			continue
		}
		e.stale = true
		e.gen++
		if e.observers == 0 || e.fetch == nil || c.closed {
			continue
		}
		if e.inflight {
			e.chain = true
			continue
		}
		refresh = append(refresh, k)
	}
	c.wg.Add(len(refresh))
	c.mu.Unlock()

	c.log.Debug("invalidate", zap.String("key", string(key)), zap.Int("refresh", len(refresh)))
	for _, k := range refresh {
		go c.refresh(k)
	}
}

// Mutate runs fn and, once it settles, invalidates each declared key exactly
// once regardless of the outcome. fn's error is returned as is.
func (c *Cache) Mutate(ctx context.Context, fn func(ctx context.Context) error, keys ...Key) error {
	defer func() {
		for _, k := range distinct(keys) {
			c.Invalidate(k)
		}
	}()
	return fn(ctx)
}

// Watch registers an observer of key until the returned func is called.
func (c *Cache) Watch(key Key) (unwatch func()) {
	c.mu.Lock()
	c.entry(key).observers++
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.entry(key).observers--
			c.mu.Unlock()
		})
	}
}

// Stale reports whether key holds no value or an outdated one.
func (c *Cache) Stale(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return !ok || !e.hasValue || e.stale
}

// Generation counts the invalidations key has received.
func (c *Cache) Generation(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		return e.gen
	}
	return 0
}

// Close stops scheduling background refreshes and waits for running ones.
func (c *Cache) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.wg.Wait()
}

// distinct drops duplicates and keys already covered by another declared key.
func distinct(keys []Key) []Key {
	out := make([]Key, 0, len(keys))
	for i, k := range keys {
		covered := false
		for j, other := range keys {
			if i == j {
				continue
			}
			if other != k && other.Covers(k) || other == k && j < i {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, k)
		}
	}
	return out
}
