// Package cache is the process-wide remote-data cache: a keyed store of
// fetched snapshots with a freshness window, stale-while-revalidate
// background refetches and per-key deduplication of in-flight requests.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mvillar/fastfeet-front/internal/metrics"
)

type Kind string

const (
	KindUser       Kind = "user"
	KindOrder      Kind = "order"
	KindOrders     Kind = "orders"
	KindRecipients Kind = "recipients"
)

// Key is a typed tagged key: the resource kind plus the parameters that
// identify one snapshot of it. Using a comparable struct instead of a
// concatenated string rules out collisions between kinds.
type Key struct {
	Kind      Kind
	OrderID   string
	PageIndex int
	Limit     int
	Query     string
}

func UserKey() Key {
	return Key{Kind: KindUser}
}

func OrderKey(orderID string) Key {
	return Key{Kind: KindOrder, OrderID: orderID}
}

func OrdersKey(pageIndex, limit int) Key {
	return Key{Kind: KindOrders, PageIndex: pageIndex, Limit: limit}
}

func RecipientsKey(pageIndex int, query string) Key {
	return Key{Kind: KindRecipients, PageIndex: pageIndex, Query: query}
}

// String is only used to address the singleflight group.
func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%d|%d|%s", k.Kind, k.OrderID, k.PageIndex, k.Limit, k.Query)
}

var ErrWrongValueType = errors.New("cache: entry holds a different value type")

type entry struct {
	value     any
	hasValue  bool
	fetchedAt time.Time
	stale     bool
	// writes counts applied patches. A fetch records this counter when it
	// starts and its result is only applied if no patch landed in between,
	// so a refetch can never overwrite a newer local write.
	writes uint64
}

type FetchFunc func(ctx context.Context) (any, error)

type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	group   singleflight.Group
	lg      *zap.SugaredLogger
	now     func() time.Time
}

func New(lg *zap.SugaredLogger) *Cache {
	return &Cache{
		entries: make(map[Key]*entry),
		lg:      lg,
		now:     time.Now,
	}
}

// Read returns the snapshot for key. A fresh entry is returned as is. A
// stale entry is returned immediately while a refetch runs in the
// background. With no entry at all the call blocks on fetch; overlapping
// reads of the same key share a single fetch.
func (c *Cache) Read(ctx context.Context, key Key, window time.Duration, fetch FetchFunc) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.hasValue {
		value := e.value
		fresh := !e.stale && c.now().Sub(e.fetchedAt) < window
		c.mu.Unlock()

		if fresh {
			metrics.CacheHitsTotal.WithLabelValues(string(key.Kind)).Inc()
			return value, nil
		}

		metrics.CacheStaleServedTotal.WithLabelValues(string(key.Kind)).Inc()
		go c.refetch(key, fetch)
		return value, nil
	}
	c.mu.Unlock()

	metrics.CacheMissesTotal.WithLabelValues(string(key.Kind)).Inc()

	value, err, _ := c.group.Do(key.String(), func() (any, error) {
		ticket := c.ticket(key)

		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.apply(key, ticket, fetched)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// refetch refreshes key in the background. The singleflight group keeps at
// most one request per key in flight, shared with blocking reads. The
// fetch deliberately outlives the read that triggered it.
func (c *Cache) refetch(key Key, fetch FetchFunc) {
	_, _, _ = c.group.Do(key.String(), func() (any, error) {
		ticket := c.ticket(key)

		fetched, err := fetch(context.Background())
		if err != nil {
			c.lg.Warnf("background refetch of %s failed: %v", key, err)
			return nil, err
		}

		c.apply(key, ticket, fetched)
		return fetched, nil
	})
}

func (c *Cache) ticket(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return e.writes
	}
	return 0
}

func (c *Cache) apply(key Key, ticket uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}

	if ticket < e.writes {
		// a patch landed after this fetch started
		c.lg.Debugf("discarding stale fetch result for %s", key)
		return
	}

	e.value = value
	e.hasValue = true
	e.fetchedAt = c.now()
	e.stale = false
}

// Patch applies merge to the snapshot at key, if one exists. A missing key
// is a no-op: Patch never fabricates an entry. It returns whether the merge
// was applied.
func (c *Cache) Patch(key Key, merge func(any) any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return false
	}

	e.value = merge(e.value)
	e.writes++
	return true
}

// Invalidate marks the entry stale so the next Read refetches. The stale
// value stays available until the refetch lands.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.stale = true
	}
}

// InvalidateKind marks every entry of the given kind stale. Used after a
// create mutation, when any cached listing page may be out of date.
func (c *Cache) InvalidateKind(kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if key.Kind == kind {
			e.stale = true
		}
	}
}

// Clear drops everything, used on logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*entry)
}

// Read is the typed wrapper around Cache.Read.
func Read[T any](ctx context.Context, c *Cache, key Key, window time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	value, err := c.Read(ctx, key, window, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, ErrWrongValueType
	}

	return typed, nil
}

// Patch is the typed wrapper around Cache.Patch. A snapshot of an
// unexpected type is left untouched.
func Patch[T any](c *Cache, key Key, merge func(T) T) bool {
	return c.Patch(key, func(value any) any {
		typed, ok := value.(T)
		if !ok {
			return value
		}
		return merge(typed)
	})
}
