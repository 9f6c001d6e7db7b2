// Package cache provides the request cache layer: an in-memory,
// key-addressed store that deduplicates in-flight fetches, applies
// per-operation staleness windows, and propagates mutation side effects by
// prefix invalidation. Stores are constructed explicitly and injected into
// the composition root; there is no package-level singleton, so tests can
// instantiate isolated instances.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mkowalczyk/docdeck"
	"golang.org/x/sync/singleflight"
)

// Windows holds the per-operation staleness configuration.
type Windows struct {
	// Short covers autocomplete and health-style reads.
	Short time.Duration

	// Listing covers search and listing reads.
	Listing time.Duration

	// Long covers rarely-changing configuration reads.
	Long time.Duration
}

// DefaultWindows returns the standard staleness windows: 30s short,
// 5m listing, 20m long.
func DefaultWindows() Windows {
	return Windows{
		Short:   30 * time.Second,
		Listing: 5 * time.Minute,
		Long:    20 * time.Minute,
	}
}

// Entry is an immutable snapshot of a cache entry. A failed fetch leaves
// Data from the previous success in place while setting Err, so callers
// can render last-known-good data alongside an error indicator.
type Entry struct {
	Data          any
	Err           error
	IsFetching    bool
	LastFetchedAt time.Time
}

// FetchFunc produces the value for a cache entry, typically by calling the
// transport adapter.
type FetchFunc func(ctx context.Context) (any, error)

// Stats reports cache effectiveness counters.
type Stats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// entry is the mutable per-key record. All fields are guarded by the
// store mutex.
type entry struct {
	data          any
	err           error
	lastFetchedAt time.Time

	// stale is set by Invalidate; data stays visible until a
	// post-invalidation fetch resolves.
	stale bool

	// nextSeq numbers fetches for this key; appliedSeq is the newest
	// completion applied. A completion with seq <= appliedSeq of a newer
	// fetch is discarded, so a slow early request never overwrites the
	// result of a request issued after it.
	nextSeq    uint64
	appliedSeq uint64

	// staleSeq is nextSeq at invalidation time. Completions of fetches
	// issued at or before it do not clear the stale flag.
	staleSeq uint64

	// inflight is the seq of the newest launched fetch, 0 when idle.
	inflight uint64

	subs    map[int]func(Entry)
	nextSub int
}

func (e *entry) snapshot() Entry {
	return Entry{
		Data:          e.data,
		Err:           e.err,
		IsFetching:    e.inflight != 0,
		LastFetchedAt: e.lastFetchedAt,
	}
}

// Store is the request cache. It is safe for concurrent use; the per-key
// sequence numbers give get/apply/invalidate a linearizable apply order.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
	now     func() time.Time

	hits   int64
	misses int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Used by tests to control staleness.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the entry for key without blocking. A fresh entry is
// returned as-is. A stale or missing entry triggers a background fetch and
// the current snapshot is returned immediately with IsFetching=true;
// subscribers are notified when the fetch resolves. Concurrent gets for
// one key share a single in-flight call.
func (s *Store) Get(ctx context.Context, key docdeck.RequestKey, ttl time.Duration, fetch FetchFunc) Entry {
	keyStr := key.String()

	s.mu.Lock()
	e := s.ensure(keyStr)
	if s.fresh(e, ttl) {
		s.hits++
		snap := e.snapshot()
		s.mu.Unlock()
		return snap
	}
	s.misses++
	if e.inflight != 0 && !e.stale {
		snap := e.snapshot()
		s.mu.Unlock()
		return snap
	}
	snap := e.snapshot()
	snap.IsFetching = true
	s.mu.Unlock()

	// The fetch outlives the caller's context: a view leaving the screen
	// discards the completion, it does not abort the shared call.
	bctx := context.WithoutCancel(ctx)
	go func() {
		_, _, _ = s.group.Do(keyStr, func() (any, error) {
			seq := s.begin(keyStr)
			data, err := fetch(bctx)
			s.apply(keyStr, seq, data, err)
			return data, err
		})
	}()

	return snap
}

// Load is the blocking form of Get, used by CLI paths: it returns fresh
// cached data immediately and otherwise waits for the (shared) fetch.
func (s *Store) Load(ctx context.Context, key docdeck.RequestKey, ttl time.Duration, fetch FetchFunc) (any, error) {
	keyStr := key.String()

	s.mu.Lock()
	e := s.ensure(keyStr)
	if s.fresh(e, ttl) {
		s.hits++
		data, err := e.data, e.err
		s.mu.Unlock()
		return data, err
	}
	s.misses++
	s.mu.Unlock()

	data, err, _ := s.group.Do(keyStr, func() (any, error) {
		seq := s.begin(keyStr)
		data, err := fetch(ctx)
		s.apply(keyStr, seq, data, err)
		return data, err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Peek returns the current snapshot without triggering a fetch.
func (s *Store) Peek(key docdeck.RequestKey) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key.String()]
	if !ok {
		return Entry{}, false
	}
	return e.snapshot(), true
}

// Invalidate marks every entry whose operation name starts with prefix as
// stale, forcing the next Get to refetch. It never blocks on network work
// and never deletes data eagerly; stale data remains visible until the
// refetch resolves.
func (s *Store) Invalidate(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for keyStr, e := range s.entries {
		if !keyMatchesPrefix(keyStr, prefix) {
			continue
		}
		e.stale = true
		e.staleSeq = e.nextSeq
		// Drop the shared flight so the next get starts a fresh call
		// instead of joining a pre-invalidation one.
		s.group.Forget(keyStr)
	}
}

// Seed writes data through to the entry for key, as after a mutation that
// returns the freshly created resource. Subscribers are notified.
func (s *Store) Seed(key docdeck.RequestKey, data any) {
	keyStr := key.String()

	s.mu.Lock()
	e := s.ensure(keyStr)
	e.nextSeq++
	seq := e.nextSeq
	s.mu.Unlock()

	s.apply(keyStr, seq, data, nil)
}

// Subscribe registers fn to be called with a snapshot after every fetch
// completion or seed for key. The returned function unsubscribes;
// unsubscribed views never observe late completions.
func (s *Store) Subscribe(key docdeck.RequestKey, fn func(Entry)) (unsubscribe func()) {
	keyStr := key.String()

	s.mu.Lock()
	e := s.ensure(keyStr)
	if e.subs == nil {
		e.subs = make(map[int]func(Entry))
	}
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if e, ok := s.entries[keyStr]; ok {
			delete(e.subs, id)
		}
	}
}

// Stats returns cache effectiveness counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Entries: len(s.entries),
		Hits:    s.hits,
		Misses:  s.misses,
	}
}

// ensure returns the entry for keyStr, creating it if needed.
// Caller holds the mutex.
func (s *Store) ensure(keyStr string) *entry {
	e, ok := s.entries[keyStr]
	if !ok {
		e = &entry{}
		s.entries[keyStr] = e
	}
	return e
}

// fresh reports whether the entry can be served without a fetch.
// An entry whose last completion errored is refetched on the next get so
// transient failures recover without waiting out the window.
// Caller holds the mutex.
func (s *Store) fresh(e *entry, ttl time.Duration) bool {
	if e.stale || e.err != nil || e.lastFetchedAt.IsZero() {
		return false
	}
	return s.now().Sub(e.lastFetchedAt) < ttl
}

// begin allocates the sequence number for a fetch execution.
func (s *Store) begin(keyStr string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.ensure(keyStr)
	e.nextSeq++
	e.inflight = e.nextSeq
	return e.nextSeq
}

// apply records a fetch completion. Completions older than the newest
// applied one are discarded. A failed fetch keeps the previous data.
func (s *Store) apply(keyStr string, seq uint64, data any, err error) {
	s.mu.Lock()
	e := s.ensure(keyStr)
	if seq < e.appliedSeq {
		if e.inflight == seq {
			e.inflight = 0
		}
		s.mu.Unlock()
		return
	}
	e.appliedSeq = seq
	if e.inflight <= seq {
		e.inflight = 0
	}
	if err != nil {
		e.err = err
	} else {
		e.data = data
		e.err = nil
	}
	e.lastFetchedAt = s.now()
	if seq > e.staleSeq {
		e.stale = false
	}

	snap := e.snapshot()
	subs := make([]func(Entry), 0, len(e.subs))
	for _, fn := range e.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// keyMatchesPrefix reports whether the operation-name part of a cache key
// starts with prefix.
func keyMatchesPrefix(keyStr, prefix string) bool {
	op := docdeck.KeyPrefix(keyStr)
	return len(op) >= len(prefix) && op[:len(prefix)] == prefix
}
