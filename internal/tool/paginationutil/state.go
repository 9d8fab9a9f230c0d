package paginationutil

import (
	"container/heap"
	"sort"
	"sync"
	"sync/atomic"
)

// Tracker holds the counters shared by all workers of one paginated walk.
type Tracker struct {
	seen     atomic.Int64
	limitHit atomic.Bool
}

// See records one more candidate and returns its 1-based ordinal.
func (t *Tracker) See() int64 {
	return t.seen.Add(1)
}

// Seen returns the number of candidates recorded so far.
func (t *Tracker) Seen() int64 {
	return t.seen.Load()
}

// MarkLimit flags that at least one candidate was rejected for lack of room.
func (t *Tracker) MarkLimit() {
	t.limitHit.Store(true)
}

// LimitHit reports whether MarkLimit was called.
func (t *Tracker) LimitHit() bool {
	return t.limitHit.Load()
}

// Collector is a mutex-guarded, optionally bounded result list.
type Collector[T any] struct {
	mu       sync.Mutex
	items    []T
	capacity int
}

// NewCollector creates a collector holding at most capacity items; capacity <= 0 means unbounded.
func NewCollector[T any](capacity int) *Collector[T] {
	c := &Collector[T]{capacity: capacity}
	if capacity > 0 && capacity <= 1024 {
		c.items = make([]T, 0, capacity)
	}
	return c
}

// TryAdd appends item unless the collector is full and reports whether it was added.
func (c *Collector[T]) TryAdd(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.capacity > 0 && len(c.items) >= c.capacity {
		return false
	}
	c.items = append(c.items, item)
	return true
}

// Full reports whether no further item fits.
func (c *Collector[T]) Full() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity > 0 && len(c.items) >= c.capacity
}

// Len returns the number of collected items.
func (c *Collector[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Items returns a copy of the collected items.
func (c *Collector[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// TopN retains the n smallest items offered under less, from any number of goroutines.
// The retained set depends only on the items offered, never on the order they arrive in.
type TopN[T any] struct {
	mu         sync.Mutex
	n          int
	less       func(a, b T) bool
	h          maxHeap[T]
	overflowed bool
}

// NewTopN creates a TopN keeping at most n items.
func NewTopN[T any](n int, less func(a, b T) bool) *TopN[T] {
	return &TopN[T]{n: n, less: less, h: maxHeap[T]{less: less}}
}

// Offer considers item for retention.
func (t *TopN[T]) Offer(item T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.h.items) < t.n {
		heap.Push(&t.h, item)
		return
	}
	t.overflowed = true
	if t.n > 0 && t.less(item, t.h.items[0]) {
		t.h.items[0] = item
		heap.Fix(&t.h, 0)
	}
}

// Overflowed reports whether more than n items were offered.
func (t *TopN[T]) Overflowed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.overflowed
}

// Sorted returns the retained items in ascending order.
func (t *TopN[T]) Sorted() []T {
	t.mu.Lock()
	out := make([]T, len(t.h.items))
	copy(out, t.h.items)
	t.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return t.less(out[i], out[j]) })
	return out
}

// maxHeap keeps the largest retained item at index 0.
type maxHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *maxHeap[T]) Len() int           { return len(h.items) }
func (h *maxHeap[T]) Less(i, j int) bool { return h.less(h.items[j], h.items[i]) }
func (h *maxHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *maxHeap[T]) Push(x any)         { h.items = append(h.items, x.(T)) }
func (h *maxHeap[T]) Pop() any {
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	return last
}
