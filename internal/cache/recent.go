// Package cache keeps a bounded memory of recently handled keys.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Recent is a size and age bounded set of keys. The least recently marked key
// is evicted first once the set is full.
type Recent struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	items   map[string]*list.Element
	order   *list.List
}

type entry struct {
	key       string
	expiresAt time.Time
}

// NewRecent creates a set holding at most maxSize keys for ttl each.
func NewRecent(maxSize int, ttl time.Duration) *Recent {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Recent{
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
		items:   make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Contains reports whether key was marked and has not expired.
func (r *Recent) Contains(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	elem, ok := r.items[key]
	if !ok {
		return false
	}
	if r.now().After(elem.Value.(*entry).expiresAt) {
		r.remove(elem)
		return false
	}
	return true
}

// Mark records key, refreshing its age if already present.
func (r *Recent) Mark(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expires := r.now().Add(r.ttl)
	if elem, ok := r.items[key]; ok {
		elem.Value.(*entry).expiresAt = expires
		r.order.MoveToFront(elem)
		return
	}

	r.items[key] = r.order.PushFront(&entry{key: key, expiresAt: expires})
	if r.order.Len() > r.maxSize {
		r.remove(r.order.Back())
	}
}

func (r *Recent) remove(elem *list.Element) {
	delete(r.items, elem.Value.(*entry).key)
	r.order.Remove(elem)
}

// Prune drops expired keys and returns how many were removed.
func (r *Recent) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for elem := r.order.Back(); elem != nil; {
		prev := elem.Prev()
		if now.After(elem.Value.(*entry).expiresAt) {
			r.remove(elem)
			removed++
		}
		elem = prev
	}
	return removed
}

// PruneEvery calls Prune on each tick until ctx is done.
func (r *Recent) PruneEvery(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Prune()
		}
	}
}

// Len returns the number of keys currently held, expired or not.
func (r *Recent) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
