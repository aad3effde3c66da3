package hashing

import "sync"

type entryKey struct {
	hash  uint64
	depth int
}

// Table caches node counts by position hash and remaining depth.
// It is safe for concurrent use by perft workers.
type Table struct {
	mu          sync.RWMutex
	entries     map[entryKey]uint64
	maxCapacity int
	hits        uint64
	misses      uint64
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity;
// once a limited table is full, new entries are ignored.
func NewTable(maxCapacity int) *Table {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &Table{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the stored count for hash at depth.
func (t *Table) Get(hash uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	nodes, ok := t.entries[entryKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Put stores a count. It returns false if the table is full.
func (t *Table) Put(hash uint64, depth int, nodes uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := entryKey{hash, depth}
	if _, ok := t.entries[key]; !ok && t.isFull() {
		return false
	}
	t.entries[key] = nodes
	return true
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity.
func (t *Table) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isFull()
}

func (t *Table) isFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Stats returns the number of lookups that hit and missed.
func (t *Table) Stats() (hits, misses uint64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hits, t.misses
}

// Reset clears the table and its statistics.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[entryKey]uint64)
	t.hits, t.misses = 0, 0
}
