package multipart

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DuplicateFilter flags sentences received redundantly from multiple AIS
// sources (the same vessel is commonly heard by several shore stations).
// It hashes the raw sentence text with xxhash instead of keying a map on
// the full string (as the teacher's nmeais.DuplicateTester does), the same
// tradeoff arloliu-mebo makes hashing time-series label sets rather than
// storing them verbatim: a 64-bit key is cheaper to store and compare at
// high message rates, at the (here, acceptable) cost of treating a hash
// collision as a duplicate.
//
// It double-buffers two generations of hashes, as nmeais.DuplicateTester
// does, so "recent" always covers at least minKeepAlive but at most
// 2*minKeepAlive.
type DuplicateFilter struct {
	mu      sync.Mutex
	active  map[uint64]struct{}
	pending map[uint64]struct{}
	stop    chan struct{}
}

// NewDuplicateFilter starts a background goroutine that rotates the
// active/pending generations every minKeepAlive.
func NewDuplicateFilter(minKeepAlive time.Duration) *DuplicateFilter {
	df := &DuplicateFilter{
		active:  make(map[uint64]struct{}),
		pending: make(map[uint64]struct{}),
		stop:    make(chan struct{}),
	}
	go df.rotate(minKeepAlive)
	return df
}

func (df *DuplicateFilter) rotate(keepAlive time.Duration) {
	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			df.mu.Lock()
			fresh := make(map[uint64]struct{}, len(df.active)+64)
			df.active = df.pending
			df.pending = fresh
			df.mu.Unlock()
		case <-df.stop:
			return
		}
	}
}

// Close stops the background rotation goroutine.
func (df *DuplicateFilter) Close() {
	close(df.stop)
}

// IsDuplicate reports whether text was already seen within the last
// ~1x-2x the filter's keep-alive window, and records it either way.
func (df *DuplicateFilter) IsDuplicate(text string) bool {
	h := xxhash.Sum64String(text)
	df.mu.Lock()
	defer df.mu.Unlock()
	_, exists := df.active[h]
	if !exists {
		df.active[h] = struct{}{}
		df.pending[h] = struct{}{}
	}
	return exists
}
