// Package tracker maintains an in-memory, MMSI-keyed view of the latest
// AIS record seen for each vessel, with optional TTL eviction and
// CREATED/UPDATED/DELETED subscriber callbacks (§4.10).
package tracker

import (
	"container/list"
	"sort"
	"sync"
	"time"

	"github.com/tormol/aisgo/ais"
	"github.com/tormol/aisgo/geoindex"
)

// Event is one of the three lifecycle notifications a Tracker fires.
type Event int

const (
	EventCreated Event = iota
	EventUpdated
	EventDeleted
)

func (e Event) String() string {
	switch e {
	case EventCreated:
		return "CREATED"
	case EventUpdated:
		return "UPDATED"
	case EventDeleted:
		return "DELETED"
	default:
		return "UNKNOWN"
	}
}

type entry struct {
	mmsi  uint32
	track Track

	// indexed tracks whether this track currently has a point in geo, and
	// at which coordinates, so Update can issue geo.Move instead of
	// stacking stale points for the same mmsi.
	indexed bool
	idxLat  float64
	idxLon  float64
}

// Tracker holds one insertion-ordered (by last-update, in ordered mode)
// map of MMSI to Track, generalizing the teacher's storage/shipDB.go
// ShipDB (a plain map + per-ship mutex, no ordering or TTL) to the
// move-to-tail container/list + map[mmsi]*list.Element structure §9
// calls for: "doubly linked hash map, or separate linked list + hash".
//
// A Tracker is owned by exactly one processing pipeline (§5). Every
// exported method takes the mutex, so calls are serialized; subscriber
// callbacks run with the mutex held and must not call back into the
// Tracker.
type Tracker struct {
	mu      sync.Mutex
	order   *list.List // ordered mode: oldest-to-newest by LastUpdated
	index   map[uint32]*list.Element
	ordered bool
	ttl     time.Duration // 0 disables eviction

	hasOldest bool
	oldest    time.Time

	subscribers map[Event][]func(Track)

	geo *geoindex.Index // position index backing Nearest
}

// New creates an empty Tracker. ordered should be true when the input
// stream delivers updates in non-decreasing timestamp order (the common
// case for a live feed); ttl of 0 disables TTL eviction.
func New(ordered bool, ttl time.Duration) *Tracker {
	return &Tracker{
		order:       list.New(),
		index:       make(map[uint32]*list.Element),
		ordered:     ordered,
		ttl:         ttl,
		subscribers: make(map[Event][]func(Track)),
		geo:         geoindex.New(),
	}
}

// Subscribe registers cb to be called synchronously whenever ev occurs.
// Per §5, callbacks must not block: they run inline inside Update/Cleanup.
func (tr *Tracker) Subscribe(ev Event, cb func(Track)) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.subscribers[ev] = append(tr.subscribers[ev], cb)
}

func (tr *Tracker) fire(ev Event, t Track) {
	for _, cb := range tr.subscribers[ev] {
		cb(t)
	}
}

// Update decodes rec's mmsi field, projects rec onto that MMSI's Track
// (creating it on first sight), and runs Cleanup using ts as "now". If
// ts is the zero Value, time.Now() is used. In ordered mode, ts older
// than the track's current LastUpdated is rejected with
// ErrOrderViolation instead of being applied (§7).
func (tr *Tracker) Update(rec *ais.Record, ts time.Time) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if ts.IsZero() {
		ts = time.Now()
	}
	mmsi := uint32(rec.Uint("mmsi"))

	el, exists := tr.index[mmsi]
	if !exists {
		t := newTrack(mmsi)
		t.project(rec)
		t.LastUpdated = ts
		e := &entry{mmsi: mmsi, track: t}
		el = tr.order.PushBack(e)
		tr.index[mmsi] = el
		tr.reindexPosition(e)
		tr.bumpOldest(ts)
		tr.fire(EventCreated, t)
		tr.cleanupLocked(ts)
		return nil
	}

	e := el.Value.(*entry)
	if tr.ordered && ts.Before(e.track.LastUpdated) {
		return ErrOrderViolation
	}
	e.track.project(rec)
	e.track.LastUpdated = ts
	tr.reindexPosition(e)
	if tr.ordered {
		tr.order.MoveToBack(el)
	}
	tr.bumpOldest(ts)
	tr.fire(EventUpdated, e.track)
	tr.cleanupLocked(ts)
	return nil
}

// reindexPosition keeps geo in sync with e.track's current position,
// moving the indexed point rather than re-inserting when it already had
// one. Index errors (illegal coordinates slipping through decode, which
// shouldn't happen given armor/bitvec's range-checked fields) are
// swallowed: a stale or missing geo entry degrades Nearest, not Update.
func (tr *Tracker) reindexPosition(e *entry) {
	if !e.track.HasPosition {
		return
	}
	if e.indexed {
		if e.idxLat == e.track.Lat && e.idxLon == e.track.Lon {
			return
		}
		_ = tr.geo.Move(e.mmsi, e.idxLat, e.idxLon, e.track.Lat, e.track.Lon)
	} else if err := tr.geo.Insert(e.track.Lat, e.track.Lon, e.mmsi); err != nil {
		return
	}
	e.indexed, e.idxLat, e.idxLon = true, e.track.Lat, e.track.Lon
}

func (tr *Tracker) unindexPosition(e *entry) {
	if e.indexed {
		_ = tr.geo.Delete(e.mmsi, e.idxLat, e.idxLon)
		e.indexed = false
	}
}

func (tr *Tracker) bumpOldest(ts time.Time) {
	if !tr.hasOldest || ts.Before(tr.oldest) {
		tr.oldest, tr.hasOldest = ts, true
	}
}

// Cleanup evicts tracks whose LastUpdated is more than ttl behind now,
// firing EventDeleted for each. In ordered mode this is the early-stop
// scan §9 describes: "stop at the first non-expired track", relying on
// the list staying ordered by LastUpdated. Non-ordered mode falls back
// to a full scan, per §9's caveat for implementations that don't
// maintain that invariant.
func (tr *Tracker) Cleanup(now time.Time) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.cleanupLocked(now)
}

func (tr *Tracker) cleanupLocked(now time.Time) {
	if tr.ttl <= 0 || !tr.hasOldest {
		return
	}
	if now.Sub(tr.oldest) <= tr.ttl {
		return
	}
	if tr.ordered {
		for {
			front := tr.order.Front()
			if front == nil {
				tr.hasOldest = false
				return
			}
			e := front.Value.(*entry)
			if now.Sub(e.track.LastUpdated) <= tr.ttl {
				tr.oldest = e.track.LastUpdated
				return
			}
			tr.order.Remove(front)
			delete(tr.index, e.mmsi)
			tr.unindexPosition(e)
			tr.fire(EventDeleted, e.track)
		}
	}

	var newOldest time.Time
	hasNewOldest := false
	for el := tr.order.Front(); el != nil; {
		next := el.Next()
		e := el.Value.(*entry)
		if now.Sub(e.track.LastUpdated) > tr.ttl {
			tr.order.Remove(el)
			delete(tr.index, e.mmsi)
			tr.unindexPosition(e)
			tr.fire(EventDeleted, e.track)
		} else if !hasNewOldest || e.track.LastUpdated.Before(newOldest) {
			newOldest = e.track.LastUpdated
			hasNewOldest = true
		}
		el = next
	}
	tr.hasOldest = hasNewOldest
	if hasNewOldest {
		tr.oldest = newOldest
	}
}

// GetTrack returns a copy of mmsi's current Track, and whether it exists.
func (tr *Tracker) GetTrack(mmsi uint32) (Track, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	el, ok := tr.index[mmsi]
	if !ok {
		return Track{}, false
	}
	return el.Value.(*entry).track, true
}

// PopTrack removes and returns mmsi's Track without firing EventDeleted
// (explicit removal is a distinct operation from TTL eviction, §4.10).
func (tr *Tracker) PopTrack(mmsi uint32) (Track, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	el, ok := tr.index[mmsi]
	if !ok {
		return Track{}, false
	}
	e := el.Value.(*entry)
	tr.order.Remove(el)
	delete(tr.index, mmsi)
	tr.unindexPosition(e)
	return e.track, true
}

// Len returns the number of tracks currently held.
func (tr *Tracker) Len() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return len(tr.index)
}

// NLatestTracks returns up to n tracks with the largest LastUpdated, most
// recent first. In ordered mode this reads the list tail directly (O(n));
// otherwise it collects and sorts every track (O(k log k)), per §4.10.
func (tr *Tracker) NLatestTracks(n int) []Track {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if n <= 0 {
		return nil
	}
	if tr.ordered {
		out := make([]Track, 0, n)
		for el := tr.order.Back(); el != nil && len(out) < n; el = el.Prev() {
			out = append(out, el.Value.(*entry).track)
		}
		return out
	}
	all := make([]Track, 0, len(tr.index))
	for _, el := range tr.index {
		all = append(all, el.Value.(*entry).track)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LastUpdated.After(all[j].LastUpdated) })
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// Nearest returns up to n tracked vessels closest to (lat, lon), nearest
// first, backed by the R*-tree index kept in sync with position updates.
// Tracks that have never carried a position (identity-only sightings)
// never appear here.
func (tr *Tracker) Nearest(lat, lon float64, n int) []Track {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	hits := tr.geo.Nearest(lat, lon, n)
	out := make([]Track, 0, len(hits))
	for _, h := range hits {
		if el, ok := tr.index[h.MMSI]; ok {
			out = append(out, el.Value.(*entry).track)
		}
	}
	return out
}
