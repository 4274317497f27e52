package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tormol/aisgo/ais"
)

// simplePositionRecord builds a minimal decoded type-1 Record for mmsi by
// round-tripping a hand-built Record through the schema engine (the
// engine itself is exercised directly by the ais package's own tests;
// here it's just a fixture builder).
func simplePositionRecord(mmsi uint32) *ais.Record {
	rec := ais.NewRecord(1, "")
	rec.Set("type", ais.ValueInt(1))
	rec.Set("mmsi", ais.ValueInt(int64(mmsi)))
	rec.Set("status", ais.ValueEnum(3, "RestrictedManoeuvrability"))
	rec.Set("lon", ais.ValueScaled(10, 1.0/600000))
	rec.Set("lat", ais.ValueScaled(50, 1.0/600000))
	bits, err := ais.Encode(rec)
	if err != nil {
		panic(err)
	}
	decoded, err := ais.Decode(bits)
	if err != nil {
		panic(err)
	}
	return decoded
}

// Concrete scenario 6 (§8): feed three sentences at t=100,101,102 with
// distinct MMSIs; n_latest_tracks(2) returns the two most recent (A is
// already gone: ttl=1 evicts it when C arrives at 102). Then update A
// again and confirm it comes back as the newest; with ttl=1 at now=104,
// cleanup removes every track more than 1s stale (B and C).
func TestTrackerOrderedRecencyAndTTL(t *testing.T) {
	tr := New(true, time.Second)

	t100 := time.Unix(100, 0)
	t101 := time.Unix(101, 0)
	t102 := time.Unix(102, 0)
	t103 := time.Unix(103, 0)

	recA := simplePositionRecord(111111111)
	recB := simplePositionRecord(222222222)
	recC := simplePositionRecord(333333333)

	require.NoError(t, tr.Update(recA, t100))
	require.NoError(t, tr.Update(recB, t101))
	require.NoError(t, tr.Update(recC, t102))

	latest := tr.NLatestTracks(2)
	require.Len(t, latest, 2)
	assert.Equal(t, uint32(333333333), latest[0].MMSI)
	assert.Equal(t, uint32(222222222), latest[1].MMSI)

	require.NoError(t, tr.Update(recA, t103))
	latest = tr.NLatestTracks(2)
	require.Len(t, latest, 2)
	assert.Equal(t, uint32(111111111), latest[0].MMSI)
	assert.Equal(t, uint32(333333333), latest[1].MMSI)

	tr.Cleanup(time.Unix(104, 0))
	_, ok := tr.GetTrack(222222222)
	assert.False(t, ok, "B should have been evicted by ttl=1s at now=104")
	_, ok = tr.GetTrack(111111111)
	assert.True(t, ok)
	_, ok = tr.GetTrack(333333333)
	assert.False(t, ok, "C (last update 102) should have been evicted by ttl=1s at now=104")
}

func TestTrackerOrderErrorInOrderedMode(t *testing.T) {
	tr := New(true, 0)
	rec := simplePositionRecord(1)
	require.NoError(t, tr.Update(rec, time.Unix(10, 0)))
	err := tr.Update(rec, time.Unix(5, 0))
	assert.ErrorIs(t, err, ErrOrderViolation)
}

func TestTrackerUnorderedAcceptsOutOfOrder(t *testing.T) {
	tr := New(false, 0)
	rec := simplePositionRecord(1)
	require.NoError(t, tr.Update(rec, time.Unix(10, 0)))
	require.NoError(t, tr.Update(rec, time.Unix(5, 0)))
}

func TestTrackerCreatedUpdatedDeletedEvents(t *testing.T) {
	tr := New(true, time.Second)
	var events []string
	tr.Subscribe(EventCreated, func(tk Track) { events = append(events, "CREATED:"+tk.NavStatus) })
	tr.Subscribe(EventUpdated, func(tk Track) { events = append(events, "UPDATED") })
	tr.Subscribe(EventDeleted, func(tk Track) { events = append(events, "DELETED") })

	rec := simplePositionRecord(42)
	require.NoError(t, tr.Update(rec, time.Unix(1, 0)))
	require.NoError(t, tr.Update(rec, time.Unix(2, 0)))
	tr.Cleanup(time.Unix(10, 0))

	require.Len(t, events, 3)
	assert.Contains(t, events[0], "CREATED")
	assert.Equal(t, "UPDATED", events[1])
	assert.Equal(t, "DELETED", events[2])
}

func TestTrackerNearest(t *testing.T) {
	tr := New(true, 0)
	require.NoError(t, tr.Update(simplePositionRecord(1), time.Unix(1, 0))) // lat 50, lon 10
	require.NoError(t, tr.Update(simplePositionRecord(2), time.Unix(2, 0))) // same point, different mmsi

	near := tr.Nearest(50, 10, 5)
	require.Len(t, near, 2)
	mmsis := map[uint32]bool{near[0].MMSI: true, near[1].MMSI: true}
	assert.True(t, mmsis[1] && mmsis[2])
}

func TestTrackerPopTrack(t *testing.T) {
	tr := New(true, 0)
	rec := simplePositionRecord(7)
	require.NoError(t, tr.Update(rec, time.Unix(1, 0)))
	tk, ok := tr.PopTrack(7)
	require.True(t, ok)
	assert.Equal(t, uint32(7), tk.MMSI)
	_, ok = tr.GetTrack(7)
	assert.False(t, ok)
}
