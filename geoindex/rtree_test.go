package geoindex

import (
	"math/rand"
	"testing"
)

var mmsiCount uint32

type testPoint struct {
	mmsi uint32
	lat  float64
	lon  float64
}

func randSign() float64 {
	if rand.Intn(2) == 0 {
		return -1
	}
	return 1
}

func randPoint() testPoint {
	lat := float64(rand.Int31n(90)) * randSign()
	lon := float64(rand.Int31n(180)) * randSign()
	mmsi := mmsiCount
	mmsiCount++
	return testPoint{mmsi, lat, lon}
}

func createPoints(n int) []testPoint {
	mmsiCount = 0
	points := make([]testPoint, n)
	for i := range points {
		points[i] = randPoint()
	}
	return points
}

func TestInsertAndWithin(t *testing.T) {
	num := 2000
	idx := New()
	points := createPoints(num)
	for _, p := range points {
		if err := idx.Insert(p.lat, p.lon, p.mmsi); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	if idx.Len() != num {
		t.Fatalf("wrong count: want %d got %d", num, idx.Len())
	}

	found := idx.Within(-90, -180, 90, 180)
	if len(found) != num {
		t.Fatalf("within-all found %d, want %d", len(found), num)
	}

	badCoords := []testPoint{
		{mmsiCount + 1, 91, 1},
		{mmsiCount + 2, -91, 1},
		{mmsiCount + 3, 1, 181},
		{mmsiCount + 4, 1, -181},
	}
	for _, b := range badCoords {
		if err := idx.Insert(b.lat, b.lon, b.mmsi); err == nil {
			t.Errorf("insert of illegal coordinate (%v,%v) should have failed", b.lat, b.lon)
		}
	}
}

func TestWithinSmallSet(t *testing.T) {
	idx := New()
	points := []testPoint{
		{0, 0, 0},
		{1, 10, 10},
		{2, 10, -10},
		{3, -10, 10},
		{4, -10, -10},
		{5, 2, 2},
		{6, 50, 0},
		{7, 0, 50},
		{8, 5, 5},
	}
	for _, p := range points {
		if err := idx.Insert(p.lat, p.lon, p.mmsi); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	cases := []struct {
		minLat, minLon, maxLat, maxLon float64
		want                           []uint32
	}{
		{-10, -10, 10, 10, []uint32{0, 1, 2, 3, 4, 5, 8}},
		{-50, -50, 50, 50, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{0, 0, 10, 10, []uint32{0, 1, 5, 8}},
		{80, 80, 80, 80, nil},
	}
	for _, c := range cases {
		got := idx.Within(c.minLat, c.minLon, c.maxLat, c.maxLon)
		if len(got) != len(c.want) {
			t.Errorf("rect %v: got %d matches, want %d (%v)", c, len(got), len(c.want), got)
			continue
		}
		for _, w := range c.want {
			found := false
			for _, h := range got {
				if h.MMSI == w {
					found = true
				}
			}
			if !found {
				t.Errorf("rect %v: expected mmsi %d in results", c, w)
			}
		}
	}
}

func TestMoveKeepsCount(t *testing.T) {
	idx := New()
	num := 500
	points := createPoints(num)
	for _, p := range points {
		if err := idx.Insert(p.lat, p.lon, p.mmsi); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	moved := createPoints(num)
	for i, p := range points {
		if err := idx.Move(p.mmsi, p.lat, p.lon, moved[i].lat, moved[i].lon); err != nil {
			t.Fatalf("move failed: %v", err)
		}
	}
	if idx.Len() != num {
		t.Fatalf("wrong count after move: want %d got %d", num, idx.Len())
	}
	if len(idx.Within(-90, -180, 90, 180)) != num {
		t.Fatalf("within-all after move found %d, want %d", len(idx.Within(-90, -180, 90, 180)), num)
	}
}

func TestDeleteSingleLeaf(t *testing.T) {
	idx := New()
	if err := idx.Insert(0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := idx.Insert(1, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := idx.Move(1, 1, 1, -1, -1); err != nil {
		t.Fatalf("move on near-empty tree failed: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", idx.Len())
	}
}

func TestNearestOrdersByDistance(t *testing.T) {
	idx := New()
	idx.Insert(0, 0, 1)
	idx.Insert(0, 1, 2)
	idx.Insert(0, 5, 3)
	idx.Insert(10, 10, 4)

	hits := idx.Nearest(0, 0, 2)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].MMSI != 1 || hits[1].MMSI != 2 {
		t.Fatalf("unexpected order: %+v", hits)
	}
}

func TestNearestEmptyIndex(t *testing.T) {
	idx := New()
	if hits := idx.Nearest(0, 0, 5); hits != nil {
		t.Fatalf("expected nil, got %+v", hits)
	}
}
