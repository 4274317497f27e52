package tracker

import (
	"time"

	"github.com/tormol/aisgo/ais"
)

// Track is the projected, merged view of every message received for one
// MMSI — the subset of AISTrack's schema §4.10 names: position/movement
// fields from dynamic reports (types 1/2/3/9/18/19/27) and identity
// fields from static reports (types 5/19/24), merged non-destructively
// as new messages of either kind arrive.
type Track struct {
	MMSI     uint32
	MIDCode  int
	Category ais.MIDCategory

	HasPosition bool
	Lat         float64
	Lon         float64
	Course      float64
	Speed       float64
	Heading     uint16
	NavStatus   string
	Accuracy    bool
	Turn        float64 // degrees/minute, via ais.DecodeTurn; 0 when not available
	TurnKnown   bool

	HasIdentity bool
	ShipName    string
	Callsign    string
	Destination string
	ShipType    string
	Draught     float64
	ToBow       uint16
	ToStern     uint16
	ToPort      uint16
	ToStarboard uint16
	EPFD        string
	IMO         uint32

	LastUpdated time.Time
}

// newTrack creates an empty Track for mmsi, filling in the MID
// decomposition immediately since it's derived from the key alone.
func newTrack(mmsi uint32) Track {
	code, cat := ais.MID(mmsi)
	return Track{MMSI: mmsi, MIDCode: code, Category: cat}
}

// isDynamicType reports whether msgType carries the position/movement fields
// a Track tracks.
func isDynamicType(msgType int) bool {
	switch msgType {
	case 1, 2, 3, 9, 18, 19, 27:
		return true
	default:
		return false
	}
}

// isStaticType reports whether msgType carries the identity fields a Track
// tracks.
func isStaticType(msgType int) bool {
	switch msgType {
	case 5, 19, 24:
		return true
	default:
		return false
	}
}

// project merges rec's fields onto t, "copying fields present in
// AISTrack's schema" per §4.10 — only the columns rec.MsgType's table
// actually carries are touched, so a dynamic update never clobbers
// identity fields and vice versa.
func (t *Track) project(rec *ais.Record) {
	if isDynamicType(rec.MsgType) {
		t.HasPosition = true
		if v, ok := rec.Get("lat"); ok {
			t.Lat = v.Float
		}
		if v, ok := rec.Get("lon"); ok {
			t.Lon = v.Float
		}
		if v, ok := rec.Get("course"); ok {
			t.Course = v.Float
		}
		if v, ok := rec.Get("speed"); ok {
			t.Speed = v.Float
		}
		if v, ok := rec.Get("heading"); ok {
			t.Heading = uint16(v.Raw)
		}
		if v, ok := rec.Get("status"); ok {
			t.NavStatus = v.Text
		}
		if v, ok := rec.Get("accuracy"); ok {
			t.Accuracy = v.Bool
		}
		if v, ok := rec.Get("turn"); ok {
			t.Turn = v.Float
			t.TurnKnown = v.Bool
		}
	}
	if isStaticType(rec.MsgType) {
		t.HasIdentity = true
		if v, ok := rec.Get("shipname"); ok && v.Text != "" {
			t.ShipName = v.Text
		}
		if v, ok := rec.Get("callsign"); ok && v.Text != "" {
			t.Callsign = v.Text
		}
		if v, ok := rec.Get("destination"); ok && v.Text != "" {
			t.Destination = v.Text
		}
		if v, ok := rec.Get("ship_type"); ok {
			t.ShipType = v.Text
		}
		if v, ok := rec.Get("draught"); ok {
			t.Draught = v.Float
		}
		if v, ok := rec.Get("to_bow"); ok {
			t.ToBow = uint16(v.Raw)
		}
		if v, ok := rec.Get("to_stern"); ok {
			t.ToStern = uint16(v.Raw)
		}
		if v, ok := rec.Get("to_port"); ok {
			t.ToPort = uint16(v.Raw)
		}
		if v, ok := rec.Get("to_starboard"); ok {
			t.ToStarboard = uint16(v.Raw)
		}
		if v, ok := rec.Get("epfd"); ok {
			t.EPFD = v.Text
		}
		if v, ok := rec.Get("imo"); ok {
			t.IMO = uint32(v.Raw)
		}
	}
}
