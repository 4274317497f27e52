package ais

// MIDCategory classifies an MMSI by its structural prefix, per ITU-R
// M.585 (ship stations carry a 3-digit Maritime Identification Digits
// code as their first three digits).
type MIDCategory int

const (
	MIDShip MIDCategory = iota
	MIDCoastStation
	MIDSAR
	MIDAtoN
	MIDCraft
	MIDMOB
	MIDEPIRB
	MIDUnknown
)

func (c MIDCategory) String() string {
	switch c {
	case MIDShip:
		return "Ship"
	case MIDCoastStation:
		return "CoastStation"
	case MIDSAR:
		return "SAR"
	case MIDAtoN:
		return "AidToNavigation"
	case MIDCraft:
		return "Craft"
	case MIDMOB:
		return "ManOverboard"
	case MIDEPIRB:
		return "EPIRB"
	default:
		return "Unknown"
	}
}

// MID decomposes mmsi into a code and a coarse MIDCategory. For ship and
// coast station MMSIs the code is the raw 3-digit Maritime Identification
// Digits block; for the other formats it is the format's leading prefix
// (111, 98, 99, 972 or 974), not the MID. This is the shape storage/shipDB.go's
// Mmsi.Owner()/CountryCode() implements — without a name table, since
// spec.md puts country-code lookup tables out of scope: the decomposition
// itself is cheap and useful independent of a name lookup.
func MID(mmsi uint32) (code int, category MIDCategory) {
	switch {
	case mmsi >= 200000000 && mmsi < 800000000:
		return int(mmsi / 1000000), MIDShip
	case mmsi/10000000 == 0:
		return int(mmsi / 10000), MIDCoastStation
	case mmsi/1000000 == 111:
		return 111, MIDSAR
	case mmsi/10000000 == 98:
		return int(mmsi / 10000000), MIDCraft
	case mmsi/10000000 == 99:
		return int(mmsi / 10000000), MIDAtoN
	case mmsi/1000000 == 972:
		return 972, MIDMOB
	case mmsi/1000000 == 974:
		return 974, MIDEPIRB
	default:
		return 0, MIDUnknown
	}
}
