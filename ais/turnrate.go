package ais

import "math"

// DecodeTurn converts the type 1/2/3 8-bit signed "turn" field into a
// degrees-per-minute rate, per §4.7: raw +-127 means "turning hard
// right/left, no rate given", -128 means "not available", anything else
// is the ITU-R M.1371 square-root encoding inverted.
func DecodeTurn(raw int8) (degPerMin float64, available bool, noInfo bool) {
	switch raw {
	case -128:
		return 0, false, true
	case 127:
		return 720, true, false // "turning right at more than 5deg/30s", no rate given
	case -127:
		return -720, true, false
	default:
		v := float64(raw) / 4.733
		v = v * v
		if raw < 0 {
			v = -v
		}
		return math.Round(v*10) / 10, true, false
	}
}

// EncodeTurn inverts DecodeTurn, rounding to the nearest raw value the
// 8-bit field can represent. Round-trips exactly at the granularities
// DecodeTurn can itself produce.
func EncodeTurn(degPerMin float64, available bool) int8 {
	if !available {
		return -128
	}
	if degPerMin >= 720 {
		return 127
	}
	if degPerMin <= -720 {
		return -127
	}
	sign := 1.0
	if degPerMin < 0 {
		sign = -1
		degPerMin = -degPerMin
	}
	raw := sign * 4.733 * math.Sqrt(degPerMin)
	r := int64(math.Round(raw))
	if r > 126 {
		r = 126
	}
	if r < -126 {
		r = -126
	}
	return int8(r)
}
