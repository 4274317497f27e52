package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPushGetUint(t *testing.T) {
	v := New(8)
	v.PushUint(0x1A, 8)
	require.Equal(t, 8, v.Len())
	assert.Equal(t, uint64(0x1A), v.GetUint(0, 8))
}

func TestPushGetInt(t *testing.T) {
	v := New(8)
	v.PushInt(-5, 8)
	assert.Equal(t, int64(-5), v.GetInt(0, 8))

	v2 := New(8)
	v2.PushInt(5, 8)
	assert.Equal(t, int64(5), v2.GetInt(0, 8))
}

func TestGetOutOfRangeDefaultsToZero(t *testing.T) {
	v := New(4)
	v.PushUint(0xF, 4)
	assert.Equal(t, uint64(0), v.GetUint(0, 20))
	assert.Equal(t, int64(0), v.GetInt(0, 20))
}

func TestText6RoundTripAndTrim(t *testing.T) {
	v := New(0)
	v.PushText6("EVER DIADEM", 20*6)
	got := v.GetText6(0, 20*6)
	assert.Equal(t, "EVER DIADEM", got)
}

func TestText6TrailingAtTrimmed(t *testing.T) {
	v := New(0)
	v.PushUint(uint64(sixBitEncode('A')), 6)
	v.PushUint(0, 6) // '@'
	v.PushUint(0, 6) // '@'
	assert.Equal(t, "A", v.GetText6(0, 18))
}

func TestSliceAndAppend(t *testing.T) {
	v := New(0)
	v.PushUint(0b1010, 4)
	v.PushUint(0b0101, 4)
	s := v.Slice(4, 8)
	assert.Equal(t, uint64(0b0101), s.GetUint(0, 4))

	joined := New(0)
	joined.Append(v.Slice(0, 4)).Append(v.Slice(4, 8))
	assert.Equal(t, uint64(0b1010), joined.GetUint(0, 4))
	assert.Equal(t, uint64(0b0101), joined.GetUint(4, 8))
}

func TestPadToBoundary(t *testing.T) {
	v := New(0)
	v.PushUint(1, 5)
	pad := v.PadToBoundary(6)
	assert.Equal(t, 1, pad)
	assert.Equal(t, 6, v.Len())
}

// Property: any unsigned value written at a given width round-trips exactly.
func TestUintRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		width := rapid.IntRange(1, 32).Draw(rt, "width")
		maxVal := uint64(1)<<uint(width) - 1
		value := rapid.Uint64Range(0, maxVal).Draw(rt, "value")

		v := New(width)
		v.PushUint(value, width)
		require.Equal(t, value, v.GetUint(0, width))
	})
}

// Property: signed round-trip with correct sign extension.
func TestIntRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		width := rapid.IntRange(2, 32).Draw(rt, "width")
		lo := -(int64(1) << uint(width-1))
		hi := int64(1)<<uint(width-1) - 1
		value := rapid.Int64Range(lo, hi).Draw(rt, "value")

		v := New(width)
		v.PushInt(value, width)
		require.Equal(t, value, v.GetInt(0, width))
	})
}
