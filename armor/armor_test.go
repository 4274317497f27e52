package armor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tormol/aisgo/bitvec"
)

func TestDecodeKnownPayload(t *testing.T) {
	v, err := Decode("15M67FC000G?ufbE`FepT@3n00Sa", 0)
	require.NoError(t, err)
	assert.Equal(t, 168, v.Len())
}

func TestDecodeInvalidByte(t *testing.T) {
	_, err := Decode("15M\x1F67", 0)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestEncodeRoundTrip(t *testing.T) {
	orig, err := Decode("15M67FC000G?ufbE`FepT@3n00Sa", 0)
	require.NoError(t, err)

	armored, fill := Encode(orig)
	assert.Equal(t, 0, fill)
	assert.Equal(t, "15M67FC000G?ufbE`FepT@3n00Sa", armored)
}

func TestEncodeProducesFillBits(t *testing.T) {
	v := bitvec.New(5)
	v.PushUint(0b10101, 5)
	armored, fill := Encode(v)
	assert.Equal(t, 1, fill)
	assert.Len(t, armored, 1)

	back, err := Decode(armored, fill)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b10101), back.GetUint(0, 5))
}

func TestChecksumCompute(t *testing.T) {
	sentence := "!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C"
	sum, ok := Checksum(sentence)
	require.True(t, ok)
	assert.Equal(t, "5C", FormatChecksum(sum))
	assert.True(t, Verify(sentence))
}

func TestChecksumMismatch(t *testing.T) {
	sentence := "!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*FF"
	assert.False(t, Verify(sentence))
}

// Property: armor round trip is exact for any bit vector length (the fill
// bits strip the padding back off), and fill bits stay 0..5.
func TestArmorRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		nBits := rapid.IntRange(0, 60).Draw(rt, "nBits")
		v := bitvec.New(nBits)
		for i := 0; i < nBits; i++ {
			bit := rapid.Boolean().Draw(rt, "bit")
			v.PushBool(bit)
		}
		armored, fill := Encode(v)
		require.GreaterOrEqual(t, fill, 0)
		require.LessOrEqual(t, fill, 5)

		decoded, err := Decode(armored, fill)
		require.NoError(t, err)
		require.Equal(t, v.Len(), decoded.Len())
		for i := 0; i < v.Len(); i++ {
			require.Equal(t, v.GetBool(i), decoded.GetBool(i), "bit %d", i)
		}
	})
}
