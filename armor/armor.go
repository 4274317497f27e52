// Package armor implements the ITU-R M.1371 six-bit ASCII "armoring" used
// to carry AIS payload bit vectors inside printable NMEA 0183 sentences,
// and the sentence XOR checksum that protects them.
package armor

import (
	"strings"

	"github.com/tormol/aisgo/bitvec"
)

// isArmorByte reports whether b is one of the 64 characters of the armor
// alphabet: 0x30-0x57 or 0x60-0x77.
func isArmorByte(b byte) bool {
	return (b >= 0x30 && b <= 0x57) || (b >= 0x60 && b <= 0x77)
}

// decodeByte converts one armor character to its 6-bit value. Callers must
// have validated b with isArmorByte first.
func decodeByte(b byte) uint8 {
	v := b - 0x30
	if v > 40 {
		v -= 8
	}
	return v & 0x3F
}

// encodeValue converts a 6-bit value (0-63) to its armor character.
func encodeValue(v uint8) byte {
	v &= 0x3F
	if v > 39 {
		return v + 0x38
	}
	return v + 0x30
}

// Decode de-armors an ASCII payload into a bit vector, stripping fillBits
// padding bits off the tail. It fails with ErrInvalidPayload if armored
// contains a byte outside the armor alphabet.
func Decode(armored string, fillBits int) (*bitvec.Vector, error) {
	v := bitvec.New(len(armored) * 6)
	for i := 0; i < len(armored); i++ {
		b := armored[i]
		if !isArmorByte(b) {
			return nil, ErrInvalidPayload
		}
		v.PushUint(uint64(decodeByte(b)), 6)
	}
	if fillBits < 0 {
		fillBits = 0
	}
	total := v.Len()
	if fillBits > total {
		fillBits = total
	}
	return v.Slice(0, total-fillBits), nil
}

// Encode armors bits into a printable payload, padding with zero bits to
// the next 6-bit boundary and reporting how many padding bits (0-5) were
// added.
func Encode(bits *bitvec.Vector) (armored string, fillBits int) {
	padded := bitvec.New(bits.Len())
	padded.Append(bits)
	fillBits = padded.PadToBoundary(6)

	n := padded.Len() / 6
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		val := padded.GetUint(i*6, i*6+6)
		sb.WriteByte(encodeValue(uint8(val)))
	}
	return sb.String(), fillBits
}
