package armor

import (
	"fmt"
	"strconv"
	"strings"
)

// Checksum computes the NMEA 0183 XOR checksum over sentence: the XOR of
// every byte strictly between the leading '!' or '$' and the trailing '*'.
// It returns ok=false if neither delimiter is present.
func Checksum(sentence string) (sum uint8, ok bool) {
	start := strings.IndexAny(sentence, "!$")
	if start == -1 {
		return 0, false
	}
	end := strings.IndexByte(sentence[start:], '*')
	if end == -1 {
		return 0, false
	}
	end += start
	var x uint8
	for i := start + 1; i < end; i++ {
		x ^= sentence[i]
	}
	return x, true
}

// FormatChecksum renders sum as the two uppercase hex digits NMEA expects.
func FormatChecksum(sum uint8) string {
	return fmt.Sprintf("%02X", sum)
}

// ParseChecksum parses the two hex digits following '*' in sentence.
// Comparison against a computed checksum is case-insensitive, so callers
// should normalize with strings.ToUpper if comparing raw strings.
func ParseChecksum(hex string) (uint8, error) {
	hex = strings.TrimSpace(hex)
	v, err := strconv.ParseUint(hex, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("armor: invalid checksum hex %q: %w", hex, err)
	}
	return uint8(v), nil
}

// Verify checks whether sentence's trailing *HH checksum matches the
// computed XOR checksum of its body. It returns false, also, when the
// sentence has no checksum tag at all.
func Verify(sentence string) bool {
	star := strings.LastIndexByte(sentence, '*')
	if star == -1 || star+3 > len(sentence) {
		return false
	}
	expected, err := ParseChecksum(sentence[star+1 : star+3])
	if err != nil {
		return false
	}
	got, ok := Checksum(sentence)
	if !ok {
		return false
	}
	return got == expected
}
