package stream

import "bytes"

// firstLineInBuffer extracts the first '!'-prefixed AIS NMEA 0183
// sentence out of an accumulation buffer, adapted from
// nmeais/buffers.go's FirstSentenceInBuffer: bytes before the first '!'
// are noise and are skipped, the returned line always ends in "\r\n"
// regardless of whether the input used "\n" alone, and an incomplete
// trailing line is folded into incomplete for the next call.
//
// next is the number of bytes of bufferSlice consumed, skipped noise
// included; -1 means none of it formed a complete line and all of it was
// appended to incomplete (or, with incomplete empty and no '!' in it,
// dropped as noise).
func firstLineInBuffer(incomplete, bufferSlice []byte) (line []byte, next int) {
	next = -1
	skipped := 0
	if len(incomplete) == 0 {
		start := bytes.IndexByte(bufferSlice, '!')
		if start == -1 {
			return nil, -1
		}
		skipped = start
		bufferSlice = bufferSlice[start:]
	}

	end := bytes.IndexByte(bufferSlice, '\n')
	if end == -1 {
		return append(incomplete, bufferSlice...), -1
	}
	if end != 0 && bufferSlice[end-1] == '\r' {
		return append(incomplete, bufferSlice[:end+1]...), skipped + end + 1
	}
	cpy := append(incomplete, bufferSlice[:end]...)
	cpy = append(cpy, '\r', '\n')
	return cpy, skipped + end + 1
}
