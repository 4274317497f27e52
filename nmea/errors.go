package nmea

import "errors"

// Errors surfaced by the sentence and tag-block parsers (§7).
var (
	// ErrInvalidNMEA reports a structural error: wrong field count, a blank
	// required field, an oversized payload, or an unrecognized formatter.
	ErrInvalidNMEA = errors.New("nmea: invalid sentence")
	// ErrInvalidChecksum is only returned when the caller asked for strict
	// mode; otherwise a checksum mismatch is recorded on Sentence.ChecksumOK.
	ErrInvalidChecksum = errors.New("nmea: checksum mismatch")
	// ErrNonPrintable reports a payload byte outside the armor alphabet.
	ErrNonPrintable = errors.New("nmea: non-printable byte in payload")
)
