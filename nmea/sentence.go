// Package nmea parses NMEA 0183 "!AIVDM/!AIVDO" sentences, their optional
// NMEA 4.10 tag-block envelope, and Gatehouse proprietary wrapper
// sentences. It validates structure and checksums but leaves payload
// de-armoring and message decoding to the armor and ais packages.
package nmea

import (
	"strconv"
	"strings"

	"github.com/tormol/aisgo/armor"
)

const maxSentenceLen = 82

// Sentence holds the fields of one parsed "!AIVDM/!AIVDO" sentence (§3).
type Sentence struct {
	Talker         TalkerID
	Formatter      string // "VDM" or "VDO"
	FragmentCount  int
	FragmentNumber int
	SequenceID     int // -1 when absent
	Channel        byte
	Payload        string
	FillBits       int
	HasChecksum    bool
	ChecksumOK     bool
	Raw            string
}

// isArmorByte mirrors armor.isArmorByte; duplicated here (unexported) so
// the sentence parser can report NonPrintable without decoding the
// payload, matching §4.4 item 4.
func isArmorByte(b byte) bool {
	return (b >= 0x30 && b <= 0x57) || (b >= 0x60 && b <= 0x77)
}

// ParseSentence parses one AIS sentence line (no trailing newline expected,
// though a trailing "\r\n" is tolerated and stripped). When strict is true,
// a checksum mismatch (or missing checksum) is reported as
// ErrInvalidChecksum instead of being recorded on ChecksumOK.
func ParseSentence(line string, strict bool) (Sentence, error) {
	line = strings.TrimRight(line, "\r\n")
	raw := line

	star := strings.IndexByte(line, '*')
	hasChecksum := star != -1
	body := line
	var checksumHex string
	if hasChecksum {
		body = line[:star]
		if star+3 <= len(line) {
			checksumHex = line[star+1 : star+3]
		}
	}

	fields := strings.Split(body, ",")
	if len(fields) != 7 {
		return Sentence{}, ErrInvalidNMEA
	}
	header := fields[0]
	if len(header) != 6 || header[0] != '!' {
		return Sentence{}, ErrInvalidNMEA
	}
	formatter := header[3:6]
	if formatter != "VDM" && formatter != "VDO" {
		return Sentence{}, ErrInvalidNMEA
	}
	talker := ParseTalkerID(header[1:3])

	cntStr, numStr, seqStr, chStr, payload, fillStr := fields[1], fields[2], fields[3], fields[4], fields[5], fields[6]
	if cntStr == "" || numStr == "" || payload == "" || fillStr == "" {
		return Sentence{}, ErrInvalidNMEA
	}
	if len(line) > maxSentenceLen {
		return Sentence{}, ErrInvalidNMEA
	}

	count, err := strconv.Atoi(cntStr)
	if err != nil || count < 1 || count > 9 {
		return Sentence{}, ErrInvalidNMEA
	}
	number, err := strconv.Atoi(numStr)
	if err != nil || number < 1 || number > 9 {
		return Sentence{}, ErrInvalidNMEA
	}
	seqID := -1
	if seqStr != "" {
		seqID, err = strconv.Atoi(seqStr)
		if err != nil || seqID < 0 || seqID > 9 {
			return Sentence{}, ErrInvalidNMEA
		}
	}
	var channel byte
	switch chStr {
	case "":
		channel = 0
	case "1":
		channel = 'A'
	case "2":
		channel = 'B'
	case "A", "B":
		channel = chStr[0]
	default:
		return Sentence{}, ErrInvalidNMEA
	}
	for i := 0; i < len(payload); i++ {
		if !isArmorByte(payload[i]) {
			return Sentence{}, ErrNonPrintable
		}
	}
	fill, err := strconv.Atoi(fillStr)
	if err != nil || fill < 0 || fill > 5 {
		return Sentence{}, ErrInvalidNMEA
	}

	checksumOK := false
	if hasChecksum && len(checksumHex) == 2 {
		expected, err := armor.ParseChecksum(checksumHex)
		if err == nil {
			got, ok := armor.Checksum(body + "*" + checksumHex)
			checksumOK = ok && got == expected
		}
	}
	if strict && !checksumOK {
		return Sentence{}, ErrInvalidChecksum
	}

	return Sentence{
		Talker:         talker,
		Formatter:      formatter,
		FragmentCount:  count,
		FragmentNumber: number,
		SequenceID:     seqID,
		Channel:        channel,
		Payload:        payload,
		FillBits:       fill,
		HasChecksum:    hasChecksum,
		ChecksumOK:     checksumOK,
		Raw:            raw,
	}, nil
}
