package nmea

import (
	"fmt"
	"strconv"

	"github.com/tormol/aisgo/armor"
)

// FormatSentence renders one "!AIVDM/!AIVDO" sentence line, the inverse
// of ParseSentence. channel of 0 omits the channel field, matching how
// ParseSentence treats an empty channel field as absent.
func FormatSentence(talker TalkerID, formatter string, fragmentCount, fragmentNumber, sequenceID int, channel byte, payload string, fillBits int) string {
	seq := ""
	if sequenceID >= 0 {
		seq = strconv.Itoa(sequenceID)
	}
	ch := ""
	if channel != 0 {
		ch = string(channel)
	}
	body := fmt.Sprintf("!%s%s,%d,%d,%s,%s,%s,%d",
		talker.String(), formatter, fragmentCount, fragmentNumber, seq, ch, payload, fillBits)
	sum, _ := armor.Checksum(body + "*")
	return body + "*" + armor.FormatChecksum(sum) + "\r\n"
}

// maxFragmentPayload is the largest armored payload that fits in one
// fragment, matching the 60-char ceiling the encoder contract (§4.7)
// sets. It applies to single-sentence messages too: a longer payload is
// always split.
const maxFragmentPayload = 60

// FormatMessage splits an armored payload into one or more "!AIVDM/!AIVDO"
// sentence lines, fragmenting at maxFragmentPayload armored characters per
// line. fillBits applies to the last fragment only, matching how the
// reassembler reads it back. sequenceID is only emitted when more than one
// fragment results; pass it as a small rolling counter so consecutive
// multi-part messages don't share a sequence_id on the same channel.
func FormatMessage(talker TalkerID, formatter string, payload string, fillBits int, sequenceID int, channel byte) []string {
	if len(payload) <= maxFragmentPayload {
		return []string{FormatSentence(talker, formatter, 1, 1, -1, channel, payload, fillBits)}
	}
	count := (len(payload) + maxFragmentPayload - 1) / maxFragmentPayload
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		start := i * maxFragmentPayload
		end := start + maxFragmentPayload
		if end > len(payload) {
			end = len(payload)
		}
		fb := 0
		if i == count-1 {
			fb = fillBits
		}
		lines = append(lines, FormatSentence(talker, formatter, count, i+1, sequenceID, channel, payload[start:end], fb))
	}
	return lines
}
