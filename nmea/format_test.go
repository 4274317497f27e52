package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSentenceRoundTripsThroughParse(t *testing.T) {
	line := FormatSentence(TalkerAI, "VDM", 1, 1, -1, 'B', "15M67FC000G?ufbE`FepT@3n00Sa", 0)
	s, err := ParseSentence(line, true)
	require.NoError(t, err)
	assert.Equal(t, TalkerAI, s.Talker)
	assert.Equal(t, "VDM", s.Formatter)
	assert.Equal(t, byte('B'), s.Channel)
	assert.Equal(t, "15M67FC000G?ufbE`FepT@3n00Sa", s.Payload)
	assert.True(t, s.ChecksumOK)
}

func TestFormatSentenceOmitsAbsentSequenceAndChannel(t *testing.T) {
	line := FormatSentence(TalkerAI, "VDM", 1, 1, -1, 0, "15M67FC000G?ufbE`FepT@3n00Sa", 0)
	s, err := ParseSentence(line, true)
	require.NoError(t, err)
	assert.Equal(t, -1, s.SequenceID)
	assert.Equal(t, byte(0), s.Channel)
}

func TestFormatMessageSplitsLongPayloadIntoFragments(t *testing.T) {
	payload := ""
	for i := 0; i < 130; i++ {
		payload += "0"
	}
	lines := FormatMessage(TalkerAI, "VDM", payload, 2, 3, 'A')
	require.Len(t, lines, 3)

	var reassembled string
	for i, line := range lines {
		s, err := ParseSentence(line, true)
		require.NoError(t, err)
		assert.Equal(t, 3, s.FragmentCount)
		assert.Equal(t, i+1, s.FragmentNumber)
		assert.Equal(t, 3, s.SequenceID)
		reassembled += s.Payload
		if i == len(lines)-1 {
			assert.Equal(t, 2, s.FillBits)
		} else {
			assert.Equal(t, 0, s.FillBits)
		}
	}
	assert.Equal(t, payload, reassembled)
}

func TestFormatMessageSingleFragmentOmitsSequenceID(t *testing.T) {
	lines := FormatMessage(TalkerAI, "VDM", "15M67FC000G?ufbE`FepT@3n00Sa", 0, 7, 0)
	require.Len(t, lines, 1)
	s, err := ParseSentence(lines[0], true)
	require.NoError(t, err)
	assert.Equal(t, 1, s.FragmentCount)
	assert.Equal(t, -1, s.SequenceID)
}
