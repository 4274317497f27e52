package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSentenceBasic(t *testing.T) {
	s, err := ParseSentence("!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C", false)
	require.NoError(t, err)
	assert.Equal(t, TalkerAI, s.Talker)
	assert.Equal(t, "VDM", s.Formatter)
	assert.Equal(t, 1, s.FragmentCount)
	assert.Equal(t, 1, s.FragmentNumber)
	assert.Equal(t, -1, s.SequenceID)
	assert.Equal(t, byte('B'), s.Channel)
	assert.True(t, s.ChecksumOK)
}

func TestParseSentenceChannelDigits(t *testing.T) {
	s, err := ParseSentence("!AIVDM,1,1,,1,15M67FC000G?ufbE`FepT@3n00Sa,0*5C", false)
	require.NoError(t, err)
	assert.Equal(t, byte('A'), s.Channel)
}

func TestParseSentenceRejectsBadFieldCount(t *testing.T) {
	_, err := ParseSentence("!AIVDM,1,1,,B,PAYLOAD*00", false)
	assert.ErrorIs(t, err, ErrInvalidNMEA)
}

func TestParseSentenceRejectsBadFormatter(t *testing.T) {
	_, err := ParseSentence("!AIXYZ,1,1,,B,PAYLOAD,0*00", false)
	assert.ErrorIs(t, err, ErrInvalidNMEA)
}

func TestParseSentenceNonPrintablePayload(t *testing.T) {
	_, err := ParseSentence("!AIVDM,1,1,,B,\x1F\x1F,0*00", false)
	assert.ErrorIs(t, err, ErrNonPrintable)
}

func TestParseSentenceChecksumMismatchNonStrict(t *testing.T) {
	s, err := ParseSentence("!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*FF", false)
	require.NoError(t, err)
	assert.False(t, s.ChecksumOK)
}

func TestParseSentenceChecksumMismatchStrict(t *testing.T) {
	_, err := ParseSentence("!AIVDM,1,1,,B,15NG6V0P01G?cFhE`R2IU?wn28R>,0*FF", true)
	assert.ErrorIs(t, err, ErrInvalidChecksum)
}

func TestParseSentenceIgnoresTrailingProprietarySuffix(t *testing.T) {
	s, err := ParseSentence("!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C,raishub,1342569600", false)
	require.NoError(t, err)
	assert.True(t, s.ChecksumOK)
}

func TestParseLineTagBlock(t *testing.T) {
	l, err := ParseLine(`\g:1-2-73874*A\!AIVDM,1,1,,A,15MrVH0000KH<:V:NtBLoqFP2H9:,0*2F`, false)
	require.NoError(t, err)
	require.NotNil(t, l.TagBlock)
	require.True(t, l.TagBlock.HasGroup)
	assert.Equal(t, Group{Num: 1, Total: 2, ID: 73874}, l.TagBlock.Group)
	require.NotNil(t, l.Sentence)
}

func TestParseLineTagBlockOnly(t *testing.T) {
	l, err := ParseLine(`\s:Satellite,c:1428452267*52\`, false)
	require.NoError(t, err)
	require.NotNil(t, l.TagBlock)
	assert.Nil(t, l.Sentence)
	assert.Equal(t, "Satellite", l.TagBlock.Source)
}

func TestParseLineGatehouse(t *testing.T) {
	l, err := ParseLine("$PGHP,1,2021,3,14,10,9,26,123,1,0,1,219,10*31", false)
	require.NoError(t, err)
	require.NotNil(t, l.Gatehouse)
	assert.Equal(t, 2021, l.Gatehouse.Year)
	assert.Equal(t, "219", l.Gatehouse.Country)
}
