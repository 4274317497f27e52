package multipart

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tormol/aisgo/nmea"
)

func mustParse(t *testing.T, line string) nmea.Sentence {
	t.Helper()
	s, err := nmea.ParseSentence(line, false)
	require.NoError(t, err)
	return s
}

func TestSinglePartEmitsImmediately(t *testing.T) {
	r := New(0)
	s := mustParse(t, "!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C")
	msg := r.Accept(s)
	require.NotNil(t, msg)
	assert.Equal(t, s.Payload, msg.Payload)
}

func TestMultipartReassembly(t *testing.T) {
	r := New(0)
	f1 := mustParse(t, "!AIVDM,2,1,1,A,55?MbV02;H;s<HtKR20EHE:0@T4@Dn2222222216L961O5Gf0NSQEp6ClRp8,0*1C")
	f2 := mustParse(t, "!AIVDM,2,2,1,A,88888888880,2*25")

	require.Nil(t, r.Accept(f1))
	msg := r.Accept(f2)
	require.NotNil(t, msg)
	assert.Equal(t, f1.Payload+f2.Payload, msg.Payload)
	assert.Equal(t, 2, msg.FillBits)
	assert.True(t, msg.ChecksumValid)
}

func TestReassemblerOrderIndependence(t *testing.T) {
	f1 := mustParse(t, "!AIVDM,2,1,1,A,55?MbV02;H;s<HtKR20EHE:0@T4@Dn2222222216L961O5Gf0NSQEp6ClRp8,0*1C")
	f2 := mustParse(t, "!AIVDM,2,2,1,A,88888888880,2*25")

	order := rand.Perm(2)
	fragments := []nmea.Sentence{f1, f2}
	r := New(0)
	var got *Message
	for _, idx := range order {
		if m := r.Accept(fragments[idx]); m != nil {
			got = m
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, f1.Payload+f2.Payload, got.Payload)
}

func TestAssembleFragmentsErrors(t *testing.T) {
	_, err := AssembleFragments(nil)
	assert.ErrorIs(t, err, ErrMissingMultipart)

	f1 := mustParse(t, "!AIVDM,2,1,1,A,55?MbV02;H;s<HtKR20EHE:0@T4@Dn2222222216L961O5Gf0NSQEp6ClRp8,0*1C")
	_, err = AssembleFragments([]nmea.Sentence{f1})
	assert.ErrorIs(t, err, ErrMissingMultipart)
}

func TestGroupReassembler(t *testing.T) {
	g := NewGroupReassembler()
	s1 := mustParse(t, "!AIVDM,1,1,,A,15MrVH0000KH<:V:NtBLoqFP2H9:,0*2F")
	s2 := mustParse(t, "!AIVDM,1,1,,A,15MrVH0000KH<:V:NtBLoqFP2H9:,0*2F")

	out := g.Accept(s1, nmea.Group{Num: 1, Total: 2, ID: 73874})
	assert.Nil(t, out)
	out = g.Accept(s2, nmea.Group{Num: 2, Total: 2, ID: 73874})
	require.NotNil(t, out)
	assert.Len(t, out, 2)
}

func TestDuplicateFilter(t *testing.T) {
	df := NewDuplicateFilter(time.Second)
	defer df.Close()
	assert.False(t, df.IsDuplicate("!AIVDM,1,1,,A,X,0*00"))
	assert.True(t, df.IsDuplicate("!AIVDM,1,1,,A,X,0*00"))
}
