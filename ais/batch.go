package ais

import (
	"github.com/tormol/aisgo/armor"
	"github.com/tormol/aisgo/multipart"
	"github.com/tormol/aisgo/nmea"
)

// DecodeSentences reassembles and decodes one or more NMEA sentences in
// a single call, mirroring pyais.decode's batch convenience: pass every
// fragment of a multipart message (in any order) and get back the
// decoded Record. A single complete sentence works the same way.
func DecodeSentences(sentences ...nmea.Sentence) (*Record, error) {
	if len(sentences) == 1 {
		s := sentences[0]
		if s.FragmentCount <= 1 {
			bits, err := armor.Decode(s.Payload, s.FillBits)
			if err != nil {
				return nil, err
			}
			return Decode(bits)
		}
	}
	msg, err := multipart.AssembleFragments(sentences)
	if err != nil {
		return nil, err
	}
	bits, err := armor.Decode(msg.Payload, msg.FillBits)
	if err != nil {
		return nil, err
	}
	return Decode(bits)
}
