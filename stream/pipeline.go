// Package stream wires raw byte sources (file, TCP client/server, UDP,
// serial) to the sentence parser and multipart reassembler, producing a
// stream of decoded AIS records — the minimal external-collaborator
// contract §4.9 describes, not a general-purpose transport library.
package stream

import (
	"time"

	"github.com/tormol/aisgo/ais"
	"github.com/tormol/aisgo/armor"
	"github.com/tormol/aisgo/multipart"
	"github.com/tormol/aisgo/nmea"
)

// Preprocessor rewrites a raw line before it reaches the sentence
// parser — for example stripping a bracketed receiver timestamp prefix
// some AIS feeds prepend, per §4.9's "optional pre-processor" clause.
type Preprocessor func(line string) string

// Decoded pairs a successfully decoded record with the timestamp the
// line completing it arrived at and the sentences it came from.
type Decoded struct {
	Record  *ais.Record
	Message *multipart.Message
	Arrived time.Time
}

// Pipeline turns raw text lines into decoded AIS records: parse, feed
// the reassembler, armor-decode a completed message's payload, and run
// it through the schema engine. One Pipeline belongs to exactly one
// processing pipeline, per §5 ("distinct pipelines own distinct
// reassembler and tracker instances").
type Pipeline struct {
	Pre         Preprocessor
	reassembler *multipart.Reassembler
	dedup       *multipart.DuplicateFilter
}

// NewPipeline creates a Pipeline. maxFragmentAge is passed to the
// reassembler (0 disables fragment expiry); dedup may be nil to disable
// duplicate-sentence filtering.
func NewPipeline(maxFragmentAge time.Duration, dedup *multipart.DuplicateFilter) *Pipeline {
	return &Pipeline{
		reassembler: multipart.New(maxFragmentAge),
		dedup:       dedup,
	}
}

// Feed processes one raw line. It returns a non-nil Decoded once a
// message completes and decodes successfully. Malformed lines,
// duplicate sentences, and incomplete multipart sequences all return
// (nil, nil): streaming mode is best-effort per §7, only genuine
// decoder errors on an otherwise-complete message are surfaced. A
// message whose checksum failed is still decoded and returned, with
// Message.ChecksumValid false.
func (p *Pipeline) Feed(rawLine string, arrived time.Time) (*Decoded, error) {
	text := rawLine
	if p.Pre != nil {
		text = p.Pre(text)
	}
	if p.dedup != nil && p.dedup.IsDuplicate(text) {
		return nil, nil
	}

	line, err := nmea.ParseLine(text, false)
	if err != nil {
		return nil, nil
	}
	if line.TagBlock != nil {
		p.reassembler.SetPendingTagBlock(line.TagBlock)
	}
	if line.Gatehouse != nil {
		p.reassembler.SetPendingGatehouse(line.Gatehouse)
		return nil, nil
	}
	if line.Sentence == nil {
		return nil, nil
	}

	msg := p.reassembler.Accept(*line.Sentence)
	if msg == nil {
		return nil, nil
	}

	bits, err := armor.Decode(msg.Payload, msg.FillBits)
	if err != nil {
		return nil, nil
	}
	rec, err := ais.Decode(bits)
	if err != nil {
		return nil, err
	}
	return &Decoded{Record: rec, Message: msg, Arrived: arrived}, nil
}
