// Package multipart reassembles AIS NMEA sentences split across multiple
// fragments into complete messages, and groups tag-block-annotated
// sentences that share a "g:num-tot-id" group id (§4.6).
package multipart

import (
	"time"

	"github.com/tormol/aisgo/nmea"
)

// Message is one fully reassembled AIS message: one or more sentences
// whose armored payloads have been concatenated in fragment order.
type Message struct {
	Sentences     []nmea.Sentence
	TagBlock      *nmea.TagBlock
	Gatehouse     *nmea.Gatehouse
	Payload       string
	FillBits      int
	ChecksumValid bool
}

type key struct {
	seqID   int
	channel byte
}

type slot struct {
	parts         []*nmea.Sentence
	have          int
	fragmentCount int
	started       time.Time
}

// Reassembler buffers fragments by (sequence_id, channel) and emits a
// Message once all of a sequence's fragments have arrived, tolerating
// reordered arrival (§4.6, §8 "reassembler order-independence").
//
// A Reassembler is not safe for concurrent use: per §5, each processing
// pipeline owns its own instance and feeds it sequentially.
type Reassembler struct {
	slots   map[key]*slot
	maxAge  time.Duration // 0 disables fragment expiry
	pending pendingWrapper
}

type pendingWrapper struct {
	tagBlock  *nmea.TagBlock
	gatehouse *nmea.Gatehouse
}

// New creates a Reassembler. maxAge, if non-zero, discards an incomplete
// fragment set and starts a fresh one if a sentence arrives for a known
// (seq_id, channel) slot whose first fragment is older than maxAge — an
// implementation-detail horizon the spec calls out as not required for
// correctness (§4.6).
func New(maxAge time.Duration) *Reassembler {
	return &Reassembler{slots: make(map[key]*slot), maxAge: maxAge}
}

// SetPendingTagBlock stashes a tag block to attach to the next sentence
// this Reassembler emits, then clears on attachment (§9 "shared
// Gatehouse/tag-block context").
func (r *Reassembler) SetPendingTagBlock(tb *nmea.TagBlock) {
	r.pending.tagBlock = tb
}

// SetPendingGatehouse stashes a Gatehouse wrapper the same way.
func (r *Reassembler) SetPendingGatehouse(gh *nmea.Gatehouse) {
	r.pending.gatehouse = gh
}

func (r *Reassembler) attachPending(m *Message) *Message {
	m.TagBlock = r.pending.tagBlock
	m.Gatehouse = r.pending.gatehouse
	r.pending.tagBlock = nil
	r.pending.gatehouse = nil
	return m
}

// Accept feeds one sentence into the reassembler. It returns a non-nil
// Message when s completes a sequence (or is itself a single-fragment
// message), and nil while a multi-fragment sequence is still incomplete.
// Malformed fragments (fragment_number out of range for the declared
// fragment_count) are dropped silently, per §7's streaming best-effort
// policy.
func (r *Reassembler) Accept(s nmea.Sentence) *Message {
	if s.FragmentCount <= 1 {
		return r.attachPending(&Message{
			Sentences:     []nmea.Sentence{s},
			Payload:       s.Payload,
			FillBits:      s.FillBits,
			ChecksumValid: s.ChecksumOK,
		})
	}

	k := key{s.SequenceID, s.Channel}
	sl, ok := r.slots[k]
	stale := ok && r.maxAge > 0 && time.Since(sl.started) > r.maxAge
	if !ok || sl.fragmentCount != s.FragmentCount || stale {
		sl = &slot{
			parts:         make([]*nmea.Sentence, s.FragmentCount),
			fragmentCount: s.FragmentCount,
			started:       time.Now(),
		}
		r.slots[k] = sl
	}

	idx := s.FragmentNumber - 1
	if idx < 0 || idx >= len(sl.parts) {
		delete(r.slots, k)
		return nil
	}
	cp := s
	if sl.parts[idx] == nil {
		sl.have++
	}
	sl.parts[idx] = &cp
	if sl.have < sl.fragmentCount {
		return nil
	}
	delete(r.slots, k)
	return r.attachPending(buildMessage(sl.parts))
}

func buildMessage(parts []*nmea.Sentence) *Message {
	sentences := make([]nmea.Sentence, len(parts))
	payload := ""
	checksumValid := true
	fillBits := 0
	for i, p := range parts {
		sentences[i] = *p
		payload += p.Payload
		checksumValid = checksumValid && p.ChecksumOK
		if i == len(parts)-1 {
			fillBits = p.FillBits
		}
	}
	return &Message{
		Sentences:     sentences,
		Payload:       payload,
		FillBits:      fillBits,
		ChecksumValid: checksumValid,
	}
}

// AssembleFragments reassembles an explicit, already-collected list of
// fragments (rather than a live Accept stream), raising typed errors
// instead of dropping bad input silently — this is the non-streaming
// contract §7 calls out ("raises when called with an explicit fragment
// list").
func AssembleFragments(sentences []nmea.Sentence) (*Message, error) {
	if len(sentences) == 0 {
		return nil, ErrMissingMultipart
	}
	fragmentCount := sentences[0].FragmentCount
	if fragmentCount < 1 {
		fragmentCount = 1
	}
	if len(sentences) > fragmentCount {
		return nil, ErrTooManyMessages
	}
	parts := make([]*nmea.Sentence, fragmentCount)
	for i := range sentences {
		s := sentences[i]
		idx := s.FragmentNumber - 1
		if idx < 0 || idx >= fragmentCount {
			return nil, ErrMissingMultipart
		}
		parts[idx] = &s
	}
	for _, p := range parts {
		if p == nil {
			return nil, ErrMissingMultipart
		}
	}
	msg := buildMessage(parts)
	if msg.Payload == "" {
		return nil, ErrMissingPayload
	}
	return msg, nil
}
