package multipart

import "github.com/tormol/aisgo/nmea"

type groupSlot struct {
	total     int
	sentences []*nmea.Sentence
}

// GroupReassembler buffers tag-block-grouped sentences ("g:num-tot-id")
// and emits them all together once every member of the group has
// arrived, independent of per-fragment reassembly (§4.6 second
// paragraph). This is orthogonal to Reassembler: a group's members are
// typically already-complete single-fragment sentences from different
// physical AIS messages sharing a logical group id.
type GroupReassembler struct {
	groups map[int]*groupSlot
}

// NewGroupReassembler creates an empty GroupReassembler.
func NewGroupReassembler() *GroupReassembler {
	return &GroupReassembler{groups: make(map[int]*groupSlot)}
}

// Accept records s as member group.Num of group.ID (out of group.Total),
// returning the complete, ordered slice of sentences once every member
// has arrived, or nil while the group is still incomplete. A malformed
// group.Num (outside 1..group.Total) is dropped silently.
func (g *GroupReassembler) Accept(s nmea.Sentence, group nmea.Group) []nmea.Sentence {
	sl, ok := g.groups[group.ID]
	if !ok || sl.total != group.Total {
		sl = &groupSlot{total: group.Total, sentences: make([]*nmea.Sentence, group.Total)}
		g.groups[group.ID] = sl
	}
	idx := group.Num - 1
	if idx < 0 || idx >= len(sl.sentences) {
		return nil
	}
	cp := s
	sl.sentences[idx] = &cp

	for _, p := range sl.sentences {
		if p == nil {
			return nil
		}
	}
	out := make([]nmea.Sentence, len(sl.sentences))
	for i, p := range sl.sentences {
		out[i] = *p
	}
	delete(g.groups, group.ID)
	return out
}
