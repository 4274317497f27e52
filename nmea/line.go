package nmea

import "strings"

// Line is the result of tokenizing one input line into its optional
// tag-block envelope and the AIS sentence or Gatehouse sentence it
// precedes (§4.4 step 1).
type Line struct {
	TagBlock  *TagBlock
	Gatehouse *Gatehouse
	Sentence  *Sentence
}

// ParseLine tokenizes one line (no trailing newline expected, though one is
// tolerated) into its tag block (if any) plus the AIS sentence or
// Gatehouse sentence that follows it. A tag-block-only line (no sentence
// after the closing '\') is returned with Sentence and Gatehouse nil.
func ParseLine(line string, strict bool) (Line, error) {
	trimmed := strings.TrimRight(line, "\r\n")
	var l Line

	rest := trimmed
	if strings.HasPrefix(trimmed, `\`) {
		end := strings.IndexByte(trimmed[1:], '\\')
		if end == -1 {
			return Line{}, ErrInvalidNMEA
		}
		end++ // index within trimmed
		tb, err := ParseTagBlock(trimmed[1:end])
		if err != nil {
			return Line{}, err
		}
		l.TagBlock = &tb
		rest = trimmed[end+1:]
		if rest == "" {
			return l, nil // tag-block-only
		}
	}

	switch {
	case strings.HasPrefix(rest, "$PGHP"):
		gh, err := ParseGatehouse(rest)
		if err != nil {
			return Line{}, err
		}
		l.Gatehouse = &gh
		return l, nil
	case strings.HasPrefix(rest, "!"):
		s, err := ParseSentence(rest, strict)
		if err != nil {
			return Line{}, err
		}
		l.Sentence = &s
		return l, nil
	default:
		return Line{}, ErrInvalidNMEA
	}
}
