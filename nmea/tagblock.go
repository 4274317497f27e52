package nmea

import (
	"strconv"
	"strings"

	"github.com/tormol/aisgo/armor"
)

// Group identifies a tag-block sentence grouping ("g:num-tot-id").
type Group struct {
	Num   int
	Total int
	ID    int
}

// TagBlock holds the parsed fields of an NMEA 4.10 "\k:v,k:v,...*HH\"
// envelope (§4.5). Unknown keys are preserved verbatim in Raw so nothing
// is silently dropped.
type TagBlock struct {
	UnixSeconds   int64  // "c"
	HasUnixTime   bool
	Source        string // "s"
	HasSource     bool
	Destination   string // "d"
	HasDest       bool
	LineCount     int // "n"
	HasLineCount  bool
	RelativeTime  int64 // "r"
	HasRelative   bool
	Text          string // "t"
	HasText       bool
	Group         Group
	HasGroup      bool
	Raw           map[string]string // every key, including unknown ones
	ChecksumOK    bool
	HasChecksum   bool
}

// ParseTagBlock parses the body between the two backslash delimiters of a
// tag block, i.e. body is "k:v,k:v,...*HH" without the enclosing '\'.
func ParseTagBlock(body string) (TagBlock, error) {
	tb := TagBlock{Raw: map[string]string{}}

	content := body
	star := strings.LastIndexByte(body, '*')
	if star != -1 {
		content = body[:star]
		if star+3 <= len(body) {
			checksumHex := body[star+1 : star+3]
			if expected, err := armor.ParseChecksum(checksumHex); err == nil {
				var sum uint8
				for i := 0; i < len(content); i++ {
					sum ^= content[i]
				}
				tb.HasChecksum = true
				tb.ChecksumOK = sum == expected
			}
		}
	}

	for _, kv := range strings.Split(content, ",") {
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, ":", 2)
		key := parts[0]
		value := ""
		if len(parts) == 2 {
			value = parts[1]
		}
		tb.Raw[key] = value
		switch key {
		case "c":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				tb.UnixSeconds, tb.HasUnixTime = n, true
			}
		case "s":
			tb.Source, tb.HasSource = value, true
		case "d":
			tb.Destination, tb.HasDest = value, true
		case "n":
			if n, err := strconv.Atoi(value); err == nil {
				tb.LineCount, tb.HasLineCount = n, true
			}
		case "r":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				tb.RelativeTime, tb.HasRelative = n, true
			}
		case "t":
			tb.Text, tb.HasText = value, true
		case "g":
			if g, ok := parseGroup(value); ok {
				tb.Group, tb.HasGroup = g, true
			}
		}
	}
	return tb, nil
}

func parseGroup(value string) (Group, bool) {
	parts := strings.SplitN(value, "-", 3)
	if len(parts) != 3 {
		return Group{}, false
	}
	num, err1 := strconv.Atoi(parts[0])
	total, err2 := strconv.Atoi(parts[1])
	id, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Group{}, false
	}
	return Group{Num: num, Total: total, ID: id}, true
}
