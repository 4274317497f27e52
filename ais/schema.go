package ais

import "github.com/tormol/aisgo/bitvec"

// Kind identifies how a Field's bits are interpreted, mirroring the
// "kind" column of the field tables §4.7 describes.
type Kind int

const (
	KindUint Kind = iota
	KindInt
	KindBool
	KindText6
	KindBits // raw tail, stored verbatim (binary application data)
	KindEnum
	KindTurn      // 8-bit signed rate-of-turn, decoded through DecodeTurn
	KindCommState // 19/20-bit SOTDMA/ITDMA radio field, decoded through DecodeCommState
)

var kindNames = [...]string{"uint", "int", "bool", "text6", "bits", "enum", "turn", "comm_state"}

// String renders k as the lowercase wire name ais-encode's JSON input
// expects in a Value's "kind" key.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String, returning ok=false for
// anything not in the closed set.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// EnumSpec decodes a raw integer into its closed-set member name, with a
// total fallback for anything not explicitly listed (§4.8).
type EnumSpec struct {
	Name    string
	Decode  func(raw uint64) string
	Encode  func(name string) (uint64, bool)
}

// Field describes one column of a message's field table: its name, bit
// width, Kind, and (for numeric kinds) the scale dividing the raw integer
// into a physical quantity. Tail fields consume every bit remaining in
// the payload instead of a fixed Width.
type Field struct {
	Name    string
	Width   int
	Kind    Kind
	Scale   float64 // 0 means unscaled (raw integer is the value)
	Enum    *EnumSpec
	Tail    bool // consume remaining bits; Width is ignored
	Default Value
}

func decodeField(bits *bitvec.Vector, f Field, pos int, msgType int) (Value, int) {
	width := f.Width
	if f.Tail {
		width = bits.Len() - pos
		if width < 0 {
			width = 0
		}
	}
	hi := pos + width
	var v Value
	switch f.Kind {
	case KindUint:
		raw := bits.GetUint(pos, hi)
		v = Value{Kind: KindUint, Raw: int64(raw), Float: scaled(float64(raw), f.Scale)}
	case KindInt:
		raw := bits.GetInt(pos, hi)
		v = Value{Kind: KindInt, Raw: raw, Float: scaled(float64(raw), f.Scale)}
	case KindBool:
		v = Value{Kind: KindBool, Bool: bits.GetBool(pos)}
	case KindText6:
		v = Value{Kind: KindText6, Text: bits.GetText6(pos, hi)}
	case KindBits:
		v = Value{Kind: KindBits, Bits: bits.GetRawBits(pos, hi)}
	case KindEnum:
		raw := bits.GetUint(pos, hi)
		name := "Undefined"
		if f.Enum != nil {
			name = f.Enum.Decode(raw)
		}
		v = Value{Kind: KindEnum, Raw: int64(raw), Text: name}
	case KindTurn:
		raw := bits.GetInt(pos, hi)
		degPerMin, available, _ := DecodeTurn(int8(raw))
		v = Value{Kind: KindTurn, Raw: raw, Float: degPerMin, Bool: available}
	case KindCommState:
		raw := bits.GetUint(pos, hi)
		selector := width == 20 && (raw>>19)&1 != 0
		cs := DecodeCommState(msgType, uint32(raw), width, selector)
		v = Value{Kind: KindCommState, Raw: int64(raw), CommState: &cs}
	}
	return v, hi
}

func scaled(raw float64, scale float64) float64 {
	if scale == 0 {
		return raw
	}
	return raw * scale
}

// decodeFields walks a field table once, accumulating a bit offset, the
// shape canboat's PGN decoder uses for its field tables: the table is the
// only place layout knowledge lives, and decode and encode both just
// replay it.
func decodeFields(bits *bitvec.Vector, fields []Field, msgType int, variant string) *Record {
	rec := newRecord(msgType, variant)
	pos := 0
	for _, f := range fields {
		v, hi := decodeField(bits, f, pos, msgType)
		rec.set(f.Name, v)
		pos = hi
	}
	rec.BitsUsed = pos
	return rec
}

// encodeFields packs a Record's named fields in table order, applying a
// field's Default when the Record doesn't carry it (the encoder contract
// in §4.7: "defaults are applied for any missing fields").
func encodeFields(rec *Record, fields []Field) *bitvec.Vector {
	out := bitvec.New(len(fields) * 8)
	for _, f := range fields {
		v, ok := rec.Get(f.Name)
		if !ok {
			v = f.Default
		}
		switch f.Kind {
		case KindUint, KindEnum:
			out.PushUint(uint64(v.Raw), f.Width)
		case KindInt:
			out.PushInt(v.Raw, f.Width)
		case KindBool:
			out.PushBool(v.Bool)
		case KindText6:
			out.PushText6(v.Text, f.Width)
		case KindBits:
			width := f.Width
			if f.Tail {
				width = len(v.Bits)
			}
			out.PushBytes(v.Bits, width)
		case KindTurn:
			out.PushInt(int64(EncodeTurn(v.Float, v.Bool)), f.Width)
		case KindCommState:
			raw := uint32(v.Raw)
			if v.CommState != nil {
				raw = EncodeCommState(*v.CommState)
			}
			out.PushUint(uint64(raw), f.Width)
		}
	}
	return out
}
