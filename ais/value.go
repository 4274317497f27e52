package ais

import (
	"encoding/json"
	"fmt"
	"math"
)

// Value is the decoded (or to-be-encoded) content of one field. Only the
// members matching the field's Kind are meaningful; the rest are zero.
// This mirrors the "Record" the decoder contract in §4.7 names, kept
// generic rather than struct-per-message-type so the field table stays
// the single source of truth for both directions.
type Value struct {
	Kind      Kind
	Raw       int64   // raw integer, sign-extended for KindInt fields
	Float     float64 // Raw scaled by the field's Scale (Scale 0 treated as 1); KindTurn's degrees/minute
	Bool      bool    // KindBool bit, or KindTurn's rate-available flag
	Text      string  // KindText6 decoded string, or KindEnum member name
	Bits      []bool  // KindBits raw tail
	CommState *CommState // KindCommState's decoded SOTDMA/ITDMA fields
}

// ValueInt builds a Value from a raw (unscaled) integer.
func ValueInt(raw int64) Value { return Value{Kind: KindUint, Raw: raw, Float: float64(raw)} }

// ValueScaled builds a Value from a physical quantity, inverting scale to
// recover the raw integer that will be packed on encode.
func ValueScaled(physical float64, scale float64) Value {
	if scale == 0 {
		scale = 1
	}
	raw := int64(math.Round(physical / scale))
	return Value{Kind: KindInt, Raw: raw, Float: physical}
}

// ValueBool builds a single-bit Value.
func ValueBool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// ValueText builds a KindText6 Value.
func ValueText(s string) Value { return Value{Kind: KindText6, Text: s} }

// ValueBits builds a KindBits Value from raw tail bits.
func ValueBits(bits []bool) Value { return Value{Kind: KindBits, Bits: bits} }

// ValueEnum builds a KindEnum Value from its raw integer and decoded name.
func ValueEnum(raw int64, name string) Value { return Value{Kind: KindEnum, Raw: raw, Text: name} }

// jsonValue is Value's wire shape: Kind spelled out explicitly so
// ais-encode's JSON input can say what a field means instead of the
// decoder having to guess it back from JSON's untyped numbers, the same
// habit the storage layer's hand-written MarshalJSON methods follow for
// each ship record field.
type jsonValue struct {
	Kind      string     `json:"kind"`
	Raw       int64      `json:"raw,omitempty"`
	Float     float64    `json:"float,omitempty"`
	Bool      bool       `json:"bool,omitempty"`
	Text      string     `json:"text,omitempty"`
	Bits      []bool     `json:"bits,omitempty"`
	CommState *CommState `json:"comm_state,omitempty"`
}

// MarshalJSON renders v with its Kind spelled out, so round-tripping
// through ais-decode and ais-encode never loses which union member was
// meant.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonValue{
		Kind:      v.Kind.String(),
		Raw:       v.Raw,
		Float:     v.Float,
		Bool:      v.Bool,
		Text:      v.Text,
		Bits:      v.Bits,
		CommState: v.CommState,
	})
}

// UnmarshalJSON parses v's wire shape, rejecting an unrecognized "kind".
func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return err
	}
	kind, ok := ParseKind(jv.Kind)
	if !ok {
		return fmt.Errorf("ais: unknown value kind %q", jv.Kind)
	}
	*v = Value{Kind: kind, Raw: jv.Raw, Float: jv.Float, Bool: jv.Bool, Text: jv.Text, Bits: jv.Bits, CommState: jv.CommState}
	return nil
}

// Record is the generic decoded (or pre-encode) representation of one AIS
// message: its type, the name of the schema variant applied (for
// variant-dispatched types), and every field's Value keyed by name.
type Record struct {
	MsgType    int
	Variant    string
	BitsUsed   int
	fields     map[string]Value
	fieldOrder []string
}

func newRecord(msgType int, variant string) *Record {
	return &Record{MsgType: msgType, Variant: variant, fields: make(map[string]Value)}
}

// NewRecord creates an empty Record for building up by hand (via Set)
// before passing to Encode — the constructor external packages (CLIs,
// tests) use since decoding normally produces a Record already.
func NewRecord(msgType int, variant string) *Record {
	return newRecord(msgType, variant)
}

func (r *Record) set(name string, v Value) {
	if _, exists := r.fields[name]; !exists {
		r.fieldOrder = append(r.fieldOrder, name)
	}
	r.fields[name] = v
}

// Set assigns a field's Value on a Record being built for Encode. Intended
// for callers constructing a Record by hand rather than via Decode.
func (r *Record) Set(name string, v Value) { r.set(name, v) }

// Get returns the named field's Value and whether it was present.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Uint returns the named field's raw value as an unsigned integer, or 0 if
// absent.
func (r *Record) Uint(name string) uint64 {
	v := r.fields[name]
	return uint64(v.Raw)
}

// Int returns the named field's raw value as a signed integer, or 0 if
// absent.
func (r *Record) Int(name string) int64 { return r.fields[name].Raw }

// Float returns the named field's scaled physical value, or 0 if absent.
func (r *Record) Float(name string) float64 { return r.fields[name].Float }

// Bool returns the named field's bit, or false if absent.
func (r *Record) Bool(name string) bool { return r.fields[name].Bool }

// Text returns the named field's decoded text (six-bit string or enum
// member name), or "" if absent.
func (r *Record) Text(name string) string { return r.fields[name].Text }

// Fields returns every decoded field as a plain map, for callers (CLI
// output, logging) that want a generic view instead of named accessors.
func (r *Record) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for _, name := range r.fieldOrder {
		v := r.fields[name]
		switch v.Kind {
		case KindBool:
			out[name] = v.Bool
		case KindText6, KindEnum:
			out[name] = v.Text
		case KindBits:
			out[name] = v.Bits
		case KindInt:
			if v.Float != float64(v.Raw) {
				out[name] = v.Float
			} else {
				out[name] = v.Raw
			}
		default:
			if v.Float != float64(v.Raw) {
				out[name] = v.Float
			} else {
				out[name] = uint64(v.Raw)
			}
		}
	}
	return out
}

// jsonRecord is Record's wire shape. Fields is a plain map rather than an
// ordered list: field order is schema-determined (the field table), not
// meaningful on the wire, so encodeFields replays the table's order
// regardless of what order the JSON object's keys appeared in.
type jsonRecord struct {
	MsgType int              `json:"msg_type"`
	Variant string           `json:"variant,omitempty"`
	Fields  map[string]Value `json:"fields"`
}

// MarshalJSON renders r as its message type, variant, and named fields
// with Kind spelled out per field — the shape ais-encode expects on
// stdin and ais-decode can optionally emit instead of the flattened
// map Fields returns.
func (r *Record) MarshalJSON() ([]byte, error) {
	fields := make(map[string]Value, len(r.fields))
	for name, v := range r.fields {
		fields[name] = v
	}
	return json.Marshal(jsonRecord{MsgType: r.MsgType, Variant: r.Variant, Fields: fields})
}

// UnmarshalJSON parses r's wire shape. The resulting field order follows
// Go's map iteration order, which is unspecified, not the order of the
// JSON keys — callers that care about order should Set fields by hand
// instead.
func (r *Record) UnmarshalJSON(data []byte) error {
	var jr jsonRecord
	if err := json.Unmarshal(data, &jr); err != nil {
		return err
	}
	*r = *newRecord(jr.MsgType, jr.Variant)
	for name, v := range jr.Fields {
		r.set(name, v)
	}
	return nil
}
