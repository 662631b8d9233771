package models

import (
	"fmt"
	"strconv"
)

// Kind tags the type of a Value and of a table column.
type Kind uint8

const (
	KindInt    Kind = iota // 64-bit signed integer
	KindFloat              // 64-bit float
	KindString             // raw text, no escaping
)

// String returns the wire name of the kind as it appears on a table's
// type line.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	}
	panic(fmt.Sprintf("models: unknown kind %d", uint8(k)))
}

// ParseKind maps a wire type name to its Kind. Names are case-sensitive.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "INT":
		return KindInt, nil
	case "FLOAT":
		return KindFloat, nil
	case "STRING":
		return KindString, nil
	}
	return 0, fmt.Errorf("unknown column type %q", s)
}

// Value is a tagged scalar: exactly one of the payload slots is live,
// selected by the kind. Values are small, immutable and copied by value;
// there is no boxing and no nil state (the zero Value is Int 0).
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

func IntValue(v int64) Value     { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// Kind reports which payload slot is live.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload. Panics if the value is not an INT;
// callers are expected to know the column kind they read from.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		panic(fmt.Sprintf("models: Int() on %s value", v.kind))
	}
	return v.i
}

// Float returns the float payload. Panics if the value is not a FLOAT.
func (v Value) Float() float64 {
	if v.kind != KindFloat {
		panic(fmt.Sprintf("models: Float() on %s value", v.kind))
	}
	return v.f
}

// Text returns the string payload. Panics if the value is not a STRING.
func (v Value) Text() string {
	if v.kind != KindString {
		panic(fmt.Sprintf("models: Text() on %s value", v.kind))
	}
	return v.s
}

// Equal reports whether two values carry the same kind and the same
// payload. Values of different kinds are never equal, even when their
// numeric payloads coincide: Int(5) != Float(5.0).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	default:
		return v.s == o.s
	}
}

// String renders the value for the wire format: decimal for INT, the
// shortest round-trippable decimal form for FLOAT, the raw text for
// STRING. ParseValue on the result yields back an equal Value.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// ParseValue parses one raw field under the given column kind. INT fields
// must be valid base-10 signed integers and FLOAT fields valid decimal
// floats; anything else is a malformed-input error. STRING never fails.
func ParseValue(kind Kind, raw string) (Value, error) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse int %q: %w", raw, err)
		}
		return IntValue(n), nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse float %q: %w", raw, err)
		}
		return FloatValue(f), nil
	case KindString:
		return StringValue(raw), nil
	}
	return Value{}, fmt.Errorf("unknown column kind %d", uint8(kind))
}
