package parser

import (
	"regexp"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	// KindRaw is any value text that is not one of the primitive shapes,
	// e.g. PackedStringArray("a", "b") or Resource("res://icon.svg").
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Value is a single typed configuration value.
// The zero Value is an empty String.
type Value struct {
	kind Kind
	str  string // String and Raw
	num  int64
	flt  float64
	b    bool
}

// String returns a String value holding s.
func String(s string) Value { return Value{kind: KindString, str: s} }

func Integer(i int64) Value { return Value{kind: KindInteger, num: i} }

func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

func Boolean(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Raw returns a Raw value holding text verbatim.
func Raw(text string) Value { return Value{kind: KindRaw, str: text} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the unquoted contents of a String value.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) AsInteger() (int64, bool) {
	return v.num, v.kind == KindInteger
}

func (v Value) AsFloat() (float64, bool) {
	return v.flt, v.kind == KindFloat
}

func (v Value) AsBoolean() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// AsRaw returns the verbatim source text of a Raw value.
func (v Value) AsRaw() (string, bool) {
	return v.str, v.kind == KindRaw
}

// Interface returns the value as a plain Go value
// (string, int64, float64 or bool). Raw values are returned as their text.
func (v Value) Interface() any {
	switch v.kind {
	case KindInteger:
		return v.num
	case KindFloat:
		return v.flt
	case KindBoolean:
		return v.b
	default:
		return v.str
	}
}

// String renders the value for display. Strings are shown without quotes.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

var (
	integerPattern = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern   = regexp.MustCompile(`^-?([0-9]+\.[0-9]*|\.[0-9]+)$`)
)

// ParseValue classifies trimmed value text.
//
// Quoted text becomes a String with the outer quotes removed (embedded quotes
// and backslashes are kept as written), true/false become Booleans, decimal
// integers and plain decimal fractions become Integer and Float. Everything
// else is kept verbatim as Raw.
func ParseValue(text string) Value {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return String(text[1 : len(text)-1])
	}

	switch text {
	case "true":
		return Boolean(true)
	case "false":
		return Boolean(false)
	}

	if integerPattern.MatchString(text) {
		// out of int64 range falls through to Raw
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Integer(i)
		}
	}

	if floatPattern.MatchString(text) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Float(f)
		}
	}

	return Raw(text)
}
