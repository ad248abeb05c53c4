package parser_test

import (
	"testing"

	"github.com/dudasaus/godot-compile/internal/parser"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  parser.Value
	}{
		{`"My Game"`, parser.String("My Game")},
		{`""`, parser.String("")},
		{`"say "hi""`, parser.String(`say "hi"`)},
		{`"res://icon.svg"`, parser.String("res://icon.svg")},
		{`"`, parser.Raw(`"`)},
		{"true", parser.Boolean(true)},
		{"false", parser.Boolean(false)},
		{"True", parser.Raw("True")},
		{"3", parser.Integer(3)},
		{"-42", parser.Integer(-42)},
		{"007", parser.Integer(7)},
		{"+1", parser.Raw("+1")},
		{"99999999999999999999", parser.Raw("99999999999999999999")},
		{"1.5", parser.Float(1.5)},
		{"-0.25", parser.Float(-0.25)},
		{"2.", parser.Float(2)},
		{".5", parser.Float(0.5)},
		{"1.2.3", parser.Raw("1.2.3")},
		{"1e+06", parser.Raw("1e+06")},
		{"inf", parser.Raw("inf")},
		{"null", parser.Raw("null")},
		{`PackedStringArray("a","b")`, parser.Raw(`PackedStringArray("a","b")`)},
		{`Vector2i(1152, 648)`, parser.Raw("Vector2i(1152, 648)")},
		{"", parser.Raw("")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parser.ParseValue(tt.input)
			if got != tt.want {
				t.Errorf("ParseValue(%q) = %s(%v), want %s(%v)",
					tt.input, got.Kind(), got, tt.want.Kind(), tt.want)
			}
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	if s, ok := parser.String("x").AsString(); !ok || s != "x" {
		t.Errorf("String.AsString() = %q, %v", s, ok)
	}
	if _, ok := parser.Raw("x").AsString(); ok {
		t.Error("Raw.AsString() reported a String")
	}
	if i, ok := parser.Integer(3).AsInteger(); !ok || i != 3 {
		t.Errorf("Integer.AsInteger() = %d, %v", i, ok)
	}
	if f, ok := parser.Float(1.5).AsFloat(); !ok || f != 1.5 {
		t.Errorf("Float.AsFloat() = %v, %v", f, ok)
	}
	if b, ok := parser.Boolean(true).AsBoolean(); !ok || !b {
		t.Errorf("Boolean.AsBoolean() = %v, %v", b, ok)
	}
	if r, ok := parser.Raw("Object()").AsRaw(); !ok || r != "Object()" {
		t.Errorf("Raw.AsRaw() = %q, %v", r, ok)
	}

	if got := parser.Integer(-7).Interface(); got != int64(-7) {
		t.Errorf("Integer.Interface() = %#v", got)
	}
	if got := parser.Float(1.5).String(); got != "1.5" {
		t.Errorf("Float.String() = %q", got)
	}
	if got := parser.KindRaw.String(); got != "Raw" {
		t.Errorf("KindRaw.String() = %q", got)
	}
}
