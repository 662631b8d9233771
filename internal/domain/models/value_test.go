package models

import "testing"

func TestZeroValueIsIntZero(t *testing.T) {
	var v Value
	if v.Kind() != KindInt || v.Int() != 0 {
		t.Fatalf("zero value = %s %v", v.Kind(), v)
	}
	if !v.Equal(IntValue(0)) {
		t.Fatalf("zero value differs from IntValue(0)")
	}
}

func TestValueKinds(t *testing.T) {
	if got := IntValue(42).Int(); got != 42 {
		t.Fatalf("unexpected int %d", got)
	}
	if got := FloatValue(1.5).Float(); got != 1.5 {
		t.Fatalf("unexpected float %v", got)
	}
	if got := StringValue("bond").Text(); got != "bond" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestValueWrongKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = StringValue("x").Int()
}

func TestValueEqualIsTagAware(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"int eq", IntValue(5), IntValue(5), true},
		{"int ne", IntValue(5), IntValue(6), false},
		{"float eq", FloatValue(2.5), FloatValue(2.5), true},
		{"string eq", StringValue("a"), StringValue("a"), true},
		{"int vs float same payload", IntValue(5), FloatValue(5.0), false},
		{"string vs int", StringValue("5"), IntValue(5), false},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Errorf("%s: got %v", c.name, got)
		}
	}
}

func TestValueRenderRoundTrip(t *testing.T) {
	vals := []Value{
		IntValue(0),
		IntValue(-17),
		IntValue(1<<62 + 3),
		FloatValue(299.0),
		FloatValue(0.1),
		FloatValue(-1234.5678),
		FloatValue(1e300),
		StringValue("price-over-time"),
		StringValue(""),
	}
	for _, v := range vals {
		back, err := ParseValue(v.Kind(), v.String())
		if err != nil {
			t.Fatalf("parse %q: %v", v.String(), err)
		}
		if !back.Equal(v) {
			t.Fatalf("round trip changed %q", v.String())
		}
	}
}

func TestParseValueRejectsGarbage(t *testing.T) {
	if _, err := ParseValue(KindInt, "12x"); err == nil {
		t.Fatalf("expected int parse error")
	}
	if _, err := ParseValue(KindInt, "1.5"); err == nil {
		t.Fatalf("expected int parse error for float literal")
	}
	if _, err := ParseValue(KindFloat, "abc"); err == nil {
		t.Fatalf("expected float parse error")
	}
	if _, err := ParseValue(KindString, "anything,really"); err != nil {
		t.Fatalf("string parse must not fail: %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Kind
	}{{"INT", KindInt}, {"FLOAT", KindFloat}, {"STRING", KindString}} {
		got, err := ParseKind(c.in)
		if err != nil || got != c.want {
			t.Fatalf("ParseKind(%q) = %v, %v", c.in, got, err)
		}
	}
	for _, bad := range []string{"int", "Float", "DOUBLE", ""} {
		if _, err := ParseKind(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
