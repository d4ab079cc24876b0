package delta

import "testing"

func TestAttrValAccessors(t *testing.T) {
	if v := StringValue("bold"); !v.IsString() {
		t.Errorf("expected IsString true")
	} else if s, err := v.Str(); err != nil || s != "bold" {
		t.Errorf("expected Str()=bold, got %q, err=%v", s, err)
	}

	if _, err := StringValue("x").Number(); err == nil {
		t.Errorf("expected error calling Number() on a String value")
	}

	if v := NumberValue(42); !v.IsNumber() {
		t.Errorf("expected IsNumber true")
	} else if n, err := v.Number(); err != nil || n != 42 {
		t.Errorf("expected Number()=42, got %d, err=%v", n, err)
	}

	if v := BoolValue(true); !v.IsBool() {
		t.Errorf("expected IsBool true")
	} else if b, err := v.Bool(); err != nil || !b {
		t.Errorf("expected Bool()=true, got %v, err=%v", b, err)
	}

	if v := NullValue(); !v.IsNull() {
		t.Errorf("expected IsNull true")
	}
}

func TestAttrValRuneLen(t *testing.T) {
	if n := StringValue("héllo").RuneLen(); n != 5 {
		t.Errorf("expected RuneLen=5 for héllo, got %d", n)
	}
	if n := StringValue("").RuneLen(); n != 0 {
		t.Errorf("expected RuneLen=0 for empty string, got %d", n)
	}
	if n := MapValue(AttrMap{"src": StringValue("x")}).RuneLen(); n != 1 {
		t.Errorf("expected RuneLen=1 for an embed, got %d", n)
	}
}

func TestAttrValEqual(t *testing.T) {
	if !StringValue("a").Equal(StringValue("a")) {
		t.Errorf("expected equal strings to compare equal")
	}
	if StringValue("a").Equal(StringValue("b")) {
		t.Errorf("expected different strings to compare unequal")
	}
	if StringValue("1").Equal(NumberValue(1)) {
		t.Errorf("expected different kinds to never compare equal")
	}
	if !NullValue().Equal(NullValue()) {
		t.Errorf("expected Null to equal Null")
	}

	m1 := MapValue(AttrMap{"url": StringValue("x"), "alt": StringValue("y")})
	m2 := MapValue(AttrMap{"alt": StringValue("y"), "url": StringValue("x")})
	if !m1.Equal(m2) {
		t.Errorf("expected maps to compare equal regardless of key order")
	}
}

func TestAttrValStringDebug(t *testing.T) {
	if NullValue().String() != "null" {
		t.Errorf("expected null debug string")
	}
	if BoolValue(true).String() != "true" {
		t.Errorf("expected true debug string")
	}
	if NumberValue(7).String() != "7" {
		t.Errorf("expected 7 debug string")
	}
	got := MapValue(AttrMap{"b": NumberValue(2), "a": NumberValue(1)}).String()
	want := "{a:1, b:2}"
	if got != want {
		t.Errorf("expected sorted-key debug string %q, got %q", want, got)
	}
}
