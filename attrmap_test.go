package delta

import "testing"

func TestComposeAttrsOverwrite(t *testing.T) {
	a := AttrMap{"bold": BoolValue(true), "color": StringValue("red")}
	b := AttrMap{"bold": BoolValue(false), "color": StringValue("blue")}
	got := ComposeAttrs(a, b, false)
	if !got.Equal(b) {
		t.Errorf("expected b to fully override a, got %v want %v", got, b)
	}
}

func TestComposeAttrsMergesDisjointKeys(t *testing.T) {
	a := AttrMap{"bold": BoolValue(true)}
	b := AttrMap{"italic": BoolValue(true)}
	got := ComposeAttrs(a, b, false)
	want := AttrMap{"bold": BoolValue(true), "italic": BoolValue(true)}
	if !got.Equal(want) {
		t.Errorf("expected merged map %v, got %v", want, got)
	}
}

func TestComposeAttrsNullRemovesUnlessKept(t *testing.T) {
	a := AttrMap{"bold": BoolValue(true)}
	b := AttrMap{"bold": NullValue()}
	if got := ComposeAttrs(a, b, false); !got.IsEmpty() {
		t.Errorf("expected Null to remove key when keepNull is false, got %v", got)
	}
	if got := ComposeAttrs(a, b, true); !got.Equal(b) {
		t.Errorf("expected Null tombstone to survive when keepNull is true, got %v", got)
	}
}

func TestTransformAttrs(t *testing.T) {
	a := AttrMap{"bold": BoolValue(true)}
	b := AttrMap{"bold": BoolValue(false), "italic": BoolValue(true)}

	if got := TransformAttrs(AttrMap{}, b, true); !got.Equal(b) {
		t.Errorf("expected empty a to pass b through unchanged, got %v", got)
	}
	if got := TransformAttrs(a, AttrMap{}, true); !got.IsEmpty() {
		t.Errorf("expected empty b to produce empty result, got %v", got)
	}
	if got := TransformAttrs(a, b, false); !got.Equal(b) {
		t.Errorf("expected no-priority transform to return b unchanged, got %v", got)
	}

	got := TransformAttrs(a, b, true)
	want := AttrMap{"italic": BoolValue(true)}
	if !got.Equal(want) {
		t.Errorf("expected priority transform to drop a's keys, got %v want %v", got, want)
	}
}

func TestDiffAttrs(t *testing.T) {
	a := AttrMap{"color": StringValue("red"), "bold": BoolValue(true)}
	b := AttrMap{"color": StringValue("blue"), "bold": BoolValue(true)}
	got := DiffAttrs(a, b)
	want := AttrMap{"color": StringValue("blue")}
	if !got.Equal(want) {
		t.Errorf("expected diff of changed value only, got %v want %v", got, want)
	}

	removed := DiffAttrs(AttrMap{"bold": BoolValue(true)}, AttrMap{})
	if !removed.Equal(AttrMap{"bold": NullValue()}) {
		t.Errorf("expected removed key to produce a Null tombstone, got %v", removed)
	}

	added := DiffAttrs(AttrMap{}, AttrMap{"bold": BoolValue(true)})
	if !added.Equal(AttrMap{"bold": BoolValue(true)}) {
		t.Errorf("expected added key to carry its new value, got %v", added)
	}

	if d := DiffAttrs(a, a); !d.IsEmpty() {
		t.Errorf("expected identical maps to diff to empty, got %v", d)
	}
}

func TestInvertAttrs(t *testing.T) {
	base := AttrMap{"bold": BoolValue(true)}
	attr := AttrMap{"bold": BoolValue(false), "italic": BoolValue(true)}
	got := InvertAttrs(attr, base)
	want := AttrMap{"bold": BoolValue(true), "italic": NullValue()}
	if !got.Equal(want) {
		t.Errorf("expected invert to restore base and tombstone new keys, got %v want %v", got, want)
	}

	if got := InvertAttrs(AttrMap{}, base); !got.IsEmpty() {
		t.Errorf("expected empty attr to invert to empty, got %v", got)
	}
}
