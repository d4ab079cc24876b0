package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeInsertThenRetain(t *testing.T) {
	a := New().Insert(StringValue("Hello"))
	b := New().Retain(5).Insert(StringValue(" World"))
	got := a.Compose(b)
	want := New().Insert(StringValue("Hello World"))
	assert.True(t, got.Equal(want), "got %v want %v", got.Ops(), want.Ops())
}

func TestComposeDeleteCancelsInsert(t *testing.T) {
	a := New().Insert(StringValue("abc"))
	b := New().Delete(3)
	got := a.Compose(b)
	assert.True(t, got.IsEmpty(), "an insert fully deleted by the next op composes to nothing")
}

func TestComposeRetainAttributes(t *testing.T) {
	a := New().Insert(StringValue("abc"))
	b := New().RetainAttr(3, AttrMap{"bold": BoolValue(true)})
	got := a.Compose(b)
	want := New().InsertAttr(StringValue("abc"), AttrMap{"bold": BoolValue(true)})
	assert.True(t, got.Equal(want), "got %v want %v", got.Ops(), want.Ops())
}

func TestComposeRetainRetainMergesAttributes(t *testing.T) {
	a := New().RetainAttr(3, AttrMap{"bold": BoolValue(true)})
	b := New().RetainAttr(3, AttrMap{"italic": BoolValue(true)})
	got := a.Compose(b)
	want := New().RetainAttr(3, AttrMap{"bold": BoolValue(true), "italic": BoolValue(true)})
	assert.True(t, got.Equal(want), "got %v want %v", got.Ops(), want.Ops())
}

func TestComposeDeleteWinsOverRetain(t *testing.T) {
	a := New().RetainAttr(3, AttrMap{"bold": BoolValue(true)})
	b := New().Delete(3)
	got := a.Compose(b)
	want := New().Delete(3)
	assert.True(t, got.Equal(want), "got %v want %v", got.Ops(), want.Ops())
}

func TestComposePartialInsertSplit(t *testing.T) {
	a := New().Insert(StringValue("abcdef"))
	b := New().Retain(3).Delete(2).Retain(1)
	got := a.Compose(b)
	want := New().Insert(StringValue("abc")).Insert(StringValue("f"))
	assert.True(t, got.Equal(want), "got %v want %v", got.Ops(), want.Ops())
}
