package delta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	d := New().
		InsertAttr(StringValue("Gandalf"), AttrMap{"bold": BoolValue(true)}).
		Insert(StringValue(" the ")).
		InsertAttr(StringValue("Grey"), AttrMap{"color": StringValue("gray")}).
		Retain(5).
		Delete(2)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var got Delta
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, d.Equal(&got), "got %v want %v", got.Ops(), d.Ops())
}

func TestJSONMatchesQuillShape(t *testing.T) {
	d := New().InsertAttr(StringValue("hi"), AttrMap{"bold": BoolValue(true)}).Retain(3).Delete(1)
	data, err := json.Marshal(d)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	ops, ok := raw["ops"].([]interface{})
	require.True(t, ok)
	require.Len(t, ops, 3)

	first := ops[0].(map[string]interface{})
	assert.Equal(t, "hi", first["insert"])
	attrs := first["attributes"].(map[string]interface{})
	assert.Equal(t, true, attrs["bold"])

	second := ops[1].(map[string]interface{})
	assert.EqualValues(t, 3, second["retain"])

	third := ops[2].(map[string]interface{})
	assert.EqualValues(t, 1, third["delete"])
}

func TestJSONDecodesEmbed(t *testing.T) {
	raw := `{"ops":[{"insert":{"image":"https://example.com/x.png"}}]}`
	var d Delta
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	require.Len(t, d.Ops(), 1)
	assert.True(t, d.Ops()[0].Insert.IsMap())
}

func TestJSONRoundTripsNumericInsert(t *testing.T) {
	d := New().Insert(NumberValue(5))
	data, err := json.Marshal(d)
	require.NoError(t, err)

	var got Delta
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Ops(), 1)
	n, err := got.Ops()[0].Insert.Number()
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
}

func TestJSONRejectsArrayInsert(t *testing.T) {
	raw := `{"ops":[{"insert":[1,2,3]}]}`
	var d Delta
	err := json.Unmarshal([]byte(raw), &d)
	assert.ErrorIs(t, err, ErrSerdeNestedArray)
}

func TestJSONRejectsNegativeRetain(t *testing.T) {
	raw := `{"ops":[{"retain":-3}]}`
	var d Delta
	err := json.Unmarshal([]byte(raw), &d)
	assert.ErrorIs(t, err, ErrNotAnUnsigned)
}
