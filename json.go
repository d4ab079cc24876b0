package delta

import (
	"encoding/json"
	"fmt"
)

// wireDelta is the top-level Quill-compatible shape: {"ops": [...]}.
type wireDelta struct {
	Ops []wireOp `json:"ops"`
}

// wireOp mirrors a single Quill op object before it is classified into
// an Op: exactly one of Insert/Retain/Delete is present, Attributes is
// optional. Insert itself may be a string or an embed object.
type wireOp struct {
	Insert     interface{}            `json:"insert,omitempty"`
	Retain     *float64               `json:"retain,omitempty"`
	Delete     *float64               `json:"delete,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// MarshalJSON implements json.Marshaler, producing the Quill-compatible
// {"ops":[{"insert":...,"attributes":{...}}, ...]} wire shape.
func (d *Delta) MarshalJSON() ([]byte, error) {
	ops := make([]wireOp, len(d.ops))
	for i, op := range d.ops {
		w, err := encodeOp(op)
		if err != nil {
			return nil, err
		}
		ops[i] = w
	}
	return json.Marshal(wireDelta{Ops: ops})
}

func encodeOp(op Op) (wireOp, error) {
	var w wireOp
	if !op.Attributes.IsEmpty() {
		w.Attributes = make(map[string]interface{}, len(op.Attributes))
		for k, v := range op.Attributes {
			ev, err := encodeAttrVal(v)
			if err != nil {
				return wireOp{}, err
			}
			w.Attributes[k] = ev
		}
	}
	switch op.Kind {
	case KindInsert:
		ev, err := encodeAttrVal(op.Insert)
		if err != nil {
			return wireOp{}, err
		}
		w.Insert = ev
	case KindRetain:
		n := float64(op.Len)
		w.Retain = &n
	case KindDelete:
		n := float64(op.Len)
		w.Delete = &n
	}
	return w, nil
}

func encodeAttrVal(v AttrVal) (interface{}, error) {
	switch {
	case v.IsNull():
		return nil, nil
	case v.IsBool():
		b, _ := v.Bool()
		return b, nil
	case v.IsNumber():
		n, _ := v.Number()
		return n, nil
	case v.IsString():
		s, _ := v.Str()
		return s, nil
	case v.IsMap():
		m, _ := v.Map()
		out := make(map[string]interface{}, len(m))
		for k, mv := range m {
			ev, err := encodeAttrVal(mv)
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unrecognised attribute value", ErrSerdeUnknownType)
	}
}

// UnmarshalJSON implements json.Unmarshaler, decoding the Quill-
// compatible wire shape and pushing each op through the normalising
// builder (Push), so a decoded Delta upholds the same merge invariants
// as one built via Insert/Retain/Delete.
func (d *Delta) UnmarshalJSON(data []byte) error {
	var w wireDelta
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*d = Delta{}
	for _, wop := range w.Ops {
		op, err := decodeOp(wop)
		if err != nil {
			return err
		}
		d.push(op)
	}
	return nil
}

func decodeOp(w wireOp) (Op, error) {
	attrs, err := decodeAttrs(w.Attributes)
	if err != nil {
		return Op{}, err
	}

	switch {
	case w.Insert != nil:
		v, err := decodeInsertValue(w.Insert)
		if err != nil {
			return Op{}, err
		}
		return InsertOpAttr(v, attrs), nil
	case w.Retain != nil:
		n, err := decodeUnsigned(*w.Retain)
		if err != nil {
			return Op{}, err
		}
		return RetainOpAttr(n, attrs), nil
	case w.Delete != nil:
		n, err := decodeUnsigned(*w.Delete)
		if err != nil {
			return Op{}, err
		}
		return DeleteOp(n), nil
	default:
		return Op{}, fmt.Errorf("%w: op has none of insert/retain/delete", ErrSerdeUnknownType)
	}
}

// decodeInsertValue classifies a decoded JSON "insert" field: a string
// is a string insert, a number is a numeric embed, an object is a map
// embed (its values decoded as attribute values, nested objects
// included), anything else (notably an array) is rejected.
func decodeInsertValue(raw interface{}) (AttrVal, error) {
	switch v := raw.(type) {
	case string:
		return StringValue(v), nil
	case float64:
		n, err := decodeUnsigned(v)
		if err != nil {
			return AttrVal{}, err
		}
		return NumberValue(n), nil
	case map[string]interface{}:
		m, err := decodeAttrMap(v)
		if err != nil {
			return AttrVal{}, err
		}
		return MapValue(m), nil
	case []interface{}:
		return AttrVal{}, ErrSerdeNestedArray
	default:
		return AttrVal{}, fmt.Errorf("%w: insert value", ErrSerdeUnknownType)
	}
}

func decodeAttrs(raw map[string]interface{}) (AttrMap, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	return decodeAttrMap(raw)
}

func decodeAttrMap(raw map[string]interface{}) (AttrMap, error) {
	out := make(AttrMap, len(raw))
	for k, v := range raw {
		av, err := decodeAttrVal(v)
		if err != nil {
			return nil, err
		}
		out[k] = av
	}
	return out, nil
}

func decodeAttrVal(raw interface{}) (AttrVal, error) {
	switch v := raw.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(v), nil
	case float64:
		n, err := decodeUnsigned(v)
		if err != nil {
			return AttrVal{}, err
		}
		return NumberValue(n), nil
	case string:
		return StringValue(v), nil
	case map[string]interface{}:
		m, err := decodeAttrMap(v)
		if err != nil {
			return AttrVal{}, err
		}
		return MapValue(m), nil
	case []interface{}:
		return AttrVal{}, ErrSerdeNestedArray
	default:
		return AttrVal{}, fmt.Errorf("%w: attribute value", ErrSerdeUnknownType)
	}
}

func decodeUnsigned(f float64) (uint64, error) {
	if f < 0 || f != float64(uint64(f)) {
		return 0, ErrNotAnUnsigned
	}
	return uint64(f), nil
}
