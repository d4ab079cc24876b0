package delta

// AttrMap is an unordered mapping from attribute key to AttrVal. An
// empty (nil or zero-length) AttrMap means "unformatted". Order of
// iteration is irrelevant to semantics; serialisation goes through
// encoding/json, which sorts object keys for reproducible output.
type AttrMap map[string]AttrVal

// IsEmpty reports whether the map carries no attributes.
func (a AttrMap) IsEmpty() bool { return len(a) == 0 }

// Clone returns a shallow copy of a (nested AttrMap values are not deep
// copied, matching AttrVal's own copy semantics).
func (a AttrMap) Clone() AttrMap {
	if a == nil {
		return nil
	}
	out := make(AttrMap, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Equal reports whether a and other carry the same keys bound to equal
// values. A nil map and an empty map compare equal.
func (a AttrMap) Equal(other AttrMap) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// ComposeAttrs returns the attributes that result from applying b after
// a. The result starts as a copy of b; if keepNull is false, keys in b
// bound to Null are dropped (Null is the tombstone). Then every key of a
// absent from b is copied across — b always overrides a for shared keys.
func ComposeAttrs(a, b AttrMap, keepNull bool) AttrMap {
	ret := make(AttrMap, len(a)+len(b))
	for k, v := range b {
		ret[k] = v
	}
	if !keepNull {
		for k, v := range b {
			if v.IsNull() {
				delete(ret, k)
			}
		}
	}
	for k, v := range a {
		if _, ok := b[k]; !ok {
			ret[k] = v
		}
	}
	return ret
}

// TransformAttrs rebases b against the concurrent attribute change a. If
// a is empty, b passes through unchanged. If b is empty, the result is
// empty. Without priority, b simply wins. With priority, a wins for keys
// present in both, so only b's keys absent from a survive.
func TransformAttrs(a, b AttrMap, priority bool) AttrMap {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return AttrMap{}
	}
	if !priority {
		return b
	}
	ret := make(AttrMap, len(b))
	for k, v := range b {
		if _, ok := a[k]; !ok {
			ret[k] = v
		}
	}
	return ret
}

// DiffAttrs returns the attributes that, composed onto a, produce b: for
// every key present in either map whose value differs, emit (key, b[k])
// if present, else (key, Null) to mark removal.
func DiffAttrs(a, b AttrMap) AttrMap {
	ret := make(AttrMap)
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}
	for k := range seen {
		av, aok := a[k]
		bv, bok := b[k]
		if aok && bok && av.Equal(bv) {
			continue
		}
		if !aok && !bok {
			continue
		}
		if bok {
			ret[k] = bv
		} else {
			ret[k] = NullValue()
		}
	}
	return ret
}

// InvertAttrs derives the attributes that, composed after attr on top of
// base, restore base. For each key in base that attr actually changes,
// carry the old base value back in. For each key attr introduces that
// base never had, carry a Null tombstone.
func InvertAttrs(attr, base AttrMap) AttrMap {
	ret := make(AttrMap)
	for k, baseVal := range base {
		attrVal, ok := attr[k]
		if ok && !baseVal.Equal(attrVal) {
			ret[k] = baseVal
		}
	}
	for k := range attr {
		if _, ok := base[k]; !ok {
			ret[k] = NullValue()
		}
	}
	return ret
}
