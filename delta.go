package delta

import "strings"

// Delta is a sequence of Op values. A "document" Delta contains only
// insert ops; a "change" Delta may freely mix insert/retain/delete. The
// zero value is an empty, valid Delta.
type Delta struct {
	ops []Op
}

// String renders the Delta's ops for debugging and test failure output.
func (d *Delta) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, op := range d.ops {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(op.String())
	}
	b.WriteByte(']')
	return b.String()
}

// New returns an empty Delta.
func New() *Delta {
	return &Delta{}
}

// FromOps builds a Delta by pushing each op through the normalising
// builder, so the result upholds the same merge invariants as one built
// incrementally via Insert/Retain/Delete.
func FromOps(ops []Op) *Delta {
	d := New()
	for _, op := range ops {
		d.push(op)
	}
	return d
}

// Ops returns the underlying operation slice. Callers must not mutate it.
func (d *Delta) Ops() []Op { return d.ops }

// Len returns the number of ops in the Delta.
func (d *Delta) Len() int { return len(d.ops) }

// IsEmpty reports whether the Delta has no ops.
func (d *Delta) IsEmpty() bool { return len(d.ops) == 0 }

// Insert appends an unformatted insert.
func (d *Delta) Insert(v AttrVal) *Delta {
	return d.InsertAttr(v, nil)
}

// InsertAttr appends a formatted insert.
func (d *Delta) InsertAttr(v AttrVal, attrs AttrMap) *Delta {
	if v.IsString() {
		if s, _ := v.Str(); s == "" {
			return d
		}
	}
	d.push(InsertOpAttr(v, attrs))
	return d
}

// Retain appends an unformatted retain.
func (d *Delta) Retain(n uint64) *Delta {
	return d.RetainAttr(n, nil)
}

// RetainAttr appends a formatted retain.
func (d *Delta) RetainAttr(n uint64, attrs AttrMap) *Delta {
	if n == 0 {
		return d
	}
	d.push(RetainOpAttr(n, attrs))
	return d
}

// Delete appends a delete.
func (d *Delta) Delete(n uint64) *Delta {
	if n == 0 {
		return d
	}
	d.push(DeleteOp(n))
	return d
}

// Push appends op to d, applying the merge rules described in
// SPEC_FULL.md §6.2 (ported from the push rules of the Rust origin this
// package's algebra is modelled on). It is exported so callers building
// a Delta op-by-op from an already-decoded source (e.g. JSON) get the
// same normalisation as the builder methods above.
func (d *Delta) Push(op Op) *Delta {
	d.push(op)
	return d
}

func (d *Delta) push(newOp Op) {
	if newOp.IsEmpty() {
		return
	}
	n := len(d.ops)
	if n == 0 {
		d.ops = append(d.ops, newOp)
		return
	}
	last := d.ops[n-1]

	// Rule: delete merges with a previous delete.
	if newOp.Kind == KindDelete && last.Kind == KindDelete {
		d.ops[n-1] = DeleteOp(last.Len + newOp.Len)
		return
	}

	// Rule: an insert that arrives after a delete is reordered before
	// it — inserts always precede adjacent deletes in a normalised
	// Delta — but first check whether the insert ahead of that delete
	// (if any) can absorb the new one directly.
	if newOp.Kind == KindInsert && last.Kind == KindDelete {
		if n >= 2 {
			prev := d.ops[n-2]
			if merged, ok := tryMergeInsert(prev, newOp); ok {
				d.ops[n-2] = merged
				return
			}
		}
		d.ops[n-1] = newOp
		d.ops = append(d.ops, last)
		return
	}

	// Rule: same-kind retain/insert merge when attributes match.
	if merged, ok := tryMergeInsert(last, newOp); ok {
		d.ops[n-1] = merged
		return
	}
	if newOp.Kind == KindRetain && last.Kind == KindRetain && last.Attributes.Equal(newOp.Attributes) {
		d.ops[n-1] = RetainOpAttr(last.Len+newOp.Len, last.Attributes)
		return
	}

	d.ops = append(d.ops, newOp)
}

// tryMergeInsert merges newOp into last when both are string inserts
// carrying identical attributes. Embeds never merge, matching the
// reference Quill Delta behavior for non-string insert payloads.
func tryMergeInsert(last, newOp Op) (Op, bool) {
	if last.Kind != KindInsert || newOp.Kind != KindInsert {
		return Op{}, false
	}
	if !last.IsString() || !newOp.IsString() {
		return Op{}, false
	}
	if !last.Attributes.Equal(newOp.Attributes) {
		return Op{}, false
	}
	ls, _ := last.Insert.Str()
	ns, _ := newOp.Insert.Str()
	return InsertOpAttr(StringValue(ls+ns), last.Attributes), true
}

// Chop removes a single trailing bare (unformatted) retain, which
// carries no information: retaining to the end of a document is
// already implicit.
func (d *Delta) Chop() *Delta {
	n := len(d.ops)
	if n == 0 {
		return d
	}
	last := d.ops[n-1]
	if last.Kind == KindRetain && last.Attributes.IsEmpty() {
		d.ops = d.ops[:n-1]
	}
	return d
}

// Concat appends other's ops onto d and returns the result as a new
// Delta; d and other are left untouched. Only other's first op is run
// through the normalising builder (so it can merge with d's trailing
// op); the rest of other is appended verbatim, matching the reference
// concat rather than re-normalising the whole of other.
func (d *Delta) Concat(other *Delta) *Delta {
	out := &Delta{ops: append([]Op(nil), d.ops...)}
	if len(other.ops) == 0 {
		return out
	}
	out.push(other.ops[0])
	out.ops = append(out.ops, other.ops[1:]...)
	return out
}

// Length returns the sum of OpLen across every op, regardless of kind.
func (d *Delta) Length() uint64 {
	var total uint64
	for _, op := range d.ops {
		total += op.OpLen()
	}
	return total
}

// DocumentLength returns the length of the document a document-only
// Delta (inserts only) or the net effect of a change Delta would
// produce: inserts add, deletes subtract, retains contribute nothing.
func (d *Delta) DocumentLength() int64 {
	var total int64
	for _, op := range d.ops {
		switch op.Kind {
		case KindInsert:
			total += int64(op.OpLen())
		case KindDelete:
			total -= int64(op.OpLen())
		}
	}
	return total
}

// Equal reports whether d and other contain the same ops in the same
// order, attributes included.
func (d *Delta) Equal(other *Delta) bool {
	if len(d.ops) != len(other.ops) {
		return false
	}
	for i, op := range d.ops {
		if !op.IsEqual(other.ops[i]) {
			return false
		}
	}
	return true
}

// ForEach calls fn once per op, in order.
func (d *Delta) ForEach(fn func(Op)) {
	for _, op := range d.ops {
		fn(op)
	}
}

// Filter returns a plain (non-normalising) slice of the ops for which
// predicate returns true; predicate receives each op with its index in d.
func (d *Delta) Filter(predicate func(op Op, index int) bool) []Op {
	var out []Op
	for i, op := range d.ops {
		if predicate(op, i) {
			out = append(out, op)
		}
	}
	return out
}

// Map applies fn to every op and returns the collected results.
func Map[T any](d *Delta, fn func(Op, int) T) []T {
	out := make([]T, len(d.ops))
	for i, op := range d.ops {
		out[i] = fn(op, i)
	}
	return out
}

// Partition splits d's ops into those for which predicate returns true
// and those for which it returns false, each a plain slice (no merging).
func (d *Delta) Partition(predicate func(op Op, index int) bool) (passed, failed []Op) {
	for i, op := range d.ops {
		if predicate(op, i) {
			passed = append(passed, op)
		} else {
			failed = append(failed, op)
		}
	}
	return passed, failed
}

// Reduce folds over d's ops left to right, starting from init.
func Reduce[T any](d *Delta, init T, fn func(acc T, op Op, index int) T) T {
	acc := init
	for i, op := range d.ops {
		acc = fn(acc, op, i)
	}
	return acc
}

// Slice returns the portion of d spanning [start, end) in document
// positions, splitting ops at the boundaries as needed. end == 0 means
// "to the end of d".
func (d *Delta) Slice(start, end uint64) *Delta {
	if end == 0 {
		end = d.Length()
	}
	out := New()
	it := NewIterator(d.ops)
	var index uint64
	for index < end && it.HasNext() {
		var next Op
		if index < start {
			next = it.Next(start - index)
		} else {
			next = it.Next(end - index)
			out.push(next)
		}
		index += next.OpLen()
	}
	return out
}
