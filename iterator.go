package delta

// Iterator is an offset-aware cursor over a borrowed slice of Op. Unlike
// a plain range loop, it can yield an arbitrary-length prefix of the
// "current" op via Next, leaving the remainder in place for the next
// call — the building block every OT algorithm in this package is
// written against.
type Iterator struct {
	ops    []Op
	index  int
	offset uint64
}

// NewIterator returns an Iterator positioned at the start of ops. The
// slice is borrowed, not copied; callers must not mutate it while the
// iterator is in use.
func NewIterator(ops []Op) *Iterator {
	return &Iterator{ops: ops}
}

// HasNext reports whether any length remains under the cursor.
func (it *Iterator) HasNext() bool {
	return it.PeekLength() < maxUint64
}

const maxUint64 = ^uint64(0)

// PeekLength returns the number of positions left in the op currently
// under the cursor, or maxUint64 if the iterator is exhausted.
func (it *Iterator) PeekLength() uint64 {
	if it.index >= len(it.ops) {
		return maxUint64
	}
	return it.ops[it.index].OpLen() - it.offset
}

// PeekType returns the kind of the op currently under the cursor.
// Past the end of the underlying slice it returns KindRetain, matching
// the convention that an exhausted iterator behaves as an infinite
// retain (nothing left to touch).
func (it *Iterator) PeekType() OpKind {
	if it.index >= len(it.ops) {
		return KindRetain
	}
	return it.ops[it.index].Kind
}

// Peek returns the op currently under the cursor without advancing,
// and false if the iterator is exhausted.
func (it *Iterator) Peek() (Op, bool) {
	if it.index >= len(it.ops) {
		return Op{}, false
	}
	return it.ops[it.index], true
}

// Next advances the cursor by up to length positions of the current op
// and returns the consumed slice as its own Op (attributes preserved).
// length == 0 means "take the rest of the current op". A non-string
// insert (an embed) is indivisible: it must be consumed whole, never
// partially.
func (it *Iterator) Next(length uint64) Op {
	if length == 0 {
		length = maxUint64
	}
	op, ok := it.Peek()
	if !ok {
		return RetainOp(maxUint64)
	}

	opLen := op.OpLen()
	actual := length
	if actual > opLen-it.offset {
		actual = opLen - it.offset
	}

	switch op.Kind {
	case KindInsert:
		if op.IsString() {
			s, _ := op.Insert.Str()
			runes := []rune(s)
			sub := string(runes[it.offset : it.offset+actual])
			if it.offset+actual == opLen {
				it.index++
				it.offset = 0
			} else {
				it.offset += actual
			}
			return InsertOpAttr(StringValue(sub), op.Attributes)
		}
		// Embeds are indivisible: offset must be 0 and actual must be 1.
		it.index++
		it.offset = 0
		return op
	default:
		if it.offset+actual == opLen {
			it.index++
			it.offset = 0
		} else {
			it.offset += actual
		}
		if op.Kind == KindRetain {
			return RetainOpAttr(actual, op.Attributes)
		}
		return DeleteOp(actual)
	}
}

// Rest returns every remaining op from the cursor to the end, including
// a partial remainder of the op currently under the cursor if the
// cursor sits mid-op.
func (it *Iterator) Rest() []Op {
	if !it.HasNext() {
		return nil
	}
	if it.offset == 0 {
		rest := make([]Op, len(it.ops)-it.index)
		copy(rest, it.ops[it.index:])
		return rest
	}
	out := []Op{it.Next(0)}
	out = append(out, it.ops[it.index:]...)
	return out
}
