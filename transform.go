package delta

// Transform rebases other, a Delta authored concurrently with d against
// the same base document, so that it can be applied after d without
// reapplying d's own edits. priority resolves insert/insert ties: when
// true, d's inserts are considered to have happened first (d has
// priority) and are skipped over rather than retained twice.
func (d *Delta) Transform(other *Delta, priority bool) *Delta {
	thisIt := NewIterator(d.ops)
	otherIt := NewIterator(other.ops)
	result := New()

	for thisIt.HasNext() || otherIt.HasNext() {
		thisOp, thisOk := thisIt.Peek()
		otherOp, otherOk := otherIt.Peek()
		otherIsInsert := otherOk && otherOp.Kind == KindInsert

		if thisOk && thisOp.Kind == KindInsert && (priority || !otherIsInsert) {
			result.push(RetainOp(thisIt.Next(0).OpLen()))
			continue
		}
		if otherIsInsert {
			result.push(otherIt.Next(0))
			continue
		}

		length := thisIt.PeekLength()
		if otherIt.PeekLength() < length {
			length = otherIt.PeekLength()
		}
		thisConsumed := thisIt.Next(length)
		otherConsumed := otherIt.Next(length)

		if thisConsumed.Kind == KindDelete {
			// d already removed this span; other's corresponding op
			// is dropped, it has nothing left to act on.
			continue
		}
		if otherConsumed.Kind == KindDelete {
			result.push(otherConsumed)
			continue
		}
		// Both retain: rebase attributes.
		attrs := TransformAttrs(thisConsumed.Attributes, otherConsumed.Attributes, priority)
		result.push(RetainOpAttr(length, attrs))
	}

	return result.Chop()
}

// TransformPosition rebases a cursor position index, located in the
// document before d was applied, through d. priority breaks the tie
// when one of d's inserts lands exactly at index: when true, the
// position stays in front of the inserted text (it is not pushed
// forward); when false, it moves past it.
func (d *Delta) TransformPosition(index uint64, priority bool) uint64 {
	it := NewIterator(d.ops)
	var offset uint64

	for offset <= index && it.HasNext() {
		op, _ := it.Peek()
		length := op.OpLen()
		kind := op.Kind

		switch kind {
		case KindDelete:
			it.Next(0)
			if length > index-offset {
				index -= index - offset
			} else {
				index -= length
			}
			continue
		case KindInsert:
			it.Next(0)
			if offset < index || !priority {
				index += length
			}
		default:
			it.Next(0)
		}
		offset += length
	}

	return index
}
