package delta

// Compose returns the Delta that results from applying other after d: a
// single Delta equivalent to applying d then other in sequence. The
// scan is driven by two Iterators rather than raw op reslicing, because
// retain/retain composition needs the attributes of the consumed slice
// from both sides.
func (d *Delta) Compose(other *Delta) *Delta {
	thisIt := NewIterator(d.ops)
	otherIt := NewIterator(other.ops)
	result := New()

	// A leading pure-retain in other just passes through whatever
	// leading inserts d already has, unchanged, before the lockstep
	// scan below ever sees them.
	if op, ok := otherIt.Peek(); ok && op.Kind == KindRetain && op.Attributes.IsEmpty() {
		var firstLeft uint64
		for firstLeft < op.Len {
			next, ok := thisIt.Peek()
			if !ok || next.Kind != KindInsert {
				break
			}
			length := next.OpLen()
			if length > op.Len-firstLeft {
				length = op.Len - firstLeft
			}
			result.push(thisIt.Next(length))
			firstLeft += length
		}
		if firstLeft > 0 {
			otherIt.Next(firstLeft)
		}
	}

	for thisIt.HasNext() || otherIt.HasNext() {
		if otherOp, ok := otherIt.Peek(); ok && otherOp.Kind == KindInsert {
			result.push(otherIt.Next(0))
			continue
		}
		if thisOp, ok := thisIt.Peek(); ok && thisOp.Kind == KindDelete {
			result.push(thisIt.Next(0))
			continue
		}

		length := thisIt.PeekLength()
		if otherIt.PeekLength() < length {
			length = otherIt.PeekLength()
		}
		thisOp := thisIt.Next(length)
		otherOp := otherIt.Next(length)

		if otherOp.Kind == KindRetain {
			var newOp Op
			keepNull := thisOp.Kind == KindRetain
			attrs := ComposeAttrs(thisOp.Attributes, otherOp.Attributes, keepNull)
			if thisOp.Kind == KindRetain {
				newOp = RetainOpAttr(length, attrs)
			} else {
				newOp = InsertOpAttr(thisOp.Insert, attrs)
			}
			result.push(newOp)

			// Fast exit: if other is exhausted and what we just
			// pushed matches d's current tail verbatim, the rest of
			// d carries over unchanged.
			if !otherIt.HasNext() {
				rLen := len(result.ops)
				tLen := len(d.ops)
				if rLen > 0 && tLen > 0 && result.ops[rLen-1].IsEqual(d.ops[tLen-1]) {
					rest := thisIt.Rest()
					tail := FromOps(rest)
					return result.Concat(tail).Chop()
				}
			}
			continue
		}

		// otherOp.Kind == KindDelete: it wins over a this-side retain.
		if thisOp.Kind == KindRetain {
			result.push(otherOp)
		}
		// thisOp.Kind == KindInsert and otherOp.Kind == KindDelete: the
		// insert is cancelled outright, nothing is pushed.
	}

	return result.Chop()
}
