package delta

import "github.com/deltaot/delta/internal/myers"

// nulCharacter stands in for any non-string insert (an embed) when a
// Delta is flattened to a rune stream for the Myers diff step: embeds
// are opaque to character-level diffing, so every embed is represented
// by the same placeholder rune. Two different embeds therefore look
// identical to Myers; docDiffSink re-checks IsSameOperation on any
// apparent match to catch that false positive.
const nulCharacter = '\x00'

// toDocumentRunes flattens a document Delta (insert-only) into the
// rune stream DiffDoc runs Myers over. It returns ErrNotADocument if d
// contains a retain or delete.
func toDocumentRunes(d *Delta) ([]rune, error) {
	var out []rune
	for _, op := range d.ops {
		if op.Kind != KindInsert {
			return nil, ErrNotADocument
		}
		if op.IsString() {
			s, _ := op.Insert.Str()
			out = append(out, []rune(s)...)
		} else {
			out = append(out, nulCharacter)
		}
	}
	return out, nil
}

// DiffDoc computes the change Delta that transforms the document d into
// the document other: d.Compose(d.DiffDoc(other)) reconstructs other
// (up to trailing chop). Both d and other must be documents (insert
// only); ErrNotADocument is returned otherwise.
func (d *Delta) DiffDoc(other *Delta) (*Delta, error) {
	aRunes, err := toDocumentRunes(d)
	if err != nil {
		return nil, err
	}
	bRunes, err := toDocumentRunes(other)
	if err != nil {
		return nil, err
	}

	sink := &docDiffSink{
		thisIt:  NewIterator(d.ops),
		otherIt: NewIterator(other.ops),
		result:  New(),
	}
	myers.Diff(myers.NewReplace(sink), aRunes, 0, len(aRunes), bRunes, 0, len(bRunes))
	return sink.result.Chop(), nil
}

// docDiffSink translates the rune-index edit script Myers produces back
// into Delta ops, by replaying both sides' Iterators in lockstep. It
// never looks at the aIndex/bIndex Myers supplies — the iterators are
// purely sequential, so only run lengths matter.
type docDiffSink struct {
	myers.BaseSink
	thisIt, otherIt *Iterator
	result          *Delta
}

func (s *docDiffSink) Equal(aIndex, bIndex, length int) {
	remaining := uint64(length)
	for remaining > 0 {
		l := s.thisIt.PeekLength()
		if ol := s.otherIt.PeekLength(); ol < l {
			l = ol
		}
		if l > remaining {
			l = remaining
		}
		thisOp := s.thisIt.Next(l)
		otherOp := s.otherIt.Next(l)

		// Myers matched these runes, but two distinct embeds both
		// render as nulCharacter: only a genuine same-operation match
		// is a real retain, anything else is a removal of the old
		// value and insertion of the new one.
		if thisOp.IsSameOperation(otherOp) {
			s.result.push(RetainOpAttr(l, DiffAttrs(thisOp.Attributes, otherOp.Attributes)))
		} else {
			s.result.push(otherOp)
			s.result.push(DeleteOp(l))
		}
		remaining -= l
	}
}

func (s *docDiffSink) Delete(aIndex, length, bIndex int) {
	remaining := uint64(length)
	for remaining > 0 {
		l := s.thisIt.PeekLength()
		if l > remaining {
			l = remaining
		}
		s.thisIt.Next(l)
		s.result.push(DeleteOp(l))
		remaining -= l
	}
}

func (s *docDiffSink) Insert(aIndex, bIndex, length int) {
	remaining := uint64(length)
	for remaining > 0 {
		l := s.otherIt.PeekLength()
		if l > remaining {
			l = remaining
		}
		s.result.push(s.otherIt.Next(l))
		remaining -= l
	}
}

// Replace handles a coalesced delete+insert pair from the Replace
// adapter: the deleted span and the inserted span advance independent
// cursors (thisIt/otherIt), so the two are just run back to back rather
// than consumed length-for-length against each other.
func (s *docDiffSink) Replace(aIndex, delLen, bIndex, insLen int) {
	s.Delete(aIndex, delLen, bIndex)
	s.Insert(aIndex, bIndex, insLen)
}

// InvertDoc derives the change Delta that, composed after d, undoes
// d's effect against base (the document d was applied to): i.e.
// base.Compose(d).Compose(d.InvertDoc(base)) reconstructs base.
func (d *Delta) InvertDoc(base *Delta) *Delta {
	inverted := New()
	var baseIndex uint64

	for _, op := range d.ops {
		switch {
		case op.Kind == KindInsert:
			inverted.Delete(op.OpLen())

		case op.Kind == KindRetain && op.Attributes.IsEmpty():
			inverted.Retain(op.Len)
			baseIndex += op.Len

		case op.Kind == KindDelete || (op.Kind == KindRetain && !op.Attributes.IsEmpty()):
			length := op.OpLen()
			slice := base.Slice(baseIndex, baseIndex+length)
			for _, baseOp := range slice.ops {
				if op.Kind == KindDelete {
					inverted.push(baseOp)
				} else {
					inverted.push(RetainOpAttr(baseOp.OpLen(), InvertAttrs(op.Attributes, baseOp.Attributes)))
				}
			}
			baseIndex += length
		}
	}
	return inverted.Chop()
}

// EachLine walks d (which must be a document: insert-only) one line at
// a time, splitting on '\n'. predicate is called with the accumulated
// line Delta (never including the trailing newline itself), the
// newline's own attributes, and a 0-based line index; returning false
// stops iteration early. If d contains a non-insert op, EachLine stops
// silently at that point rather than returning an error — unlike
// DiffDoc, a malformed document here is a caller bug, not a condition
// worth surfacing as a failure. Any trailing partial line (content
// after the last newline) is delivered once more after the main loop,
// with empty attributes.
func (d *Delta) EachLine(predicate func(line *Delta, attrs AttrMap, lineIndex int) bool) {
	it := NewIterator(d.ops)
	line := New()
	lineIndex := 0

	for it.HasNext() {
		if it.PeekType() != KindInsert {
			return
		}
		op, _ := it.Peek()
		if !op.IsString() {
			line.push(it.Next(0))
			continue
		}

		s, _ := op.Insert.Str()
		runes := []rune(s)
		remaining := runes[it.offset:]
		nlPos := -1
		for i, r := range remaining {
			if r == '\n' {
				nlPos = i
				break
			}
		}

		if nlPos < 0 {
			line.push(it.Next(0))
			continue
		}
		if nlPos > 0 {
			line.push(it.Next(uint64(nlPos)))
		}
		nlOp := it.Next(1)
		if !predicate(line, nlOp.Attributes, lineIndex) {
			return
		}
		lineIndex++
		line = New()
	}

	if !line.IsEmpty() {
		predicate(line, AttrMap{}, lineIndex)
	}
}
