package myers

// Replace wraps a Sink, coalescing an adjacent Delete immediately
// followed by an Insert (or vice versa, with no Equal between them)
// into a single Replace call on the wrapped Sink. Use it as the sink
// passed to Diff when the caller wants substitutions reported as one
// unit rather than a delete/insert pair.
type Replace struct {
	inner Sink

	haveDel            bool
	delA, delLen, delB int

	haveIns            bool
	insA, insB, insLen int
}

// NewReplace returns a Replace decorator forwarding to inner.
func NewReplace(inner Sink) *Replace {
	return &Replace{inner: inner}
}

func (r *Replace) Equal(aIndex, bIndex, length int) {
	r.flush()
	r.inner.Equal(aIndex, bIndex, length)
}

func (r *Replace) Delete(aIndex, length, bIndex int) {
	r.haveDel, r.delA, r.delLen, r.delB = true, aIndex, length, bIndex
}

func (r *Replace) Insert(aIndex, bIndex, length int) {
	r.haveIns, r.insA, r.insB, r.insLen = true, aIndex, bIndex, length
}

// Replace satisfies Sink but Diff never calls it on a decorator it is
// itself driving; present for interface completeness.
func (r *Replace) Replace(aIndex, delLen, bIndex, insLen int) {
	r.flush()
	r.inner.Replace(aIndex, delLen, bIndex, insLen)
}

func (r *Replace) Finish() {
	r.flush()
	r.inner.Finish()
}

func (r *Replace) flush() {
	switch {
	case r.haveDel && r.haveIns:
		r.inner.Replace(r.delA, r.delLen, r.insB, r.insLen)
	case r.haveDel:
		r.inner.Delete(r.delA, r.delLen, r.delB)
	case r.haveIns:
		r.inner.Insert(r.insA, r.insB, r.insLen)
	}
	r.haveDel, r.haveIns = false, false
}
