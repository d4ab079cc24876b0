// Package myers implements Myers' O((N+M)D) shortest-edit-script diff
// algorithm over rune slices: a full-trace forward search followed by a
// backward walk over the trace to recover the edit script, reported to
// a Sink as coalesced equal/delete/insert runs.
package myers

// Sink receives the edit script produced by Diff, in document order.
// Replace is never called by Diff itself — only by the Replace
// decorator in this package — but every Sink must implement it so it
// can be used as the target of that decorator.
type Sink interface {
	// Equal is called for a run of length matching elements:
	// a[aIndex:aIndex+length] == b[bIndex:bIndex+length].
	Equal(aIndex, bIndex, length int)
	// Delete is called for a run of length elements present in a but not b.
	Delete(aIndex, length, bIndex int)
	// Insert is called for a run of length elements present in b but not a.
	Insert(aIndex, bIndex, length int)
	// Replace is called in place of an adjacent Delete+Insert pair by
	// the Replace decorator; Diff never calls it directly.
	Replace(aIndex, delLen, bIndex, insLen int)
	// Finish is called once after the edit script is complete.
	Finish()
}

// BaseSink is an embeddable no-op Sink; concrete sinks only need to
// implement the callbacks they care about.
type BaseSink struct{}

func (BaseSink) Equal(aIndex, bIndex, length int)            {}
func (BaseSink) Delete(aIndex, length, bIndex int)           {}
func (BaseSink) Insert(aIndex, bIndex, length int)           {}
func (BaseSink) Replace(aIndex, delLen, bIndex, insLen int)  {}
func (BaseSink) Finish()                                    {}

// DefaultReplace gives a Sink the reference "replace is delete then
// insert" behavior, for sinks that want a Replace implementation
// without a genuinely distinct combined representation.
func DefaultReplace(s Sink, aIndex, delLen, bIndex, insLen int) {
	s.Delete(aIndex, delLen, bIndex)
	s.Insert(aIndex, bIndex, insLen)
}

// Diff runs Myers' algorithm over a[a0:a1] vs b[b0:b1] and reports the
// resulting edit script to sink as coalesced equal/delete/insert runs,
// followed by a single Finish call.
func Diff(sink Sink, a []rune, a0, a1 int, b []rune, b0, b1 int) {
	d := &driver{sink: sink}
	d.run(a[a0:a1], b[b0:b1], a0, b0)
	d.finish()
	sink.Finish()
}

// driver accumulates equal/delete/insert runs so the unit-length moves
// backtrack produces collapse into a single Sink callback per maximal
// run, matching the granularity callers expect.
type driver struct {
	sink Sink

	haveEq          bool
	eqA, eqB, eqLen int

	haveDel            bool
	delA, delLen, delB int

	haveIns            bool
	insA, insB, insLen int
}

func (d *driver) equal(aIndex, bIndex, length int) {
	if length == 0 {
		return
	}
	d.flushDel()
	d.flushIns()
	if d.haveEq && d.eqA+d.eqLen == aIndex && d.eqB+d.eqLen == bIndex {
		d.eqLen += length
		return
	}
	d.flushEq()
	d.haveEq, d.eqA, d.eqB, d.eqLen = true, aIndex, bIndex, length
}

func (d *driver) delete(aIndex, length, bIndex int) {
	if length == 0 {
		return
	}
	d.flushEq()
	if d.haveDel && d.delA+d.delLen == aIndex {
		d.delLen += length
		return
	}
	d.flushDel()
	d.haveDel, d.delA, d.delLen, d.delB = true, aIndex, length, bIndex
}

func (d *driver) insert(aIndex, bIndex, length int) {
	if length == 0 {
		return
	}
	d.flushEq()
	if d.haveIns && d.insB+d.insLen == bIndex {
		d.insLen += length
		return
	}
	d.flushIns()
	d.haveIns, d.insA, d.insB, d.insLen = true, aIndex, bIndex, length
}

func (d *driver) flushEq() {
	if d.haveEq {
		d.sink.Equal(d.eqA, d.eqB, d.eqLen)
		d.haveEq = false
	}
}

func (d *driver) flushDel() {
	if d.haveDel {
		d.sink.Delete(d.delA, d.delLen, d.delB)
		d.haveDel = false
	}
}

func (d *driver) flushIns() {
	if d.haveIns {
		d.sink.Insert(d.insA, d.insB, d.insLen)
		d.haveIns = false
	}
}

func (d *driver) finish() {
	d.flushEq()
	d.flushDel()
	d.flushIns()
}

// run diffs a against b, a and b being local slices with aOff/bOff the
// offsets needed to translate their indices back into the caller's
// original a0/b0-relative coordinate space.
func (d *driver) run(a, b []rune, aOff, bOff int) {
	n, m := len(a), len(b)
	switch {
	case n == 0 && m == 0:
		return
	case n == 0:
		d.insert(aOff, bOff, m)
		return
	case m == 0:
		d.delete(aOff, n, bOff)
		return
	}

	trace := shortestEdit(a, b)
	moves := backtrack(a, b, trace)
	for _, mv := range moves {
		switch {
		case mv.prevX == mv.x && mv.prevY == mv.y:
			continue
		case mv.x-mv.prevX == mv.y-mv.prevY:
			d.equal(aOff+mv.prevX, bOff+mv.prevY, mv.x-mv.prevX)
		case mv.prevY == mv.y:
			d.delete(aOff+mv.prevX, mv.x-mv.prevX, bOff+mv.prevY)
		default:
			d.insert(aOff+mv.prevX, bOff+mv.prevY, mv.y-mv.prevY)
		}
	}
}

// move is one backtracked step of the edit graph: a diagonal (equal)
// step has x-prevX == y-prevY; a horizontal step (prevY == y) is a
// delete; a vertical step (prevX == x) is an insert.
type move struct {
	prevX, prevY, x, y int
}

// shortestEdit runs the forward greedy search, returning one snapshot
// of the "furthest-reaching x per diagonal" frontier per edit distance
// d, from d=0 up to (and including) the d at which a and b are fully
// reconciled.
func shortestEdit(a, b []rune) [][]int {
	n, m := len(a), len(b)
	max := n + m
	offset := max
	v := make([]int, 2*max+1)
	v[1+offset] = 0

	var trace [][]int
	for d := 0; d <= max; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[k-1+offset] < v[k+1+offset]) {
				x = v[k+1+offset]
			} else {
				x = v[k-1+offset] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[k+offset] = x
			if x >= n && y >= m {
				return trace
			}
		}
	}
	return trace
}

// backtrack walks the trace from (n, m) back to (0, 0), yielding one
// move per unit step (a single diagonal match, or a single horizontal
// delete or vertical insert step). The moves are returned in forward
// (document) order.
func backtrack(a, b []rune, trace [][]int) []move {
	n, m := len(a), len(b)
	max := n + m
	offset := max
	x, y := n, m

	var moves []move
	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[k-1+offset] < v[k+1+offset]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[prevK+offset]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			moves = append(moves, move{x - 1, y - 1, x, y})
			x--
			y--
		}
		if d > 0 {
			moves = append(moves, move{prevX, prevY, x, y})
		}
		x, y = prevX, prevY
	}

	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
