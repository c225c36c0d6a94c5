package fraci

// rawGenerator is the lazy, restartable candidate stream described by
// spec.md §4.4 (C4), parameterized over the raw key representation (string
// or []byte) so string and binary factories can share one implementation.
//
// Its state is the generating function, the queue of not-yet-split
// sub-intervals (initially just the original bounds), the attempt count,
// the retry limit, and the error that ended the sequence, if any. Two rawGenerators
// built from the same genFn, lo, hi, and maxRetries always produce the same
// sequence, because genFn is pure and the queue's evolution is a
// deterministic function of prior state.
type rawGenerator[T any] struct {
	genFn      func(lo, hi *T) (T, *Error)
	maxRetries int
	queue      [][2]*T
	count      int
	err        *Error
}

func newRawGenerator[T any](genFn func(lo, hi *T) (T, *Error), lo, hi *T, maxRetries int) *rawGenerator[T] {
	return &rawGenerator[T]{
		genFn:      genFn,
		maxRetries: maxRetries,
		queue:      [][2]*T{{lo, hi}},
	}
}

// next produces the next retry candidate. The first call returns
// generateKeyBetween(lo, hi); each subsequent call re-splits one of the two
// sub-intervals opened by the previous candidate, breadth-first, so every
// candidate stays strictly within the original (lo, hi) — this realizes
// spec.md §4.4's suggested scheme (midpoint(lo,c1), midpoint(c1,hi),
// midpoint(lo,midpoint(lo,c1)), …) exactly, since splitting (lo,c1) first
// yields midpoint(lo,c1) and splitting (c1,hi) next yields midpoint(c1,hi).
//
// next reports ok=false once maxRetries candidates have been produced, once
// the queue is exhausted (cannot happen before maxRetries for nonzero
// maxRetries, since every split enqueues two new intervals), or once a
// split fails with ErrLengthExceeded — in which case Err returns that
// failure and the generator is permanently exhausted.
func (g *rawGenerator[T]) next() (T, bool) {
	var zero T
	if g.err != nil || g.count >= g.maxRetries || len(g.queue) == 0 {
		return zero, false
	}
	front := g.queue[0]
	g.queue = g.queue[1:]
	candidate, err := g.genFn(front[0], front[1])
	if err != nil {
		g.err = err
		return zero, false
	}
	g.count++
	c := candidate
	g.queue = append(g.queue, [2]*T{front[0], &c}, [2]*T{&c, front[1]})
	return candidate, true
}

func (g *rawGenerator[T]) lastErr() *Error { return g.err }
