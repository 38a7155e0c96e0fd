package lasync

// A Result is a shared handle to a value paired with a finalizer.
//
// The finalizer runs exactly once, synchronously, at the moment the last
// co-owner releases the cell, and receives the value as it was at that
// moment. This is the sole mechanism by which the cell delivers its
// result; a callback boxed in a Result can never be silently dropped.
//
// Go has no deterministic destruction, so ownership is counted
// explicitly: the constructor hands out the first co-ownership,
// [Result.Acquire] adds one, and [Result.Release] drops one. Copies of
// a Result share the same cell; copying is not acquiring.
//
// A Result must not be shared by more than one [Executor].
type Result[T any] struct {
	d *resultCell[T]
}

type resultCell[T any] struct {
	value    T
	finalize func(T)
	owners   int
}

// NewResult creates a [Result] holding the zero value of T.
//
// The caller owns the first co-ownership and must release it.
func NewResult[T any](finalize func(T)) Result[T] {
	var initial T
	return NewResultValue(finalize, initial)
}

// NewResultValue creates a [Result] holding initial.
//
// The caller owns the first co-ownership and must release it.
func NewResultValue[T any](finalize func(T), initial T) Result[T] {
	if finalize == nil {
		panic("lasync: nil finalizer")
	}
	return Result[T]{d: &resultCell[T]{value: initial, finalize: finalize, owners: 1}}
}

// Value returns a mutable view of the stored value.
// Mutation through any co-owner is visible to all of them.
func (r Result[T]) Value() *T {
	return &r.d.value
}

// Acquire adds a co-ownership and returns r, for capturing into
// a callback in one expression.
func (r Result[T]) Acquire() Result[T] {
	if r.d.owners <= 0 {
		panic("lasync: result cell already finalized")
	}
	r.d.owners++
	return r
}

// Release drops a co-ownership. The last release moves the value out of
// the cell and runs the finalizer with it, synchronously. The cell must
// not be used afterwards; the finalizer must not observe the cell.
func (r Result[T]) Release() {
	d := r.d
	if d.owners <= 0 {
		panic("lasync: result cell released more often than acquired")
	}
	if d.owners--; d.owners > 0 {
		return
	}
	var value T
	value, d.value = d.value, value
	d.finalize(value)
}

// Setter returns a one-shot callback that stores its argument in *field
// and releases the co-ownership it holds on r.
//
// The field pointer is expected to point into r's value, so that several
// setters manufactured from one cell gather sub-results into one
// composite: each pending setter keeps the cell alive, and the finalizer
// fires once every setter has been called and every other co-ownership
// has been released. The cell's reference count replaces counting
// outstanding sub-results by hand.
//
// The returned callback must be called exactly once.
func Setter[T, F any](r Result[T], field *F) func(F) {
	r.Acquire()
	return func(v F) {
		*field = v
		r.Release()
	}
}
