package lasync

// A Slot is the consumer handle of a single-element rendezvous between
// one consumer, which requests values, and one producer, which supplies
// them. Either side may arrive first; the slot parks the early side's
// callback and fires it when the other side arrives.
//
// Consumer handles are strong: their reference count, maintained with
// [Slot.Acquire] and [Slot.Release], drives the slot's liveness. When it
// reaches zero the slot is abandoned, which is the only cancellation
// signal the slot provides. A producer observes abandonment through the
// terminated argument of its await callback; it is a normal termination
// signal, not an error.
//
// A Slot must not be shared by more than one [Executor].
type Slot[T any] struct {
	d *slotShared[T]
}

// A Provider is the producer handle of a slot. It is a weak observer:
// holding one does not keep the slot alive.
type Provider[T any] struct {
	d *slotShared[T]
}

type slotShared[T any] struct {
	owners        int
	awaitsRequest func(terminated bool)
	awaitsData    func(T)
}

// NewSlot creates a new slot.
//
// The caller owns the first consumer-side co-ownership and must
// release it.
func NewSlot[T any]() Slot[T] {
	return Slot[T]{d: &slotShared[T]{owners: 1}}
}

// Provider returns a producer handle for s.
func (s Slot[T]) Provider() Provider[T] {
	return Provider[T]{d: s.d}
}

// Acquire adds a consumer-side co-ownership and returns s, for capturing
// into a callback in one expression.
func (s Slot[T]) Acquire() Slot[T] {
	if s.d.owners <= 0 {
		panic("lasync: slot already abandoned")
	}
	s.d.owners++
	return s
}

// Release drops a consumer-side co-ownership. The last release abandons
// the slot: a parked request-waiting callback fires once with
// terminated = true, and any later [Provider.Await] fires its callback
// with terminated = true immediately.
func (s Slot[T]) Release() {
	d := s.d
	if d.owners <= 0 {
		panic("lasync: slot released more often than acquired")
	}
	if d.owners--; d.owners > 0 {
		return
	}
	d.awaitsData = nil
	if r := d.awaitsRequest; r != nil {
		d.awaitsRequest = nil
		r(true)
	}
}

// Request registers h to receive the next delivered value.
//
// At most one data-waiting callback may be registered at a time;
// a second registration panics. If the producer is awaiting a request,
// its parked callback fires immediately with terminated = false, which
// typically makes the producer compute and deliver; h then fires before
// Request returns. The callback is cleared before it is invoked, so h
// may issue the next Request from within itself.
func (s Slot[T]) Request(h func(T)) {
	d := s.d
	if d.owners <= 0 {
		panic("lasync: request on an abandoned slot")
	}
	if d.awaitsData != nil {
		panic("lasync: data-waiting callback already registered")
	}
	d.awaitsData = h
	if r := d.awaitsRequest; r != nil {
		d.awaitsRequest = nil
		r(false)
	}
}

// Await registers r to be notified of the consumer's next request.
//
// If the slot is already abandoned, r fires immediately with
// terminated = true. If a request is already pending, r fires
// immediately with terminated = false. Otherwise r is parked until
// the consumer requests or abandons. At most one request-waiting
// callback may be registered at a time; a second registration panics.
func (p Provider[T]) Await(r func(terminated bool)) {
	d := p.d
	if d.owners <= 0 {
		r(true)
		return
	}
	if d.awaitsRequest != nil {
		panic("lasync: request-waiting callback already registered")
	}
	if d.awaitsData != nil {
		r(false)
		return
	}
	d.awaitsRequest = r
}

// Deliver hands v to the waiting consumer callback.
//
// A consumer callback must be waiting; delivering without one, or after
// abandonment, panics. The callback is cleared before it is invoked, so
// it may issue the next request from within itself.
func (p Provider[T]) Deliver(v T) {
	d := p.d
	if d.owners <= 0 {
		panic("lasync: deliver on an abandoned slot")
	}
	h := d.awaitsData
	if h == nil {
		panic("lasync: deliver without a waiting consumer")
	}
	d.awaitsData = nil
	h(v)
}
