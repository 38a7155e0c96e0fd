// Package lasync is a small library of primitives for writing
// callback-driven asynchronous code: pipelines of data providers and
// consumers, traversals that suspend between steps, parallel joins.
//
// The library is three primitives and their interaction contracts.
// It owns no event loop and does no I/O; a trivial single-threaded
// deferred-task queue, such as [Executor], is sufficient to drive it.
//
// # Loop
//
// [Loop] runs a body function that receives a continuation handle.
// Calling the handle schedules the next iteration. If the handle is
// called synchronously, from within the body, the call collapses into
// a trampoline instead of recursing; if it is captured into a callback
// and called later, the body simply runs again at that point. The body's
// captured variables are the iteration context, and they live exactly as
// long as something can still call the handle. A body that returns
// without arranging another call ends the loop.
//
// The typical shape is a body that hands the continuation to an
// asynchronous operation:
//
//	lasync.Loop(func(next func()) {
//		stream.next(func(v int, ok bool) {
//			if !ok {
//				return // end of stream ends the loop
//			}
//			sum += v
//			next()
//		})
//	})
//
// It makes no difference whether stream.next calls its callback before
// or after returning; the loop neither overflows the stack nor stalls
// either way.
//
// # Result
//
// [Result] is a shared cell holding a value and a finalizer. The
// finalizer fires exactly once, with the value, when the last co-owner
// releases the cell. Handing co-ownerships to concurrent branches turns
// the reference count into a join: whoever finishes last triggers
// delivery, and the callback can never be silently dropped. [Setter]
// manufactures per-field callbacks from one cell for gathering several
// sub-results into a composite value.
//
// # Slot
//
// [Slot] mediates between a consumer that requests the next value and a
// producer that supplies it, one value at a time, in either arrival
// order. The producer side, [Provider], is a weak observer: when the
// consumer drops its last reference, a waiting producer is notified with
// terminated = true and winds itself down. That abandonment signal is
// the only form of cancellation in the library.
//
// A data provider is typically composed from all three: a slot facing
// the consumer, driven by a loop whose body awaits a request, computes
// (possibly by further asynchronous calls gathered through a result
// cell), delivers, and continues.
//
// # Scheduling Model
//
// Everything is single-threaded and cooperative. The primitives never
// wait or block; suspension is storing a callback for someone else to
// invoke. An external executor may defer callbacks arbitrarily, but must
// invoke them one at a time, never in overlapping frames. There are no
// locks around the shared records; the single-threaded discipline is
// what makes mutation through any co-owner safe.
//
// # Contract Violations
//
// Registering a second waiting callback on either side of a slot,
// delivering without a waiting consumer, or releasing a cell more often
// than it was acquired are programming errors. The library fails fast:
// it panics. Abandonment, by contrast, is a normal signal and is
// delivered silently.
package lasync
