package lasync_test

import (
	"github.com/lasync-go/lasync"
)

// A stream asks its provider for one element per call.
// The callback receives ok = false on end of stream; after that,
// a stream answers end of stream forever.
type stream[T any] func(callback func(v T, ok bool))

// element boxes a stream element for carrying through slots and
// result cells.
type element[T any] struct {
	value T
	ok    bool
}

type pair[A, B any] struct {
	first  A
	second B
}

// sliceStream yields the items of a slice, synchronously.
func sliceStream[T any](items []T) stream[T] {
	i := 0
	return func(callback func(T, bool)) {
		if i < len(items) {
			v := items[i]
			i++
			callback(v, true)
		} else {
			var zero T
			callback(zero, false)
		}
	}
}

// rangeStream yields from, from+1, ..., to-1, each deferred through ex.
func rangeStream(ex *lasync.Executor, from, to int) stream[int] {
	i := from
	return func(callback func(int, bool)) {
		v, ok := i, i < to
		if ok {
			i++
		}
		ex.Schedule(func() { callback(v, ok) })
	}
}

// slotStream adapts the consumer side of a slot into a stream.
func slotStream[T any](s lasync.Slot[element[T]]) stream[T] {
	return func(callback func(T, bool)) {
		s.Request(func(e element[T]) { callback(e.value, e.ok) })
	}
}

type node struct {
	payload  int
	subnodes []node
}

// scanNode delivers the payloads of n's subtrees, pre-order, one per
// consumer request, then calls cont. It suspends between requests;
// recursion into a subtree suspends this level's loop until the subtree
// is exhausted.
func scanNode(n *node, sink lasync.Provider[element[int]], cont func()) {
	i := -1
	lasync.Loop(func(next func()) {
		if i++; i >= len(n.subnodes) {
			cont()
			return
		}
		child := &n.subnodes[i]
		sink.Await(func(terminated bool) {
			if terminated {
				return
			}
			sink.Deliver(element[int]{child.payload, true})
			scanNode(child, sink, next)
		})
	})
}

// treeStream yields the payloads of a tree, pre-order, as a slot-backed
// provider, then answers end of stream forever.
func treeStream(root *node) stream[int] {
	s := lasync.NewSlot[element[int]]()
	sink := s.Provider()
	sink.Await(func(terminated bool) {
		if terminated {
			return
		}
		sink.Deliver(element[int]{root.payload, true})
		scanNode(root, sink, func() {
			lasync.Loop(func(next func()) {
				sink.Await(func(terminated bool) {
					if terminated {
						return
					}
					sink.Deliver(element[int]{})
					next()
				})
			})
		})
	})
	return slotStream(s)
}

// innerJoin yields pairs of elements from two streams, requesting both
// sides in parallel for every pair, and ends when either input ends.
func innerJoin[A, B any](a stream[A], b stream[B]) stream[pair[A, B]] {
	s := lasync.NewSlot[element[pair[A, B]]]()
	sink := s.Provider()
	lasync.Loop(func(next func()) {
		sink.Await(func(terminated bool) {
			if terminated {
				return
			}
			r := lasync.NewResult[pair[element[A], element[B]]](func(v pair[element[A], element[B]]) {
				if v.first.ok && v.second.ok {
					sink.Deliver(element[pair[A, B]]{pair[A, B]{v.first.value, v.second.value}, true})
				} else {
					sink.Deliver(element[pair[A, B]]{})
				}
				next()
			})
			setFirst := lasync.Setter(r, &r.Value().first)
			setSecond := lasync.Setter(r, &r.Value().second)
			r.Release()
			a(func(v A, ok bool) { setFirst(element[A]{v, ok}) })
			b(func(v B, ok bool) { setSecond(element[B]{v, ok}) })
		})
	})
	return slotStream(s)
}
