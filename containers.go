package keymaze

import "container/heap"

// Queue is a FIFO queue, used as the BFS frontier during graph reduction.
type Queue[T any] struct {
	q []T
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// While pops elements and calls f on each until the queue empties or f
// returns false.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Item is an entry in a PQ: a value plus its integer priority.
type Item[T any] struct {
	V  T
	P  int
	ix int
}

// MinQueue returns a min-heap over Items, ordering by P and breaking ties
// with the tie function (which must define a total order for determinism).
func MinQueue[T any](tie func(a, b T) bool) *PQ[T] {
	return &PQ[T]{
		h: pqheap[T]{tie: tie},
	}
}

type PQ[T any] struct {
	h pqheap[T]
}

func (pq *PQ[T]) Push(v T, pri int) {
	heap.Push(&pq.h, &Item[T]{V: v, P: pri})
}

func (pq *PQ[T]) Pop() (T, int) {
	it := heap.Pop(&pq.h).(*Item[T])
	return it.V, it.P
}

func (pq *PQ[T]) Len() int {
	return pq.h.Len()
}

type pqheap[T any] struct {
	q   []*Item[T]
	tie func(a, b T) bool
}

func (h pqheap[T]) Len() int { return len(h.q) }

func (h pqheap[T]) Less(i, j int) bool {
	if h.q[i].P != h.q[j].P {
		return h.q[i].P < h.q[j].P
	}
	return h.tie(h.q[i].V, h.q[j].V)
}

func (h pqheap[T]) Swap(i, j int) {
	q := h.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (h *pqheap[T]) Push(x any) {
	i := x.(*Item[T])
	i.ix = len(h.q)
	h.q = append(h.q, i)
}

func (h *pqheap[T]) Pop() any {
	old := h.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1   // for safety

	h.q = old[0 : n-1]
	return item
}
