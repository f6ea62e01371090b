package queue

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// item is a value waiting in the queue along with it's ordering keys.
type item struct {
	value    interface{}
	priority int
	seq      uint64
}

// Queue is a min-priority queue. Items with the lowest priority come out
// first; items of equal priority come out in the order they were pushed.
// Push and Pop are both O(log n).
type Queue struct {
	heap *binaryheap.Heap
	seq  uint64
}

// New returns an empty Queue
func New() *Queue {
	return &Queue{heap: binaryheap.NewWith(compare)}
}

// compare orders by priority, then by insertion sequence
func compare(a, b interface{}) int {
	ia := a.(*item)
	ib := b.(*item)
	switch {
	case ia.priority < ib.priority:
		return -1
	case ia.priority > ib.priority:
		return 1
	case ia.seq < ib.seq:
		return -1
	case ia.seq > ib.seq:
		return 1
	}
	return 0
}

// Push adds v with the given priority.
func (q *Queue) Push(priority int, v interface{}) {
	q.heap.Push(&item{value: v, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes & returns the next value & it's priority.
// ok is false if the queue is empty.
func (q *Queue) Pop() (v interface{}, priority int, ok bool) {
	raw, ok := q.heap.Pop()
	if !ok {
		return nil, 0, false
	}
	it := raw.(*item)
	return it.value, it.priority, true
}

// Peek returns the priority of the next value without removing it.
func (q *Queue) Peek() (int, bool) {
	raw, ok := q.heap.Peek()
	if !ok {
		return 0, false
	}
	return raw.(*item).priority, true
}

// Len returns how many values are waiting
func (q *Queue) Len() int {
	return q.heap.Size()
}

// Empty is true when there is nothing left to pop
func (q *Queue) Empty() bool {
	return q.heap.Empty()
}
