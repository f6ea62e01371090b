package queue

import (
	"testing"
)

func TestQueueOrder(t *testing.T) {
	q := New()
	q.Push(5, "e")
	q.Push(1, "a")
	q.Push(3, "c")
	q.Push(2, "b")
	q.Push(4, "d")

	if q.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", q.Len())
	}

	want := []string{"a", "b", "c", "d", "e"}
	for i, w := range want {
		v, p, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if v.(string) != w {
			t.Errorf("pop %d = %v (priority %d), want %v", i, v, p, w)
		}
	}

	if !q.Empty() {
		t.Error("queue should be empty")
	}
	if _, _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue returned ok")
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue returned ok")
	}
}

func TestQueueTiesAreFIFO(t *testing.T) {
	q := New()
	for i := 0; i < 100; i++ {
		q.Push(i%3, i)
	}

	prevPriority, prevValue := -1, -1
	for !q.Empty() {
		v, p, _ := q.Pop()
		i := v.(int)
		if p < prevPriority {
			t.Fatalf("priority went backwards: %d after %d", p, prevPriority)
		}
		if p == prevPriority && i < prevValue {
			t.Fatalf("tie broken out of insertion order: %d after %d", i, prevValue)
		}
		prevPriority, prevValue = p, i
	}
}

func TestQueuePeek(t *testing.T) {
	q := New()
	q.Push(7, nil)
	q.Push(2, nil)

	p, ok := q.Peek()
	if !ok || p != 2 {
		t.Errorf("Peek() = %d, %v want 2, true", p, ok)
	}
	if q.Len() != 2 {
		t.Errorf("Peek should not remove, Len() = %d", q.Len())
	}
}
