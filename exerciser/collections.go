package exerciser

import (
	"iter"

	"github.com/kchristidis/lists/deque"
	"github.com/kchristidis/lists/queue"
	"github.com/kchristidis/lists/stack"
	"github.com/pkg/errors"
)

// Kinds lists the collections that ForKind knows about.
var Kinds = []string{"stack", "queue", "deque"}

// ForKind returns a fresh adapter for the named collection.
func ForKind(kind string) (Collection, error) {
	switch kind {
	case "stack":
		return &Stack{List: stack.New[int]()}, nil
	case "queue":
		return &Queue{List: queue.New[int]()}, nil
	case "deque":
		return &Deque{List: deque.New[int]()}, nil
	}
	return nil, errors.Errorf("unknown collection kind %q", kind)
}

// Stack adapts a stack, which pushes and pops at the front only.
type Stack struct {
	List *stack.Stack[int]
}

func (s *Stack) Name() string            { return "stack" }
func (s *Stack) Ends() (push, pop []End) { return []End{Front}, []End{Front} }
func (s *Stack) Push(_ End, v int)       { s.List.Push(v) }
func (s *Stack) Pop(_ End) (int, bool)   { return s.List.Pop() }
func (s *Stack) Len() int                { return s.List.Len() }
func (s *Stack) Check() error            { return checkWalk(s.List.Len(), s.List.IsEmpty(), count(s.List.All())) }

// Queue adapts a queue, which pushes at the back and pops at the front.
type Queue struct {
	List *queue.Queue[int]
}

func (q *Queue) Name() string            { return "queue" }
func (q *Queue) Ends() (push, pop []End) { return []End{Back}, []End{Front} }
func (q *Queue) Push(_ End, v int)       { q.List.Push(v) }
func (q *Queue) Pop(_ End) (int, bool)   { return q.List.Pop() }
func (q *Queue) Len() int                { return q.List.Len() }
func (q *Queue) Check() error            { return checkWalk(q.List.Len(), q.List.IsEmpty(), count(q.List.All())) }

// Deque adapts a deque, which pushes and pops at both ends.
type Deque struct {
	List *deque.Deque[int]
}

func (d *Deque) Name() string            { return "deque" }
func (d *Deque) Ends() (push, pop []End) { return []End{Front, Back}, []End{Front, Back} }
func (d *Deque) Len() int                { return d.List.Len() }
func (d *Deque) Check() error            { return d.List.Check() }

func (d *Deque) Push(e End, v int) {
	if e == Front {
		d.List.PushFront(v)
		return
	}
	d.List.PushBack(v)
}

func (d *Deque) Pop(e End) (int, bool) {
	if e == Front {
		return d.List.PopFront()
	}
	return d.List.PopBack()
}

func count(seq iter.Seq[int]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func checkWalk(length int, empty bool, walked int) error {
	if walked != length {
		return errors.Errorf("walked %d nodes, len is %d", walked, length)
	}
	if empty != (length == 0) {
		return errors.Errorf("empty is %t with len %d", empty, length)
	}
	return nil
}
