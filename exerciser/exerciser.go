// Package exerciser drives randomized push/pop workloads against the list
// structures and checks them against a reference model after every
// operation.
package exerciser

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultMaxLen caps the collection's length during a run unless the caller
// picks another cap.
const DefaultMaxLen = 64

// End names one end of a collection.
type End int

// The two ends of a collection.
const (
	Front End = iota
	Back
)

func (e End) String() string {
	if e == Front {
		return "front"
	}
	return "back"
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Source

// Source supplies the choices that drive a run. *math/rand/v2.Rand satisfies
// it.
type Source interface {
	IntN(n int) int
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Collection

// Collection is the surface the runner exercises. Ends reports which ends
// the collection can push to and pop from; Push and Pop are only ever called
// with those.
type Collection interface {
	Name() string
	Ends() (push, pop []End)
	Push(e End, v int)
	Pop(e End) (int, bool)
	Len() int
	Check() error
}

// Report summarizes a run.
type Report struct {
	Kind      string
	Ops       int
	Pushes    int
	Pops      int
	EmptyPops int
	Drained   int
	MaxLen    int // longest the collection got
}

// Runner runs workloads against one collection. Use New to create one.
type Runner struct {
	coll Collection
	src  Source
	// maxLen caps the collection's length; once reached, the runner only
	// pops until it is below the cap again.
	maxLen  int
	logger  *zap.Logger
	metrics *Metrics

	model []int
	next  int
}

// New returns a runner for c. The runner's counters are registered with reg;
// a nil reg leaves them unregistered. A nil logger disables logging.
func New(c Collection, src Source, maxLen int, logger *zap.Logger, reg prometheus.Registerer) (*Runner, error) {
	if maxLen < 1 {
		return nil, errors.Errorf("max length should be a positive integer, got %d", maxLen)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m, err := NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	return &Runner{
		coll:    c,
		src:     src,
		maxLen:  maxLen,
		logger:  logger,
		metrics: m,
	}, nil
}

// Run performs ops random operations, then drains the collection. It returns
// an *InvariantError describing the first divergence from the model. Each run
// starts from an empty model, so the collection should be empty too.
func (r *Runner) Run(ops int) (Report, error) {
	r.model, r.next = r.model[:0], 0

	c := r.coll
	rep := Report{Kind: c.Name()}
	pushEnds, popEnds := c.Ends()
	if len(pushEnds) == 0 || len(popEnds) == 0 {
		return rep, errors.Errorf("%s: collection reports no usable ends", rep.Kind)
	}

	log := r.logger.With(zap.String("kind", rep.Kind))
	log.Info("exerciser • run started", zap.Int("ops", ops), zap.Int("max_len", r.maxLen))

	for i := 0; i < ops; i++ {
		push := len(r.model) < r.maxLen && r.src.IntN(2) == 0
		if push {
			e := r.pick(pushEnds)
			r.push(c, e)
			rep.Pushes++
			log.Debug("exerciser • push", zap.Int("op", i), zap.Stringer("end", e), zap.Int("value", r.next-1))
		} else {
			e := r.pick(popEnds)
			empty, err := r.pop(c, e, i)
			if err != nil {
				log.Error("exerciser • pop diverged", zap.Int("op", i), zap.Error(err))
				return rep, err
			}
			rep.Pops++
			if empty {
				rep.EmptyPops++
			}
			log.Debug("exerciser • pop", zap.Int("op", i), zap.Stringer("end", e), zap.Bool("empty", empty))
		}
		rep.Ops++

		if err := r.check(c, i); err != nil {
			log.Error("exerciser • check failed", zap.Int("op", i), zap.Error(err))
			return rep, err
		}
		if l := len(r.model); l > rep.MaxLen {
			rep.MaxLen = l
		}
	}

	for len(r.model) > 0 {
		if _, err := r.pop(c, popEnds[0], rep.Ops); err != nil {
			log.Error("exerciser • drain diverged", zap.Error(err))
			return rep, err
		}
		rep.Drained++
		if err := r.check(c, rep.Ops); err != nil {
			return rep, err
		}
	}
	if v, ok := c.Pop(popEnds[0]); ok {
		return rep, &InvariantError{Kind: rep.Kind, Op: rep.Ops, Err: errors.Errorf("drained collection popped %d", v)}
	}

	log.Info("exerciser • run finished",
		zap.Int("pushes", rep.Pushes), zap.Int("pops", rep.Pops),
		zap.Int("empty_pops", rep.EmptyPops), zap.Int("drained", rep.Drained))
	return rep, nil
}

func (r *Runner) pick(ends []End) End {
	if len(ends) == 1 {
		return ends[0]
	}
	return ends[r.src.IntN(len(ends))]
}

func (r *Runner) push(c Collection, e End) {
	v := r.next
	r.next++

	c.Push(e, v)
	if e == Front {
		r.model = append([]int{v}, r.model...)
	} else {
		r.model = append(r.model, v)
	}
	r.metrics.observe(c.Name(), "push_"+e.String())
}

func (r *Runner) pop(c Collection, e End, op int) (empty bool, err error) {
	got, ok := c.Pop(e)
	r.metrics.observe(c.Name(), "pop_"+e.String())

	if len(r.model) == 0 {
		if ok {
			return true, &InvariantError{Kind: c.Name(), Op: op, Err: errors.Errorf("pop %s of empty collection returned %d", e, got)}
		}
		return true, nil
	}

	var want int
	if e == Front {
		want, r.model = r.model[0], r.model[1:]
	} else {
		want, r.model = r.model[len(r.model)-1], r.model[:len(r.model)-1]
	}

	switch {
	case !ok:
		return false, &InvariantError{Kind: c.Name(), Op: op, Err: errors.Errorf("pop %s reported empty, want %d", e, want)}
	case got != want:
		return false, &InvariantError{Kind: c.Name(), Op: op, Err: errors.Errorf("pop %s returned %d, want %d", e, got, want)}
	}
	return false, nil
}

func (r *Runner) check(c Collection, op int) error {
	r.metrics.checked(c.Name())
	if err := c.Check(); err != nil {
		return &InvariantError{Kind: c.Name(), Op: op, Err: err}
	}
	if l := c.Len(); l != len(r.model) {
		return &InvariantError{Kind: c.Name(), Op: op, Err: errors.Errorf("length is %d, want %d", l, len(r.model))}
	}
	return nil
}

// InvariantError reports the first operation after which a collection
// disagreed with the reference model or failed its own structural check.
type InvariantError struct {
	Kind string
	Op   int
	Err  error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: op %d: %s", e.Kind, e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
