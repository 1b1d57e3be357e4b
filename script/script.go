// Package script replays a recorded sequence of deque operations, checking
// each result against an expectation and the deque's structure after every
// step. Scripts are YAML:
//
//	ops:
//	  - {op: push_front, value: 1}
//	  - {op: pop_back, expect: 1}
//	  - {op: pop_front, expect: null}  # expect the deque to be empty
//
// A step without expect accepts any result.
package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kchristidis/lists/deque"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Operations a step may name.
const (
	PushFront = "push_front"
	PushBack  = "push_back"
	PopFront  = "pop_front"
	PopBack   = "pop_back"
	PeekFront = "peek_front"
	PeekBack  = "peek_back"
)

// Script is a sequence of steps.
type Script struct {
	Steps []Step `yaml:"ops"`
}

// Step is one operation. Value is required for pushes; Expect is only
// meaningful for pops and peeks.
type Step struct {
	Op     string    `yaml:"op"`
	Value  *int      `yaml:"value,omitempty"`
	Expect yaml.Node `yaml:"expect,omitempty"`

	want expectation
}

type expectation struct {
	set   bool
	empty bool
	value int
}

func (e expectation) String() string {
	if e.empty {
		return "empty"
	}
	return strconv.Itoa(e.value)
}

// Load reads and validates a script. r must hold a single YAML document.
func Load(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "cannot decode script")
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.New("script holds more than one document")
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) validate() error {
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}
	return nil
}

func (st *Step) validate() error {
	switch st.Op {
	case PushFront, PushBack:
		if st.Value == nil {
			return errors.Errorf("%s needs a value", st.Op)
		}
		if st.Expect.Kind != 0 {
			return errors.Errorf("%s takes no expectation", st.Op)
		}
		return nil
	case PopFront, PopBack, PeekFront, PeekBack:
		if st.Value != nil {
			return errors.Errorf("%s takes no value", st.Op)
		}
	default:
		return errors.Errorf("unknown op %q", st.Op)
	}

	st.want = expectation{}
	switch {
	case st.Expect.Kind == 0:
	case st.Expect.ShortTag() == "!!null":
		st.want = expectation{set: true, empty: true}
	default:
		st.want.set = true
		if err := st.Expect.Decode(&st.want.value); err != nil {
			return errors.Wrapf(err, "%s expectation", st.Op)
		}
	}
	return nil
}

// Replay validates the script and runs it against d. It stops at the first
// step whose result does not match its expectation (a *MismatchError) or
// after which d fails its structural check. An invalid script leaves d
// untouched.
func (s *Script) Replay(d *deque.Deque[int], logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := s.validate(); err != nil {
		return err
	}

	for i, st := range s.Steps {
		got, ok := st.apply(d)
		logger.Debug("script • step", zap.Int("step", i), zap.String("op", st.Op), zap.Int("value", got), zap.Bool("ok", ok))

		if st.want.set {
			if st.want.empty == ok || (ok && got != st.want.value) {
				err := &MismatchError{Step: i, Op: st.Op, Want: st.want.String(), Got: result(got, ok)}
				logger.Error("script • mismatch", zap.Error(err))
				return err
			}
		}
		if err := d.Check(); err != nil {
			return errors.Wrapf(err, "step %d (%s)", i, st.Op)
		}
	}

	logger.Info("script • replayed", zap.Int("steps", len(s.Steps)), zap.Int("len", d.Len()))
	return nil
}

func (st *Step) apply(d *deque.Deque[int]) (int, bool) {
	switch st.Op {
	case PushFront:
		d.PushFront(*st.Value)
		return *st.Value, true
	case PushBack:
		d.PushBack(*st.Value)
		return *st.Value, true
	case PopFront:
		return d.PopFront()
	case PopBack:
		return d.PopBack()
	case PeekFront:
		return peek(d.PeekFront())
	case PeekBack:
		return peek(d.PeekBack())
	}
	panic("unreachable: steps are validated before replay")
}

func peek(r *deque.Ref[int], ok bool) (int, bool) {
	if !ok {
		return 0, false
	}
	defer r.Release()
	return r.Value(), true
}

func result(v int, ok bool) string {
	if !ok {
		return "empty"
	}
	return strconv.Itoa(v)
}

// MismatchError reports a step whose result differs from its expectation.
type MismatchError struct {
	Step int
	Op   string
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("step %d (%s): got %s, want %s", e.Step, e.Op, e.Got, e.Want)
}
