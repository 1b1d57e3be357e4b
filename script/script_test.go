package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kchristidis/lists/deque"
	"github.com/kchristidis/lists/script"
	"github.com/onsi/gomega/gbytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	. "github.com/onsi/gomega"
)

func TestLoad(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		f, err := os.Open(filepath.Join("testdata", "drain.yaml"))
		require.NoError(t, err)
		defer f.Close()

		s, err := script.Load(f)
		require.NoError(t, err)
		require.Len(t, s.Steps, 11)
		require.Equal(t, script.PushBack, s.Steps[0].Op)
		require.Equal(t, 4, *s.Steps[0].Value)
	})

	t.Run("empty", func(t *testing.T) {
		s, err := script.Load(strings.NewReader(""))
		require.NoError(t, err)
		require.Empty(t, s.Steps)
	})

	for name, doc := range map[string]string{
		"unknown op":          "ops: [{op: rotate}]",
		"push without value":  "ops: [{op: push_front}]",
		"push with expect":    "ops: [{op: push_front, value: 1, expect: 1}]",
		"expectation not int": "ops: [{op: pop_front, expect: foo}]",
		"unknown field":       "ops: [{op: pop_front, color: red}]",
		"pop with value":      "ops: [{op: pop_front, value: 3}]",
		"peek with value":     "ops: [{op: peek_back, value: 3}]",
		"not yaml":            "ops: [",
		"second document":     "ops: [{op: push_front, value: 5}]\n---\nops: [{op: pop_front, expect: 5}]\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := script.Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestReplay(t *testing.T) {
	g := NewGomegaWithT(t)

	newLogger := func() (*zap.Logger, *gbytes.Buffer) {
		bfr := gbytes.NewBuffer()
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		return zap.New(zapcore.NewCore(enc, zapcore.AddSync(bfr), zapcore.DebugLevel)), bfr
	}

	t.Run("drain", func(t *testing.T) {
		f, err := os.Open(filepath.Join("testdata", "drain.yaml"))
		require.NoError(t, err)
		defer f.Close()
		s, err := script.Load(f)
		require.NoError(t, err)

		logger, bfr := newLogger()
		d := deque.New[int]()
		require.NoError(t, s.Replay(d, logger))
		require.True(t, d.IsEmpty())
		g.Eventually(bfr).Should(gbytes.Say("script • replayed"))
	})

	t.Run("interleaved", func(t *testing.T) {
		s, err := script.Load(strings.NewReader(`
ops:
  - {op: push_front, value: 1}
  - {op: push_front, value: 2}
  - {op: push_front, value: 3}
  - {op: pop_front, expect: 3}
  - {op: pop_front, expect: 2}
  - {op: push_front, value: 4}
  - {op: push_front, value: 5}
  - {op: pop_front, expect: 5}
  - {op: pop_front, expect: 4}
  - {op: pop_front, expect: 1}
  - {op: pop_front, expect: null}
`))
		require.NoError(t, err)
		require.NoError(t, s.Replay(deque.New[int](), nil))
	})

	t.Run("mismatch", func(t *testing.T) {
		s, err := script.Load(strings.NewReader(`
ops:
  - {op: push_back, value: 1}
  - {op: pop_back}
  - {op: pop_back, expect: 1}
`))
		require.NoError(t, err)

		logger, bfr := newLogger()
		err = s.Replay(deque.New[int](), logger)

		var me *script.MismatchError
		require.True(t, errors.As(err, &me))
		require.Equal(t, 2, me.Step)
		require.Equal(t, "empty", me.Got)
		require.Equal(t, "1", me.Want)
		g.Eventually(bfr).Should(gbytes.Say("script • mismatch"))
	})

	t.Run("built in code", func(t *testing.T) {
		var want yaml.Node
		require.NoError(t, want.Encode(5))

		s := &script.Script{Steps: []script.Step{{Op: script.PopFront, Expect: want}}}
		err := s.Replay(deque.New[int](), nil)

		var me *script.MismatchError
		require.True(t, errors.As(err, &me))
		require.Equal(t, 0, me.Step)
		require.Equal(t, "empty", me.Got)
		require.Equal(t, "5", me.Want)
	})

	t.Run("built in code without value", func(t *testing.T) {
		d := deque.New[int]()
		d.PushBack(1)

		s := &script.Script{Steps: []script.Step{
			{Op: script.PopBack},
			{Op: script.PushFront},
		}}
		err := s.Replay(d, nil)
		require.Error(t, err)
		g.Expect(err.Error()).To(ContainSubstring("step 1: push_front needs a value"))
		require.Equal(t, 1, d.Len())
	})

	t.Run("expected empty", func(t *testing.T) {
		s, err := script.Load(strings.NewReader("ops: [{op: push_back, value: 1}, {op: peek_back, expect: null}]"))
		require.NoError(t, err)

		err = s.Replay(deque.New[int](), nil)
		var me *script.MismatchError
		require.True(t, errors.As(err, &me))
		require.Equal(t, "1", me.Got)
		require.Equal(t, "empty", me.Want)
	})
}
