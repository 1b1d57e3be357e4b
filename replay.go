package main

import (
	"fmt"
	"os"

	"github.com/kchristidis/lists/deque"
	"github.com/kchristidis/lists/script"
	"github.com/pkg/errors"
)

type replayCommand struct {
	File string `short:"f" long:"file" required:"true" description:"Script to replay"`
}

func (c *replayCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("unexpected arguments: %v", args)
	}

	f, err := os.Open(c.File)
	if err != nil {
		return errors.Wrap(err, "cannot open script")
	}
	defer f.Close()

	s, err := script.Load(f)
	if err != nil {
		return errors.Wrap(err, c.File)
	}

	d := deque.New[int]()
	defer d.Clear()

	if err := s.Replay(d, logger); err != nil {
		return errors.Wrap(err, c.File)
	}
	fmt.Fprintf(writer, "main • %s: %d steps replayed, %d elements left\n", c.File, len(s.Steps), d.Len())
	return nil
}
