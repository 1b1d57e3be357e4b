package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/kchristidis/lists/exerciser"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type exerciseCommand struct {
	Kind   string `long:"kind" choice:"stack" choice:"queue" choice:"deque" choice:"all" default:"all" description:"Structure to exercise"`
	Ops    int    `long:"ops" default:"10000" description:"Random operations per structure"`
	Seed   uint64 `long:"seed" default:"1" description:"Seed for the operation source"`
	MaxLen int    `long:"max-len" default:"64" description:"Longest a structure may grow"`
}

func (c *exerciseCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("unexpected arguments: %v", args)
	}

	kinds := exerciser.Kinds
	if c.Kind != "all" {
		kinds = []string{c.Kind}
	}

	reg := prometheus.NewRegistry()
	for _, kind := range kinds {
		coll, err := exerciser.ForKind(kind)
		if err != nil {
			return err
		}

		src := rand.New(rand.NewPCG(c.Seed, c.Seed))
		r, err := exerciser.New(coll, src, c.MaxLen, logger, reg)
		if err != nil {
			return err
		}

		rep, err := r.Run(c.Ops)
		if err != nil {
			return errors.Wrapf(err, "seed %d", c.Seed)
		}
		fmt.Fprintf(writer, "main • %s: %d ops (%d pushes, %d pops, %d on empty), %d drained, max len %d\n",
			rep.Kind, rep.Ops, rep.Pushes, rep.Pops, rep.EmptyPops, rep.Drained, rep.MaxLen)
	}

	return summary(reg)
}
