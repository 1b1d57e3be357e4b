package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(writer, ferr.Message)
			return
		}
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.ShortDescription = "Exercise the linked-list structures"

	if _, err := parser.AddCommand("exercise",
		"Run randomized workloads",
		"Run randomized push/pop workloads against one or all of the list structures, checking them against a reference model after every operation.",
		&exerciseCommand{}); err != nil {
		return err
	}
	if _, err := parser.AddCommand("replay",
		"Replay a deque script",
		"Replay a YAML script of deque operations, checking every expected result.",
		&replayCommand{}); err != nil {
		return err
	}

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}

		var err error
		if logger, err = newLogger(opts.Verbose); err != nil {
			return errors.Wrap(err, "cannot set up logging")
		}
		defer logger.Sync()

		return cmd.Execute(args)
	}

	_, err := parser.ParseArgs(args)
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
