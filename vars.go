package main

import (
	"io"
	"os"

	"go.uber.org/zap"
)

var (
	// Global options, shared by every command.
	opts struct {
		Verbose bool `short:"v" long:"verbose" env:"LISTS_VERBOSE" description:"Log every operation"`
	}

	// Built from opts before a command runs.
	logger = zap.NewNop()

	writer io.Writer = os.Stdout // For reports
)
