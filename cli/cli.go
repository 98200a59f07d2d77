// Package cli runs the single-input solver binaries.
package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Exit codes returned by Run
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Solver computes the two answers for the input file at path.
type Solver func(path string) (first, second int64, err error)

// Run checks that args holds exactly one input path, solves it and prints
// both answers to stdout, one per line. Nothing is written to stdout unless
// both answers were computed.
func Run(program string, args []string, stdout, stderr io.Writer, solve Solver) int {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "Usage: ./%s [input]!\n", program)
		return ExitUsage
	}

	log := NewLogger(stderr)
	path := args[0]

	first, second, err := solve(path)
	if err != nil {
		log.WithFields(logrus.Fields{
			"program": program,
			"path":    path,
		}).WithError(err).Error("failed to solve input")
		return ExitError
	}

	fmt.Fprintf(stdout, "%d\n%d\n", first, second)
	return ExitOK
}

// NewLogger returns a text logger without timestamps writing to out.
func NewLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return log
}
