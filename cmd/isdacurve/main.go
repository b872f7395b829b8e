package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/isdacurve/cmd/isdacurve/internal/runner"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command line. Results and calibration failures are
// written to stdout as JSON; usage problems go to stderr. The exit code is
// 0 on success, 1 when a curve cannot be built and 2 on usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	// cobra falls back to os.Args on a nil slice
	root.SetArgs(append([]string{}, args...))
	root.SetIn(stdin)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "error: %v\n\n", err)
		fmt.Fprintln(stderr, strings.TrimSpace(root.UsageString()))
		return 2
	}
	if werr := runner.WriteJSON(stdout, runner.ErrorOutput{Error: err.Error()}); werr != nil {
		fmt.Fprintln(stderr, err)
	}
	return 1
}

// usageError marks errors caused by the command line itself.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}
