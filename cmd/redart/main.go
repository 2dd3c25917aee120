package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/cwbudde/redart/cmd/redart/cmd"
	"github.com/cwbudde/redart/internal/errors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wraps cmd.Execute so a debug-mode Fatal panic (see
// internal/errors.Debug) is caught and reprinted on stderr together
// with the Go call stack at the point of the abort, and the CLI then
// exits with status 1.
func run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if errors.Debug {
				fmt.Fprintf(os.Stderr, "%v\n%s", r, debug.Stack())
				err = fmt.Errorf("aborted")
				return
			}
			panic(r)
		}
	}()
	return cmd.Execute()
}
