// Command urljudge judges URLs, regresses validators against a fixed case
// table, fuzzes them against the judge and serves verdicts over HTTP.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jongio/urljudge/cliout"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and returns the process exit code. Errors
// go to stderr so stdout only carries command output.
func execute(ctx context.Context, args []string, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		cliout.ErrorTo(stderr, err)
		return 1
	}
	return 0
}
