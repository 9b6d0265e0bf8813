// Package main is the entry point for the prelang buildpack.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Prelang/prelang-buildpack/cmd/prelang-buildpack/commands"
	"github.com/Prelang/prelang-buildpack/internal/app"
	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	_ "github.com/Prelang/prelang-buildpack/internal/wiring"
	"github.com/grindlemire/graft"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	err = cli.Execute(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrNoFrameworkDetected):
		// detect signals "not applicable" through the exit code alone
		return 1
	case errors.Is(err, domain.ErrCompileFailed):
		// the task output was already printed to the console
		components.Logger.Error(err)
		return 1
	default:
		components.Logger.Error(err)
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
}
