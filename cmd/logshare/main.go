// Package main is the entry point for logshare.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/logshare/cmd/logshare/commands"
	"go.trai.ch/logshare/internal/app"
	"go.trai.ch/logshare/internal/core/domain"
	_ "go.trai.ch/logshare/internal/wiring"
)

// exitCancelled is the exit code of an export the user cancelled.
const exitCancelled = 130

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskCancelled):
			components.Logger.Warn("export cancelled")
			return exitCancelled
		case errors.Is(err, domain.ErrExportFailed):
			// The progress view and the task already reported the failure.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
