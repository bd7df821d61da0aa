package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aleph-Alpha/schemaregistry/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(cli.DefaultFactory)
	if err := cmd.ExecuteContext(ctx); err != nil {
		// The result has already been printed.
		if !errors.Is(err, cli.ErrIncompatible) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
