// Package main provides the attendancegen CLI, a test-data tool that seeds
// randomized attendance fixtures against the persisted roster and wipes them
// again. It is not part of the production data path.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
