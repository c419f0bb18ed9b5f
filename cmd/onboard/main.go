// onboard builds and submits nurse onboarding batches on the XRP Ledger.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Set with -ldflags at build time.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
