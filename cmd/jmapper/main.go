// Command jmapper computes curvature filtrations and persistence diagrams of
// Mapper nerve graphs.
//
//	jmapper run   --cover cover.yaml --min-intersection 2 --alpha 0.5
//	jmapper sweep --cover cover.yaml --min-intersection 1,2,3 --workers 4 --resilient
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

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
