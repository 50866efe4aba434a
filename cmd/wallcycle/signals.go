package main

import (
	"context"
	"os"

	"github.com/darkawower/wallcycle/internal/ui"
)

// signalTarget receives control signals.
type signalTarget interface {
	Advance()
	Reload()
}

// forwardSignals maps advance and reload signals onto target until ctx is done.
func forwardSignals(ctx context.Context, sigCh <-chan os.Signal, target signalTarget, out *ui.Output) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigCh:
			switch sig {
			case AdvanceSignal:
				out.Log("Received advance signal")
				target.Advance()
			case ReloadSignal:
				out.Log("Received reload signal")
				target.Reload()
			}
		}
	}
}
