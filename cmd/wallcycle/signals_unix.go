//go:build unix

package main

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

var (
	// AdvanceSignal wakes the cycle and draws new wallpapers.
	AdvanceSignal os.Signal = unix.SIGUSR1

	// ReloadSignal re-detects screens and re-applies the current wallpapers.
	ReloadSignal os.Signal = unix.SIGUSR2
)

func notifyControlSignals(ch chan<- os.Signal) {
	signal.Notify(ch, AdvanceSignal, ReloadSignal)
}
