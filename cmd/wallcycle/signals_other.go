//go:build !unix

package main

import "os"

// No user signals outside unix; the cycle only runs on its timer.
var (
	AdvanceSignal os.Signal
	ReloadSignal  os.Signal
)

func notifyControlSignals(ch chan<- os.Signal) {}
