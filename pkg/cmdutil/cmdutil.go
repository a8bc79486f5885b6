package cmdutil

import (
	"os"
	"os/signal"
	"syscall"
)

// InterruptChan returns a channel that is closed when the process receives
// SIGINT or SIGTERM. Multiple goroutines may receive from it.
func InterruptChan() <-chan struct{} {
	out := make(chan struct{})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		close(out)
	}()

	return out
}
