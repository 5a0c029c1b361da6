package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// ErrInterrupted is the cancellation cause of a command stopped by a signal.
var ErrInterrupted = errors.New("interrupted")

// InterruptError names the signal that stopped a command.
type InterruptError struct {
	Signal os.Signal
}

func (e *InterruptError) Error() string {
	return "interrupted by " + e.Signal.String()
}

func (e *InterruptError) Unwrap() error { return ErrInterrupted }

// SignalContext is cancelled on SIGINT or SIGTERM and records the signal as
// its cancellation cause.
type SignalContext struct {
	context.Context
	cancel context.CancelCauseFunc
}

// NewSignalContext watches for SIGINT and SIGTERM until the returned context
// is done. Callers must call Cancel to release the watcher.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancelCause(parent)
	sc := &SignalContext{Context: ctx, cancel: cancel}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			cancel(&InterruptError{Signal: sig})
		case <-ctx.Done():
		}
	}()
	return sc
}

// Cancel stops the context without recording a signal.
func (sc *SignalContext) Cancel() { sc.cancel(nil) }

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	var ie *InterruptError
	if errors.As(context.Cause(sc.Context), &ie) {
		return ie.Signal
	}
	return nil
}
