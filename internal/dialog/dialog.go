// Package dialog shows native message boxes.
package dialog

import (
	"errors"
	"sync/atomic"

	"github.com/ncruces/zenity"
)

// Single runs at most one dialog at a time.
type Single struct {
	busy atomic.Bool
}

// Go runs fn on its own goroutine unless an earlier fn is still running.
// It reports whether fn was started.
func (s *Single) Go(fn func()) bool {
	if !s.busy.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		defer s.busy.Store(false)
		fn()
	}()
	return true
}

// Busy reports whether a dialog is open.
func (s *Single) Busy() bool { return s.busy.Load() }

// Info shows text in an information box and waits for it to close.
func Info(title, text string) error {
	return ignoreCancel(zenity.Info(text, zenity.Title(title), zenity.InfoIcon))
}

// Error shows text in an error box and waits for it to close.
func Error(title, text string) error {
	return ignoreCancel(zenity.Error(text, zenity.Title(title), zenity.ErrorIcon))
}

func ignoreCancel(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}
