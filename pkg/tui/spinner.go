package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
)

// Overridden in tests, which never run on a terminal.
var (
	showSpinner = func() bool { return isTerminal(os.Stdout) }
	runSpinner  = func(s *spinner.Spinner) error { return s.Run() }
)

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

type outcome[T any] struct {
	value T
	err   error
}

// WithSpinner runs fn behind a spinner when stdout is a terminal, or directly otherwise.
// If the spinner is interrupted (ctrl+c) fn's context is cancelled and the returned
// error wraps context.Canceled; fn's late result is discarded.
func WithSpinner[T any](ctx context.Context, title string, fn func(context.Context) (T, error)) (T, error) {
	if !showSpinner() {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan outcome[T], 1)
	runErr := runSpinner(spinner.New().
		Context(ctx).
		Title(title).
		ActionWithErr(func(ctx context.Context) error {
			v, err := fn(ctx)
			done <- outcome[T]{value: v, err: err}
			return err
		}))

	select {
	case o := <-done:
		return o.value, o.err
	default:
	}

	var zero T
	switch {
	case runErr == nil:
		return zero, context.Canceled
	case errors.Is(runErr, context.Canceled), errors.Is(runErr, context.DeadlineExceeded):
		return zero, runErr
	default:
		return zero, fmt.Errorf("%w: %w", context.Canceled, runErr)
	}
}
