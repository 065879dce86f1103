package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
	quiet bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithQuiet disables the spinner and just waits.
func WithQuiet(quiet bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.quiet = quiet
	}
}

// WaitWithSpinner shows a spinner on stderr until done delivers, then
// returns the delivered value. Without a terminal it just blocks on done.
// The spinner never abandons the wait: the work behind done always runs to
// completion.
func WaitWithSpinner[T any](ctx context.Context, done <-chan T, opts ...SpinnerOption) (T, error) {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.quiet || !IsTTY() {
		return <-done, nil
	}

	var value T
	finished := make(chan struct{})
	go func() {
		value = <-done
		close(finished)
	}()

	spinErr := spinner.New().
		Context(ctx).
		Title(cfg.title).
		Action(func() { <-finished }).
		Run()

	// The spinner may stop early on ctx or a terminal error; the work
	// itself is never abandoned.
	<-finished
	if spinErr != nil && ctx.Err() == nil {
		return value, fmt.Errorf("spinner error: %w", spinErr)
	}
	return value, nil
}
