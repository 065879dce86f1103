package pipeline

import (
	"context"

	"github.com/sgenkit/sgen/internal/command"
)

// Outcome is delivered once a background generation has finished.
type Outcome struct {
	Command *command.Command
	Result  *command.Result
	Err     error
}

// Start runs Run for cmd on its own goroutine and returns a channel that
// receives exactly one Outcome. The channel is buffered so the worker never
// blocks on an abandoned receiver.
func (p *Pipeline) Start(ctx context.Context, cmd *command.Command) <-chan Outcome {
	done := make(chan Outcome, 1)
	go func() {
		r, err := p.Run(ctx, cmd)
		done <- Outcome{Command: cmd, Result: r, Err: err}
	}()
	return done
}
