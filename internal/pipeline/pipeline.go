// Package pipeline runs Commands through the external generator: it builds
// the argument vector, invokes the generator, wraps the output into a
// Result and owns the cache-or-recompute policy.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/sgenkit/sgen/internal/command"
	"github.com/sgenkit/sgen/internal/generator"
	"github.com/sgenkit/sgen/internal/highlight"
	"github.com/sgenkit/sgen/internal/output"
)

// Re-exported failure sentinels for callers of Run.
var (
	// ErrLaunch means the generator process could not be started.
	ErrLaunch = generator.ErrLaunch

	// ErrDecode means the generator wrote something other than UTF-8 text.
	ErrDecode = generator.ErrDecode
)

// Clipboard replaces the shared clipboard content.
type Clipboard interface {
	WriteAll(text string) error
}

// Pipeline runs commands. It holds no per-command state: the only cache is
// each Command's own result slot.
type Pipeline struct {
	runner   generator.Runner
	renderer highlight.Renderer

	// inflight keeps one generation per Command running at a time.
	inflight singleflight.Group
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRenderer sets the renderer producing Result.Styled. The default
// leaves Styled equal to Code.
func WithRenderer(r highlight.Renderer) Option {
	return func(p *Pipeline) {
		p.renderer = r
	}
}

// New creates a Pipeline that invokes the generator through runner.
func New(runner generator.Runner, opts ...Option) *Pipeline {
	p := &Pipeline{
		runner:   runner,
		renderer: highlight.Plain{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run returns the cached Result, or invokes the generator once and caches
// what it produced. Failures are returned as errors wrapping ErrLaunch,
// ErrDecode or command.ErrUnconfigured and leave the cache untouched.
func (p *Pipeline) Run(ctx context.Context, cmd *command.Command) (*command.Result, error) {
	if r, ok := cmd.Cached(); ok {
		output.CommandLogger(cmd.ID().String()).Debug("cache hit", "state", command.Cached)
		return r, nil
	}

	input := cmd.Input()
	key := cmd.ID().String() + "\x00" + input
	v, err, shared := p.inflight.Do(key, func() (interface{}, error) {
		return p.generate(ctx, cmd, input)
	})
	if shared {
		output.CommandLogger(cmd.ID().String()).Debug("joined in-flight generation")
	}
	if err != nil {
		return nil, err
	}
	return v.(*command.Result), nil
}

// generate performs the Ready -> Cached transition.
func (p *Pipeline) generate(ctx context.Context, cmd *command.Command, input string) (*command.Result, error) {
	// A concurrent caller may have finished while this one waited.
	if r, ok := cmd.Cached(); ok {
		return r, nil
	}

	text, err := p.invoke(ctx, cmd, input, "")
	if err != nil {
		return nil, err
	}

	r := &command.Result{Code: text, Styled: p.renderer.Render(text)}
	if !cmd.Store(input, r) {
		output.CommandLogger(cmd.ID().String()).Debug("input changed during generation; result not cached")
	}
	return r, nil
}

// Generate is Run with failures degraded to an empty Result. It never
// returns nil.
func (p *Pipeline) Generate(ctx context.Context, cmd *command.Command) *command.Result {
	r, err := p.Run(ctx, cmd)
	if err != nil {
		output.CommandLogger(cmd.ID().String()).Warn("generation produced no output", "error", err)
		return command.EmptyResult()
	}
	return r
}

// GenerateAndSave always invokes the generator again with --output path
// appended, whatever the cache holds. The generator writes the file itself.
// The cached Result is neither read nor changed.
func (p *Pipeline) GenerateAndSave(ctx context.Context, cmd *command.Command, path string) error {
	if path == "" {
		return errors.New("output path is empty")
	}
	_, err := p.invoke(ctx, cmd, cmd.Input(), path)
	return err
}

// GenerateAndCopyToClipboard copies the cached code to clip, generating it
// first if nothing is cached. It reports whether the clipboard was written;
// a failed generation or clipboard write is a no-op.
func (p *Pipeline) GenerateAndCopyToClipboard(ctx context.Context, cmd *command.Command, clip Clipboard) bool {
	log := output.CommandLogger(cmd.ID().String())
	if clip == nil {
		log.Warn("no clipboard available")
		return false
	}

	r, err := p.Run(ctx, cmd)
	if err != nil {
		log.Warn("nothing copied", "error", err)
		return false
	}

	if err := clip.WriteAll(r.Code); err != nil {
		log.Warn("clipboard write failed", "error", err)
		return false
	}
	log.Debug("copied to clipboard", "bytes", len(r.Code))
	return true
}

// invoke builds the argument vector for input, appends --output when
// outputPath is set, runs the generator and decodes its output.
func (p *Pipeline) invoke(ctx context.Context, cmd *command.Command, input, outputPath string) (string, error) {
	if input == "" {
		return "", command.ErrUnconfigured
	}

	args := command.BuildArguments(cmd.Kind(), cmd.Template(), input, cmd.Values())
	if outputPath != "" {
		args = command.WithOutput(args, outputPath)
	}

	output.CommandLogger(cmd.ID().String()).Debug("invoking generator",
		"kind", cmd.Kind().Token(),
		"template", cmd.Template().Name,
		"args", len(args),
	)

	data, err := p.runner.Run(ctx, args)
	if err != nil {
		return "", err
	}

	text, err := generator.Decode(data)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", cmd.Kind().Token(), input, err)
	}
	return text, nil
}
