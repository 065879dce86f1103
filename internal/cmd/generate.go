package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/cmdutil"
	"github.com/sgenkit/sgen/internal/command"
	"github.com/sgenkit/sgen/internal/generator"
	"github.com/sgenkit/sgen/internal/highlight"
	"github.com/sgenkit/sgen/internal/output"
	"github.com/sgenkit/sgen/internal/pipeline"
	"github.com/sgenkit/sgen/internal/sink"
)

// newClipboard returns the clipboard used by --copy. Tests replace it.
var newClipboard = func() pipeline.Clipboard {
	return sink.SystemClipboard{}
}

// generateOptions holds the flags for the generate command.
type generateOptions struct {
	gen    cmdutil.GenerateFlags
	save   string
	copy   bool
	plain  bool
	strict bool
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &generateOptions{}

	c := &cobra.Command{
		Use:   "generate <kind> <input>",
		Short: "Run the generator and print the Swift source",
		Long: `Run the generator on an input and print the generated Swift source.

The input must match the kind: a directory for xcassets and fonts, a file
with an accepted extension otherwise.

--save asks the generator to write the file itself, in a second run with
--output appended. --copy puts the generated code on the clipboard.

Without --strict a failed generation prints nothing and exits 0.

Examples:
  sgen generate strings Localizable.strings
  sgen generate xcassets Images.xcassets -t swift4 -p publicAccess --save Sources/
  sgen generate colors Colors.txt --copy --plain`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c, g, opts, args)
		},
	}

	opts.gen.AddTo(c)
	c.Flags().StringVarP(&opts.save, "save", "s", "", "Have the generator write the output to this file or directory")
	c.Flags().BoolVar(&opts.copy, "copy", false, "Copy the generated code to the clipboard")
	c.Flags().BoolVar(&opts.plain, "plain", false, "Print without syntax highlighting")
	c.Flags().BoolVar(&opts.strict, "strict", false, "Fail when the generator cannot run or its output is unusable")

	return c
}

func runGenerate(c *cobra.Command, g *cmdtypes.GlobalConfig, opts *generateOptions, args []string) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmdObj, err := cmdutil.BuildCommand(cmdutil.BuildCommandOpts{
		Args:       args,
		Flags:      &opts.gen,
		Seed:       g.Resolved.Seed.Bool(),
		CheckInput: true,
	})
	if err != nil {
		return err
	}
	logUndeclared(cmdObj)

	genPath := g.GeneratorPath()
	p := pipeline.New(
		generator.NewBinary(genPath),
		pipeline.WithRenderer(highlight.ForTerminal(g.Resolved.Theme.Value, g.Resolved.HighlightEnabled.Bool())),
	)
	out := sink.New(p, newClipboard())

	outcome, err := output.WaitWithSpinner(ctx, p.Start(ctx, cmdObj),
		output.WithTitle(fmt.Sprintf("Generating %s", cmdObj.Kind())),
		output.WithQuiet(g.Verbose),
	)
	if err != nil {
		return err
	}

	result := outcome.Result
	if outcome.Err != nil {
		if opts.strict {
			return cmdutil.GeneratorError(genPath, outcome.Err)
		}
		output.Warn("generation produced no output", "error", outcome.Err)
		result = command.EmptyResult()
	}

	if !result.IsEmpty() {
		if _, err := fmt.Fprint(c.OutOrStdout(), result.Styled); err != nil {
			return err
		}
	} else if opts.strict {
		return cmdutil.GeneratorError(genPath, errors.New("generator produced no output"))
	}

	if opts.save != "" {
		if err := saveOutput(ctx, out, cmdObj, opts.save); err != nil {
			if opts.strict {
				return cmdutil.GeneratorError(genPath, err)
			}
			output.Warn("save failed", "error", err)
		}
	}

	if opts.copy {
		if p.GenerateAndCopyToClipboard(ctx, cmdObj, out) {
			output.Info(output.FormatCheckmark("copied to clipboard"))
		} else if opts.strict {
			return cmdutil.GeneratorError(genPath, errors.New("nothing copied to clipboard"))
		}
	}
	return nil
}

// saveOutput runs the save on a background goroutine behind a spinner.
func saveOutput(ctx context.Context, s *sink.Sink, cmdObj *command.Command, path string) error {
	type saved struct {
		target string
		err    error
	}
	done := make(chan saved, 1)
	go func() {
		target, err := s.WriteToFile(ctx, cmdObj, path)
		done <- saved{target: target, err: err}
	}()

	res, err := output.WaitWithSpinner(ctx, done, output.WithTitle("Saving"))
	if err != nil {
		return err
	}
	if res.err != nil {
		return res.err
	}
	output.Info(output.FormatCheckmark("saved " + res.target))
	return nil
}
