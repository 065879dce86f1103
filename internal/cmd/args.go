package cmd

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/cmdutil"
	"github.com/sgenkit/sgen/internal/command"
	"github.com/sgenkit/sgen/internal/output"
	"github.com/sgenkit/sgen/internal/sink"
)

// argsOptions holds the flags for the args command.
type argsOptions struct {
	gen    cmdutil.GenerateFlags
	output string
	shell  bool
}

// NewArgsCmd creates the args command.
func NewArgsCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &argsOptions{}

	c := &cobra.Command{
		Use:   "args <kind> <input>",
		Short: "Print the generator argument vector",
		Long: `Print the exact arguments sgen would pass to the generator, without running it.

Only parameters declared by the chosen template are included, in the
template's order. The input location is not checked.

Examples:
  sgen args colors Colors.txt --param enumName=Palette
  sgen args xcassets Images.xcassets --template swift3 --shell`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runArgs(c, g, opts, args)
		},
	}

	opts.gen.AddTo(c)
	c.Flags().StringVarP(&opts.output, "output", "o", "", "Append --output with this path (a directory gets the default file name)")
	c.Flags().BoolVar(&opts.shell, "shell", false, "Print a single shell-quoted command line")

	return c
}

func runArgs(c *cobra.Command, g *cmdtypes.GlobalConfig, opts *argsOptions, args []string) error {
	cmdObj, err := cmdutil.BuildCommand(cmdutil.BuildCommandOpts{
		Args:  args,
		Flags: &opts.gen,
		Seed:  g.Resolved.Seed.Bool(),
	})
	if err != nil {
		return err
	}
	logUndeclared(cmdObj)

	argv, err := cmdObj.Arguments()
	if err != nil {
		return err
	}
	if opts.output != "" {
		target, err := sink.ResolvePath(opts.output, cmdObj.DefaultFileName())
		if err != nil {
			return err
		}
		argv = command.WithOutput(argv, target)
	}

	w := c.OutOrStdout()
	if opts.shell {
		_, err = fmt.Fprintln(w, shellLine(g.GeneratorPath(), argv))
		return err
	}
	_, err = fmt.Fprintln(w, strings.Join(argv, "\n"))
	return err
}

// shellLine quotes the invocation for a POSIX shell. On a terminal the
// executable and flag names are styled; the quoting is unchanged.
func shellLine(executable string, argv []string) string {
	if !output.IsTTY() {
		return shellquote.Join(append([]string{executable}, argv...)...)
	}
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = shellquote.Join(a)
	}
	return output.FormatArguments(shellquote.Join(executable), quoted)
}

// logUndeclared notes values the chosen template ignores.
func logUndeclared(cmdObj *command.Command) {
	log := output.CommandLogger(cmdObj.ID().String())
	for _, k := range cmdutil.Undeclared(cmdObj.Template(), cmdObj.Values()) {
		log.Debug("parameter not declared by template; ignored",
			"param", k.String(),
			"template", cmdObj.Template().Name,
		)
	}
}
