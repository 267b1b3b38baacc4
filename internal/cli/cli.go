package cli

import (
	"io"

	"github.com/specialistvlad/sysmlgraph/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// NewRootCommand builds the sysmlgraph command tree. Command output goes to
// outW and logs to errW. The App is built from the persistent flags before
// any subcommand runs.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	var (
		cfg     app.Config
		current *app.App
	)
	getApp := func() *app.App { return current }

	root := &cobra.Command{
		Use:   "sysmlgraph",
		Short: "sysmlgraph - an in-memory SysML v2 / KerML model graph",
		Long: `sysmlgraph holds SysML v2 and KerML models as typed element graphs,
validates their structure, and answers queries over them.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), &cfg)
			if err != nil {
				return usageError(err)
			}
			current = a
			a.Logger().Debug("Command starting.", "command", cmd.CommandPath())
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to an HCL or YAML configuration file.")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(
		newKindsCommand(),
		newKindCommand(),
		newPropsCommand(getApp),
		newSelfCheckCommand(getApp),
		newDemoCommand(getApp),
		newServeCommand(getApp),
	)
	return root
}

// Execute runs the command tree with args.
func Execute(args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	return root.Execute()
}
