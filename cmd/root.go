package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pip-reinstall/internal/installer"
	"pip-reinstall/internal/logger"
)

// options holds every flag value. A fresh set is bound each time the command
// tree is built, so tests can execute it repeatedly.
type options struct {
	debug      bool
	configPath string
	pkg        string
	tools      []string
	timeout    time.Duration
	strict     bool
	statePath  string
	logFile    string
}

// newRootCmd builds the `pip-reinstall` command tree.
// Running the root command with no arguments performs the full reinstall.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pip-reinstall",
		Short: "Uninstall and reinstall a Python package, falling back from pip3 to pip",
		Long: `pip-reinstall removes a package and installs it again through pip.
Each step is tried with the primary tool first (pip3) and, if that fails,
once more with the secondary tool (pip). The run always finishes and exits 0
unless --strict is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		// PersistentPreRun runs before any subcommand and sets up logging.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, installer.StepAll)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to an optional YAML configuration file")
	flags.StringVarP(&opts.pkg, "package", "p", "", "Package spec to reinstall (default \"ttkbootstrap>=1.10.1\")")
	flags.StringSliceVarP(&opts.tools, "tool", "t", nil, "Package manager invocation names in fallback order (default pip3,pip)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Abort the run after this long (0 disables)")
	flags.BoolVar(&opts.strict, "strict", false, "Exit 1 when a step failed with every tool")
	flags.StringVar(&opts.statePath, "state", "", "Record the outcome in this JSON state file")
	flags.StringVar(&opts.logFile, "log-file", "", "Append a JSON journal of executed commands to this file")

	rootCmd.AddCommand(newUninstallCmd(opts))
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and exits non-zero only on configuration errors or
// when --strict is set and a step could not be completed.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
