package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, injected at build time via ldflags:
//
//	go build -ldflags "-X pip-reinstall/cmd.Version=1.0.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pip-reinstall %s (commit %s, built %s)\n", Version, Commit, Date)
		},
	}
}
