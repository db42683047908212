// Package cmd provides Cobra CLI commands for crumbtrail.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/crumbtrail/internal/cli"
	"github.com/bnema/crumbtrail/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "crumbtrail",
		Short: "Editor navigation state for split-pane source viewers",
		Long: `Crumbtrail keeps the navigation state of a two-pane source viewer:
a recent-file history, deep links of the form <base>?<path>#<start>,<end>,
browser session history records and a main/secondary pane layout.

The commands below inspect the persisted history, encode and decode deep
links, and replay navigation scripts against a headless editor host.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "crumbtrail %s\n", buildInfo.Version)
		fmt.Fprintf(out, "commit: %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "built: %s\n", buildInfo.BuildDate)
		fmt.Fprintf(out, "go: %s\n", buildInfo.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
