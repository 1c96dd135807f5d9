package cli

import (
	"github.com/spf13/cobra"

	"github.com/andy/clienthub/internal/app"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "clienthub",
	Short: "A command-driven client registry",
	Long: `ClientHub keeps a registry of clients with their contact details,
product preferences, and purchase history.

By default, running clienthub without arguments launches the interactive TUI.
Use 'clienthub exec' to run registry commands non-interactively.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(resetCmd)
}
