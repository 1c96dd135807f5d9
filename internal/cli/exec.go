package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/clienthub/internal/command"
)

var execCmd = &cobra.Command{
	Use:   "exec [command line]...",
	Short: "Run registry commands without the TUI",
	Long: `Run one or more registry command lines non-interactively and save the result.
Each argument is a full command line, in the same grammar the TUI accepts.

Examples:
  clienthub exec "add name/John Doe phone/98765432 email/j@e.com address/Blk 1"
  clienthub exec "find john" "delete 1"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if appInstance == nil {
			return errors.New("application not initialized")
		}

		ctx := context.Background()
		reg, view := appInstance.Registry, appInstance.View

		for _, line := range args {
			parsed, err := command.Parse(line)
			if err != nil {
				return fmt.Errorf("%q: %w", line, err)
			}
			result, err := command.Execute(parsed, reg, view)
			if err != nil {
				return fmt.Errorf("%q: %w", line, err)
			}

			fmt.Println(result.Feedback)
			if result.Expanded != nil {
				fmt.Println(result.Expanded)
			}
			if result.ShowHelp {
				printHelp()
			}
			if result.Exit {
				break
			}
		}

		// Print what the final view shows, with the indices a follow-up
		// edit/delete would use.
		clients := view.Clients()
		for i, c := range clients {
			fmt.Printf("%d. %s\n", i+1, c)
		}

		if err := appInstance.Save(ctx); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		return nil
	},
}

func printHelp() {
	usages := []string{
		command.AddUsage,
		command.EditUsage,
		command.DeleteUsage,
		"list: Shows every client in name order.",
		command.FindUsage,
		command.FilterUsage,
		command.RankUsage,
		command.DescUsage,
		command.ExpandUsage,
		"clear: Removes every client from the registry.",
		"exit: Saves and quits.",
	}
	fmt.Println(strings.Join(usages, "\n\n"))
}
