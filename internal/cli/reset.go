package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/clienthub/internal/crypto"
)

var resetDeleteKey bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all clients from the registry",
	Long: `Delete every client and save the empty registry.

With --keys, also remove the database encryption key from the system keyring
so the next encrypted-backend start sets up a fresh key.

Examples:
  clienthub reset
  clienthub reset --keys`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL clients. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.Registry.ReplaceAll(nil); err != nil {
			return fmt.Errorf("failed to clear registry: %w", err)
		}
		if err := appInstance.Save(context.Background()); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		fmt.Println("All clients have been deleted.")

		if resetDeleteKey {
			if err := crypto.NewKeyring().DeleteKey(); err != nil {
				return fmt.Errorf("failed to delete encryption key: %w", err)
			}
			fmt.Println("Encryption key removed from the keyring.")
		}
		return nil
	},
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.Flags().BoolVar(&resetDeleteKey, "keys", false,
		"also delete the database encryption key from the keyring")
}
