package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andy/clienthub/internal/config"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config and data file locations",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := appInstance.Config
		fmt.Printf("Config:  %s\n", config.DefaultConfigPath())
		fmt.Printf("Backend: %s\n", cfg.Storage.Backend)
		switch cfg.Storage.Backend {
		case config.BackendEncrypted:
			fmt.Printf("Data:    %s\n", cfg.Storage.DBPath)
		default:
			fmt.Printf("Data:    %s\n", cfg.Storage.DataPath)
		}
	},
}
