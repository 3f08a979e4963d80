package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "restaurant-api",
	Short: "Restaurant menu API",
	Long:  `HTTP API for managing menus, their submenus and dishes, backed by PostgreSQL with a read-through response cache.`,
	// Errors are already logged by the subcommands.
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
