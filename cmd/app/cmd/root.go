package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "listique",
	Short: "listique: browse and edit paginated resources from the terminal",
	Long: `listique: browse and edit paginated resources from the terminal
A client for skip/limit resource apis with caching, retries and live
invalidation between sessions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(createCmd())
	rootCmd.AddCommand(deleteCmd())
}
