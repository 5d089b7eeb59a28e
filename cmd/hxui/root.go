package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hxui",
	Short: "Server-rendered UI components for templ and HTMX",
	Long: `hxui renders the stock component types from the command line,
checks their classes against your stylesheets and serves previews over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().String("config", ".hxui.yaml", "Config file path")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace|debug|info|warn|error")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format: console|json")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
