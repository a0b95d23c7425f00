package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "trading-risk-dashboard",
	Short: "Trading risk dashboard and calculator",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(calcCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
