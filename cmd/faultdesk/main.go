package main

import (
	"os"

	"github.com/spf13/cobra"

	"faultdesk/internal/interfaces/cli/migrate"
	"faultdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "faultdesk",
		Short: "FaultDesk - maintenance ticket tracking",
		Long:  `FaultDesk is a maintenance ticket tracking service with a built-in server, migration tools, and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
