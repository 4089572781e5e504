// Command doctrans translates structured documents using an AI service and a
// TMX translation memory.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/VerbaLabs/doctrans"
)

func main() {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "doctrans",
		Short:         doctrans.Description,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(translateCmd(), memoryCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", doctrans.Name, doctrans.FullVersion())
			if doctrans.BuildDate != "unknown" && doctrans.BuildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  built: %s\n", doctrans.BuildDate)
			}
		},
	}
}
