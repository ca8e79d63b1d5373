package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riverphoenix/ai-pm-ide/internal/cli"
	"github.com/riverphoenix/ai-pm-ide/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "pmide",
		Short:   "pmide - local store for the PM workspace",
		Version: version.String(),
		Long: `pmide is the local, single-user data store behind the product
management workspace: framework catalogs, saved prompts, context
documents, generated outputs, and the conversation ledger, all in
one SQLite file.`,
	}

	// Setup commands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	// Catalog commands
	rootCmd.AddCommand(cli.CategoryCmd())
	rootCmd.AddCommand(cli.FrameworkCmd())
	rootCmd.AddCommand(cli.PromptCmd())

	// Workspace commands
	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.FolderCmd())
	rootCmd.AddCommand(cli.DocCmd())
	rootCmd.AddCommand(cli.OutputCmd())
	rootCmd.AddCommand(cli.ItemCmd())

	// Ledger and settings
	rootCmd.AddCommand(cli.ConversationCmd())
	rootCmd.AddCommand(cli.UsageCmd())
	rootCmd.AddCommand(cli.SettingsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
