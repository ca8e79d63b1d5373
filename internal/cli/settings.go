package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/wire"
)

// SettingsCmd returns the settings command
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage user settings and the API key",
		Long: `Show and update the single-user settings: display name, role,
theme, and the encrypted API key.`,
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsUpdateCmd())
	cmd.AddCommand(settingsSetKeyCmd())
	cmd.AddCommand(settingsClearKeyCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			settings, err := wire.SettingsService().GetSettings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			name := settings.DisplayName
			if name == "" {
				name = "-"
			}
			role := settings.Role
			if role == "" {
				role = "-"
			}
			fmt.Printf("Display name: %s\n", name)
			fmt.Printf("Role: %s\n", role)
			fmt.Printf("Theme: %s\n", settings.Theme)
			if settings.HasAPIKey {
				fmt.Printf("API key: set\n")
			} else {
				fmt.Printf("API key: not set\n")
			}

			return nil
		},
	}
}

func settingsUpdateCmd() *cobra.Command {
	var displayName, role, theme string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile settings",
		Long: `Update the profile fields. Only the flags you pass change; passing
an empty string clears the field.

Examples:
  pmide settings update --name "Alex" --role "Senior PM"
  pmide settings update --theme dark`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdateSettingsRequest{}
			if cmd.Flags().Changed("name") {
				req.DisplayName = &displayName
			}
			if cmd.Flags().Changed("role") {
				req.Role = &role
			}
			if cmd.Flags().Changed("theme") {
				req.Theme = &theme
			}

			if _, err := wire.SettingsService().UpdateSettings(ctx, req); err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}

			fmt.Println("✓ Settings updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "", "Role")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme: light, dark, or system")

	return cmd
}

func settingsSetKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [api-key]",
		Short: "Encrypt and store an API key",
		Long: `Encrypt an API key with a machine-bound key and store it. The key
is never written to disk in plaintext.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.SettingsService().SetAPIKey(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to store api key: %w", err)
			}

			fmt.Println("✓ API key stored")
			return nil
		},
	}
}

func settingsClearKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-key",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.SettingsService().DeleteAPIKey(ctx); err != nil {
				return fmt.Errorf("failed to clear api key: %w", err)
			}

			fmt.Println("✓ API key cleared")
			return nil
		},
	}
}
