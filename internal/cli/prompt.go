package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/wire"
)

// PromptCmd returns the prompt command
func PromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Manage saved prompts",
		Long:  `Create and manage the saved prompt library, optionally linked to frameworks.`,
	}

	cmd.AddCommand(promptCreateCmd())
	cmd.AddCommand(promptListCmd())
	cmd.AddCommand(promptShowCmd())
	cmd.AddCommand(promptUpdateCmd())
	cmd.AddCommand(promptDeleteCmd())
	cmd.AddCommand(promptUseCmd())
	cmd.AddCommand(promptDuplicateCmd())
	cmd.AddCommand(promptSearchCmd())

	return cmd
}

func promptCreateCmd() *cobra.Command {
	var description, category, text, frameworkID string
	var variables []string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a saved prompt",
		Long: `Create a saved prompt. Variables are placeholder names the prompt
text references; a framework link ties the prompt to a definition.

Examples:
  pmide prompt create "Sprint Retro" --text "Summarize the sprint..."
  pmide prompt create "RICE Scoring" --framework rice --variable feature`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			prompt, err := wire.PromptService().CreatePrompt(ctx, primary.CreatePromptRequest{
				Name:        args[0],
				Description: description,
				Category:    category,
				PromptText:  text,
				Variables:   variables,
				FrameworkID: frameworkID,
			})
			if err != nil {
				return fmt.Errorf("failed to create prompt: %w", err)
			}

			fmt.Printf("✓ Created prompt %s: %s\n", prompt.ID, prompt.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Prompt description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Prompt category label")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Prompt text")
	cmd.Flags().StringArrayVar(&variables, "variable", nil, "Placeholder variable (repeatable)")
	cmd.Flags().StringVarP(&frameworkID, "framework", "f", "", "Linked framework id")

	return cmd
}

func promptListCmd() *cobra.Command {
	var category, frameworkID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved prompts, most used first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			prompts, err := wire.PromptService().ListPrompts(ctx, primary.PromptListFilters{
				Category:    category,
				FrameworkID: frameworkID,
			})
			if err != nil {
				return fmt.Errorf("failed to list prompts: %w", err)
			}

			if len(prompts) == 0 {
				fmt.Println("No prompts found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tFRAMEWORK\tUSED")
			fmt.Fprintln(w, "--\t----\t---------\t----")
			for _, p := range prompts {
				framework := "-"
				if p.FrameworkID != "" {
					framework = p.FrameworkID
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.ID, p.Name, framework, p.UsageCount)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category label")
	cmd.Flags().StringVarP(&frameworkID, "framework", "f", "", "Filter by linked framework")

	return cmd
}

func promptShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [prompt-id]",
		Short: "Show prompt details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			prompt, err := wire.PromptService().GetPrompt(ctx, args[0])
			if err != nil {
				return fmt.Errorf("prompt not found: %w", err)
			}

			fmt.Printf("Prompt: %s\n", prompt.ID)
			fmt.Printf("Name: %s\n", prompt.Name)
			if prompt.Description != "" {
				fmt.Printf("Description: %s\n", prompt.Description)
			}
			if prompt.FrameworkID != "" {
				fmt.Printf("Framework: %s\n", prompt.FrameworkID)
			}
			if len(prompt.Variables) > 0 {
				fmt.Printf("Variables: %s\n", strings.Join(prompt.Variables, ", "))
			}
			fmt.Printf("Builtin: %s\n", yesNo(prompt.IsBuiltin))
			fmt.Printf("Used: %d times\n", prompt.UsageCount)
			if prompt.PromptText != "" {
				fmt.Printf("\n%s\n", prompt.PromptText)
			}

			return nil
		},
	}
}

func promptUpdateCmd() *cobra.Command {
	var name, description, category, text, frameworkID string
	var variables []string
	var favorite bool

	cmd := &cobra.Command{
		Use:   "update [prompt-id]",
		Short: "Update a saved prompt",
		Long: `Update a saved prompt. Only the flags you pass change; passing an
empty string clears the field (an empty --framework unlinks it).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdatePromptRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("category") {
				req.Category = &category
			}
			if cmd.Flags().Changed("text") {
				req.PromptText = &text
			}
			if cmd.Flags().Changed("variable") {
				req.Variables = &variables
			}
			if cmd.Flags().Changed("framework") {
				req.FrameworkID = &frameworkID
			}
			if cmd.Flags().Changed("favorite") {
				req.IsFavorite = &favorite
			}

			prompt, err := wire.PromptService().UpdatePrompt(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update prompt: %w", err)
			}

			fmt.Printf("✓ Prompt %s updated\n", prompt.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category label")
	cmd.Flags().StringVarP(&text, "text", "t", "", "New prompt text")
	cmd.Flags().StringArrayVar(&variables, "variable", nil, "Placeholder variable (repeatable, replaces the list)")
	cmd.Flags().StringVarP(&frameworkID, "framework", "f", "", "New linked framework id")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "Favorite flag")

	return cmd
}

func promptDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [prompt-id]",
		Short: "Delete a custom prompt",
		Long:  `Delete a custom prompt. Builtins are protected.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.PromptService().DeletePrompt(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Prompt %s deleted\n", args[0])
			return nil
		},
	}
}

func promptUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use [prompt-id]",
		Short: "Print a prompt's text and bump its usage count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			prompt, err := wire.PromptService().UsePrompt(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(prompt.PromptText)
			return nil
		},
	}
}

func promptDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate [prompt-id] [new-name]",
		Short: "Copy a prompt into a custom one",
		Long: `Copy a saved prompt into a new custom one. The copy keeps the text,
variables, and framework link, is never builtin, and slots directly
after the source.

Examples:
  pmide prompt duplicate prd-outline "PRD Outline for Mobile"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			prompt, err := wire.PromptService().DuplicatePrompt(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to duplicate prompt: %w", err)
			}

			fmt.Printf("✓ Created prompt %s: %s (copy of %s)\n", prompt.ID, prompt.Name, args[0])
			return nil
		},
	}
}

func promptSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [term]",
		Short: "Search prompts by name, description, or body",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			term := strings.Join(args, " ")

			prompts, err := wire.PromptService().SearchPrompts(ctx, term)
			if err != nil {
				return fmt.Errorf("failed to search prompts: %w", err)
			}

			if len(prompts) == 0 {
				fmt.Println("No prompts found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tUSED")
			fmt.Fprintln(w, "--\t----\t----")
			for _, p := range prompts {
				fmt.Fprintf(w, "%s\t%s\t%d\n", p.ID, p.Name, p.UsageCount)
			}
			w.Flush()
			return nil
		},
	}
}
