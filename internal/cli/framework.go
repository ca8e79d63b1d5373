package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/wire"
)

// FrameworkCmd returns the framework command
func FrameworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "framework",
		Short: "Manage framework definitions",
		Long: `Create and manage framework definitions - the reusable prompt
templates (RICE, Jobs-to-be-Done, SWOT, ...) grouped under categories.`,
	}

	cmd.AddCommand(frameworkCreateCmd())
	cmd.AddCommand(frameworkListCmd())
	cmd.AddCommand(frameworkShowCmd())
	cmd.AddCommand(frameworkUpdateCmd())
	cmd.AddCommand(frameworkDeleteCmd())
	cmd.AddCommand(frameworkResetCmd())
	cmd.AddCommand(frameworkDuplicateCmd())
	cmd.AddCommand(frameworkSearchCmd())

	return cmd
}

func frameworkCreateCmd() *cobra.Command {
	var category, description, icon, systemPrompt, exampleOutput string
	var questions []string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a custom framework definition",
		Long: `Create a custom framework definition under a category. The id is
derived from the name with any parenthesized suffix stripped, so
"RICE (Reach Impact Confidence Effort)" becomes rice.

Examples:
  pmide framework create "Opportunity Scoring" --category prioritization
  pmide framework create "North Star" -c strategy --prompt "You are..."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			framework, err := wire.FrameworkService().CreateFramework(ctx, primary.CreateFrameworkRequest{
				Category:         category,
				Name:             args[0],
				Description:      description,
				Icon:             icon,
				SystemPrompt:     systemPrompt,
				GuidingQuestions: questions,
				ExampleOutput:    exampleOutput,
			})
			if err != nil {
				return fmt.Errorf("failed to create framework: %w", err)
			}

			fmt.Printf("✓ Created framework %s: %s\n", framework.ID, framework.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category id (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Framework description")
	cmd.Flags().StringVar(&icon, "icon", "", "Framework icon")
	cmd.Flags().StringVar(&systemPrompt, "prompt", "", "System prompt")
	cmd.Flags().StringArrayVar(&questions, "question", nil, "Guiding question (repeatable)")
	cmd.Flags().StringVar(&exampleOutput, "example", "", "Example output")
	cmd.MarkFlagRequired("category")

	return cmd
}

func frameworkListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List framework definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			frameworks, err := wire.FrameworkService().ListFrameworks(ctx, category)
			if err != nil {
				return fmt.Errorf("failed to list frameworks: %w", err)
			}

			if len(frameworks) == 0 {
				fmt.Println("No frameworks found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tBUILTIN")
			fmt.Fprintln(w, "--\t----\t--------\t-------")
			for _, f := range frameworks {
				name := f.Name
				if !f.IsBuiltin {
					name += color.New(color.FgCyan).Sprint(" [custom]")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, name, f.Category, yesNo(f.IsBuiltin))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")

	return cmd
}

func frameworkShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [framework-id]",
		Short: "Show framework details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			framework, err := wire.FrameworkService().GetFramework(ctx, args[0])
			if err != nil {
				return fmt.Errorf("framework not found: %w", err)
			}

			fmt.Printf("Framework: %s\n", framework.ID)
			fmt.Printf("Name: %s\n", framework.Name)
			fmt.Printf("Category: %s\n", framework.Category)
			if framework.Description != "" {
				fmt.Printf("Description: %s\n", framework.Description)
			}
			fmt.Printf("Builtin: %s\n", yesNo(framework.IsBuiltin))
			if framework.SupportsVisuals {
				fmt.Printf("Supports visuals: yes\n")
			}
			if framework.SystemPrompt != "" {
				fmt.Printf("\nSystem prompt:\n%s\n", framework.SystemPrompt)
			}
			if len(framework.GuidingQuestions) > 0 {
				fmt.Printf("\nGuiding questions:\n")
				for _, q := range framework.GuidingQuestions {
					fmt.Printf("  - %s\n", q)
				}
			}

			return nil
		},
	}
}

func frameworkUpdateCmd() *cobra.Command {
	var category, name, description, icon, systemPrompt, exampleOutput, visualInstructions string
	var questions []string
	var supportsVisuals bool
	var sortOrder int

	cmd := &cobra.Command{
		Use:   "update [framework-id]",
		Short: "Update a framework definition",
		Long: `Update a framework definition. Only the flags you pass change;
passing an empty string clears the field. Builtins keep their flag
and id, so customized builtins can later be reset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdateFrameworkRequest{}
			if cmd.Flags().Changed("category") {
				req.Category = &category
			}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("icon") {
				req.Icon = &icon
			}
			if cmd.Flags().Changed("prompt") {
				req.SystemPrompt = &systemPrompt
			}
			if cmd.Flags().Changed("question") {
				req.GuidingQuestions = &questions
			}
			if cmd.Flags().Changed("example") {
				req.ExampleOutput = &exampleOutput
			}
			if cmd.Flags().Changed("visuals") {
				req.SupportsVisuals = &supportsVisuals
			}
			if cmd.Flags().Changed("visual-instructions") {
				req.VisualInstructions = &visualInstructions
			}
			if cmd.Flags().Changed("sort") {
				req.SortOrder = &sortOrder
			}

			framework, err := wire.FrameworkService().UpdateFramework(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update framework: %w", err)
			}

			fmt.Printf("✓ Framework %s updated\n", framework.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon")
	cmd.Flags().StringVar(&systemPrompt, "prompt", "", "New system prompt")
	cmd.Flags().StringArrayVar(&questions, "question", nil, "Guiding question (repeatable, replaces the list)")
	cmd.Flags().StringVar(&exampleOutput, "example", "", "New example output")
	cmd.Flags().BoolVar(&supportsVisuals, "visuals", false, "Whether the framework supports visuals")
	cmd.Flags().StringVar(&visualInstructions, "visual-instructions", "", "New visual instructions")
	cmd.Flags().IntVar(&sortOrder, "sort", 0, "New sort order")

	return cmd
}

func frameworkDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [framework-id]",
		Short: "Delete a custom framework definition",
		Long:  `Delete a custom framework definition. Builtins are protected; reset them instead.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.FrameworkService().DeleteFramework(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Framework %s deleted\n", args[0])
			return nil
		},
	}
}

func frameworkResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [framework-id]",
		Short: "Reset a builtin framework to its bundled content",
		Long: `Restore a builtin framework's prompt content from the bundled seed.
Name, icon, and sort order are left as you set them; only the system
prompt, guiding questions, example output, and visual instructions
revert.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			framework, err := wire.FrameworkService().ResetFramework(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("✓ Framework %s reset to bundled content\n", framework.ID)
			return nil
		},
	}
}

func frameworkDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate [framework-id] [new-name]",
		Short: "Copy a framework into a custom one",
		Long: `Copy a framework definition into a new custom one. The copy keeps
all content, is never builtin, and slots directly after the source.

Examples:
  pmide framework duplicate swot-analysis "SWOT for Mobile"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			framework, err := wire.FrameworkService().DuplicateFramework(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to duplicate framework: %w", err)
			}

			fmt.Printf("✓ Created framework %s: %s (copy of %s)\n", framework.ID, framework.Name, args[0])
			return nil
		},
	}
}

func frameworkSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [term]",
		Short: "Search frameworks by name or description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			term := strings.Join(args, " ")

			frameworks, err := wire.FrameworkService().SearchFrameworks(ctx, term)
			if err != nil {
				return fmt.Errorf("failed to search frameworks: %w", err)
			}

			if len(frameworks) == 0 {
				fmt.Println("No frameworks found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
			fmt.Fprintln(w, "--\t----\t--------")
			for _, f := range frameworks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.ID, f.Name, f.Category)
			}
			w.Flush()
			return nil
		},
	}
}
