package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/wire"
)

// CategoryCmd returns the category command
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage framework categories",
		Long:  `Create and manage the categories that group framework definitions.`,
	}

	cmd.AddCommand(categoryCreateCmd())
	cmd.AddCommand(categoryListCmd())
	cmd.AddCommand(categoryShowCmd())
	cmd.AddCommand(categoryUpdateCmd())
	cmd.AddCommand(categoryDeleteCmd())
	cmd.AddCommand(categorySearchCmd())

	return cmd
}

func categoryCreateCmd() *cobra.Command {
	var description, icon string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a custom category",
		Long: `Create a custom category. Its id is derived from the name
(lowercased, spaces become hyphens) and must not collide with an
existing category.

Examples:
  pmide category create "Growth Experiments"
  pmide category create "Pricing" --icon "💰"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			category, err := wire.CategoryService().CreateCategory(ctx, primary.CreateCategoryRequest{
				Name:        args[0],
				Description: description,
				Icon:        icon,
			})
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Printf("✓ Created category %s: %s\n", category.ID, category.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Category description")
	cmd.Flags().StringVar(&icon, "icon", "", "Category icon")

	return cmd
}

func categoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			categories, err := wire.CategoryService().ListCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println("No categories found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBUILTIN\tSORT")
			fmt.Fprintln(w, "--\t----\t-------\t----")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", c.ID, c.Name, yesNo(c.IsBuiltin), c.SortOrder)
			}
			w.Flush()
			return nil
		},
	}
}

func categoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [category-id]",
		Short: "Show category details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			category, err := wire.CategoryService().GetCategory(ctx, args[0])
			if err != nil {
				return fmt.Errorf("category not found: %w", err)
			}

			fmt.Printf("Category: %s\n", category.ID)
			fmt.Printf("Name: %s\n", category.Name)
			if category.Description != "" {
				fmt.Printf("Description: %s\n", category.Description)
			}
			if category.Icon != "" {
				fmt.Printf("Icon: %s\n", category.Icon)
			}
			fmt.Printf("Builtin: %s\n", yesNo(category.IsBuiltin))
			fmt.Printf("Created: %s\n", category.CreatedAt)

			return nil
		},
	}
}

func categoryUpdateCmd() *cobra.Command {
	var name, description, icon string
	var sortOrder int

	cmd := &cobra.Command{
		Use:   "update [category-id]",
		Short: "Update a category",
		Long: `Update a category's fields. Only the flags you pass change;
passing an empty string clears the field. The id never changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdateCategoryRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("icon") {
				req.Icon = &icon
			}
			if cmd.Flags().Changed("sort") {
				req.SortOrder = &sortOrder
			}

			category, err := wire.CategoryService().UpdateCategory(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			fmt.Printf("✓ Category %s updated\n", category.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon")
	cmd.Flags().IntVar(&sortOrder, "sort", 0, "New sort order")

	return cmd
}

func categoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [category-id]",
		Short: "Delete a custom category",
		Long: `Delete a custom category. Builtin categories and categories
still holding framework definitions are protected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.CategoryService().DeleteCategory(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Category %s deleted\n", args[0])
			return nil
		},
	}
}

func categorySearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [term]",
		Short: "Search categories by name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			categories, err := wire.CategoryService().SearchCategories(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to search categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println("No categories found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBUILTIN")
			fmt.Fprintln(w, "--\t----\t-------")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, yesNo(c.IsBuiltin))
			}
			w.Flush()
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
