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

// ItemCmd returns the item command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Search, favorite, and file items",
		Long: `Operations spanning both item kinds - context documents and
framework outputs - by name or tag.`,
	}

	cmd.AddCommand(itemSearchCmd())
	cmd.AddCommand(itemFavoriteCmd())
	cmd.AddCommand(itemUnfavoriteCmd())
	cmd.AddCommand(itemMoveCmd())

	return cmd
}

func itemSearchCmd() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search a project's documents and outputs by name or tag",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			term := strings.Join(args, " ")

			items, err := wire.ItemService().SearchItems(ctx, projectID, term)
			if err != nil {
				return fmt.Errorf("failed to search items: %w", err)
			}

			if len(items) == 0 {
				fmt.Println("No items found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKIND\tFOLDER")
			fmt.Fprintln(w, "--\t----\t----\t------")
			for _, item := range items {
				name := item.Name
				if item.IsFavorite {
					name += color.New(color.FgYellow).Sprint(" ★")
				}
				folder := "-"
				if item.FolderID != "" {
					folder = item.FolderID
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.ID, name, item.Kind, folder)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id (required)")
	cmd.MarkFlagRequired("project")

	return cmd
}

func itemFavoriteCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "favorite [item-id]",
		Short: "Mark an item as a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			err := wire.ItemService().ToggleFavorite(ctx, primary.ToggleFavoriteRequest{
				Kind:   kind,
				ItemID: args[0],
				Value:  true,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Item %s favorited\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Item kind: context_doc or framework_output (required)")
	cmd.MarkFlagRequired("kind")

	return cmd
}

func itemUnfavoriteCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "unfavorite [item-id]",
		Short: "Clear an item's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			err := wire.ItemService().ToggleFavorite(ctx, primary.ToggleFavoriteRequest{
				Kind:   kind,
				ItemID: args[0],
				Value:  false,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Item %s unfavorited\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Item kind: context_doc or framework_output (required)")
	cmd.MarkFlagRequired("kind")

	return cmd
}

func itemMoveCmd() *cobra.Command {
	var kind, folderID string

	cmd := &cobra.Command{
		Use:   "move [item-id]",
		Short: "File an item into a folder",
		Long: `File an item into a folder. Omitting --folder unfiles the item,
leaving it at the project root.

Examples:
  pmide item move <doc-id> --kind context_doc --folder <folder-id>
  pmide item move <doc-id> --kind context_doc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			err := wire.FolderService().MoveItem(ctx, primary.MoveItemRequest{
				Kind:     kind,
				ItemID:   args[0],
				FolderID: folderID,
			})
			if err != nil {
				return err
			}

			if folderID == "" {
				fmt.Printf("✓ Item %s unfiled\n", args[0])
			} else {
				fmt.Printf("✓ Item %s filed in %s\n", args[0], folderID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Item kind: context_doc or framework_output (required)")
	cmd.Flags().StringVarP(&folderID, "folder", "f", "", "Destination folder id (omit to unfile)")
	cmd.MarkFlagRequired("kind")

	return cmd
}
