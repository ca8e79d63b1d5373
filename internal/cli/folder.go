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

// FolderCmd returns the folder command
func FolderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage folders",
		Long:  `Create and manage a project's folder tree for filing documents and outputs.`,
	}

	cmd.AddCommand(folderCreateCmd())
	cmd.AddCommand(folderListCmd())
	cmd.AddCommand(folderShowCmd())
	cmd.AddCommand(folderUpdateCmd())
	cmd.AddCommand(folderDeleteCmd())

	return cmd
}

func folderCreateCmd() *cobra.Command {
	var projectID, parentID, folderColor string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a folder",
		Long: `Create a folder in a project, optionally nested under a parent.

Examples:
  pmide folder create "Research" --project proj-1
  pmide folder create "Interviews" --project proj-1 --parent <folder-id>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			folder, err := wire.FolderService().CreateFolder(ctx, primary.CreateFolderRequest{
				ProjectID: projectID,
				Name:      args[0],
				ParentID:  parentID,
				Color:     folderColor,
			})
			if err != nil {
				return fmt.Errorf("failed to create folder: %w", err)
			}

			fmt.Printf("✓ Created folder %s: %s\n", folder.ID, folder.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id (required)")
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent folder id")
	cmd.Flags().StringVar(&folderColor, "color", "", "Folder color")
	cmd.MarkFlagRequired("project")

	return cmd
}

func folderListCmd() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			folders, err := wire.FolderService().ListFolders(ctx, projectID)
			if err != nil {
				return fmt.Errorf("failed to list folders: %w", err)
			}

			if len(folders) == 0 {
				fmt.Println("No folders found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPARENT")
			fmt.Fprintln(w, "--\t----\t------")
			for _, f := range folders {
				parent := "-"
				if f.ParentID != "" {
					parent = f.ParentID
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.ID, f.Name, parent)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id (required)")
	cmd.MarkFlagRequired("project")

	return cmd
}

func folderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [folder-id]",
		Short: "Show folder details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			folder, err := wire.FolderService().GetFolder(ctx, args[0])
			if err != nil {
				return fmt.Errorf("folder not found: %w", err)
			}

			fmt.Printf("Folder: %s\n", folder.ID)
			fmt.Printf("Name: %s\n", folder.Name)
			fmt.Printf("Project: %s\n", folder.ProjectID)
			if folder.ParentID != "" {
				fmt.Printf("Parent: %s\n", folder.ParentID)
			}
			if folder.Color != "" {
				fmt.Printf("Color: %s\n", folder.Color)
			}
			fmt.Printf("Created: %s\n", folder.CreatedAt)

			return nil
		},
	}
}

func folderUpdateCmd() *cobra.Command {
	var name, folderColor, parentID string
	var sortOrder int
	var toRoot bool

	cmd := &cobra.Command{
		Use:   "update [folder-id]",
		Short: "Update or move a folder",
		Long: `Update a folder's fields or move it in the tree. --parent reparents
the folder (moves that would create a cycle are rejected); --root
moves it to the top level.

Examples:
  pmide folder update <folder-id> --name "Archive"
  pmide folder update <folder-id> --parent <other-folder-id>
  pmide folder update <folder-id> --root`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdateFolderRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("color") {
				req.Color = &folderColor
			}
			if cmd.Flags().Changed("sort") {
				req.SortOrder = &sortOrder
			}
			if toRoot {
				root := ""
				req.ParentID = &root
			} else if cmd.Flags().Changed("parent") {
				req.ParentID = &parentID
			}

			folder, err := wire.FolderService().UpdateFolder(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update folder: %w", err)
			}

			fmt.Printf("✓ Folder %s updated\n", folder.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&folderColor, "color", "", "New color")
	cmd.Flags().IntVar(&sortOrder, "sort", 0, "New sort order")
	cmd.Flags().StringVar(&parentID, "parent", "", "New parent folder id")
	cmd.Flags().BoolVar(&toRoot, "root", false, "Move the folder to the top level")

	return cmd
}

func folderDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [folder-id]",
		Short: "Delete a folder",
		Long: `Delete a folder. Items filed in it are unfiled first, never
deleted. Subfolders go with it; their items survive unfiled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.FolderService().DeleteFolder(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Folder %s deleted\n", args[0])
			return nil
		},
	}
}
