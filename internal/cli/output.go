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

// OutputCmd returns the output command
func OutputCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "output",
		Short: "Manage framework outputs",
		Long:  `Store and manage framework outputs - generated artifacts kept alongside the prompt and context that produced them.`,
	}

	cmd.AddCommand(outputCreateCmd())
	cmd.AddCommand(outputListCmd())
	cmd.AddCommand(outputShowCmd())
	cmd.AddCommand(outputUpdateCmd())
	cmd.AddCommand(outputDeleteCmd())

	return cmd
}

func outputCreateCmd() *cobra.Command {
	var projectID, frameworkID, category, userPrompt, content, contentFile, format, folderID string
	var contextDocs, tags []string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Store a framework output",
		Long: `Store a generated framework output. The category defaults to the
framework's own category when omitted; context document references
are kept as-is, never validated.

Examples:
  pmide output create "Checkout RICE scores" --project proj-1 --framework rice --file scores.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if contentFile != "" {
				data, err := os.ReadFile(contentFile)
				if err != nil {
					return fmt.Errorf("failed to read content file: %w", err)
				}
				content = string(data)
			}

			output, err := wire.OutputService().CreateOutput(ctx, primary.CreateOutputRequest{
				ProjectID:        projectID,
				Name:             args[0],
				FrameworkID:      frameworkID,
				Category:         category,
				UserPrompt:       userPrompt,
				ContextDocIDs:    contextDocs,
				GeneratedContent: content,
				Format:           format,
				FolderID:         folderID,
				Tags:             tags,
			})
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}

			fmt.Printf("✓ Created output %s: %s\n", output.ID, output.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id (required)")
	cmd.Flags().StringVarP(&frameworkID, "framework", "f", "", "Framework id (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (defaults to the framework's)")
	cmd.Flags().StringVar(&userPrompt, "user-prompt", "", "The prompt that produced the output")
	cmd.Flags().StringVar(&content, "content", "", "Generated content")
	cmd.Flags().StringVar(&contentFile, "file", "", "Read generated content from a file")
	cmd.Flags().StringVar(&format, "format", "", "Content format (defaults to markdown)")
	cmd.Flags().StringVar(&folderID, "folder", "", "Folder to file the output in")
	cmd.Flags().StringArrayVar(&contextDocs, "context-doc", nil, "Referenced context document id (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("framework")

	return cmd
}

func outputListCmd() *cobra.Command {
	var projectID, frameworkID, category, folderID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List framework outputs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			outputs, err := wire.OutputService().ListOutputs(ctx, primary.OutputListFilters{
				ProjectID:   projectID,
				FrameworkID: frameworkID,
				Category:    category,
				FolderID:    folderID,
			})
			if err != nil {
				return fmt.Errorf("failed to list outputs: %w", err)
			}

			if len(outputs) == 0 {
				fmt.Println("No outputs found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tFRAMEWORK\tCREATED")
			fmt.Fprintln(w, "--\t----\t---------\t-------")
			for _, o := range outputs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Name, o.FrameworkID, o.CreatedAt)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Filter by project")
	cmd.Flags().StringVarP(&frameworkID, "framework", "f", "", "Filter by framework")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVar(&folderID, "folder", "", "Filter by folder")

	return cmd
}

func outputShowCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "show [output-id]",
		Short: "Show output details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			output, err := wire.OutputService().GetOutput(ctx, args[0])
			if err != nil {
				return fmt.Errorf("output not found: %w", err)
			}

			fmt.Printf("Output: %s\n", output.ID)
			fmt.Printf("Name: %s\n", output.Name)
			fmt.Printf("Framework: %s\n", output.FrameworkID)
			if output.Category != "" {
				fmt.Printf("Category: %s\n", output.Category)
			}
			fmt.Printf("Project: %s\n", output.ProjectID)
			fmt.Printf("Format: %s\n", output.Format)
			if output.FolderID != "" {
				fmt.Printf("Folder: %s\n", output.FolderID)
			}
			if len(output.ContextDocIDs) > 0 {
				fmt.Printf("Context docs: %s\n", strings.Join(output.ContextDocIDs, ", "))
			}
			if len(output.Tags) > 0 {
				fmt.Printf("Tags: %s\n", strings.Join(output.Tags, ", "))
			}
			fmt.Printf("Created: %s\n", output.CreatedAt)
			if full && output.GeneratedContent != "" {
				fmt.Printf("\n%s\n", output.GeneratedContent)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Print the generated content too")

	return cmd
}

func outputUpdateCmd() *cobra.Command {
	var name, content, format string
	var tags []string
	var sortOrder int

	cmd := &cobra.Command{
		Use:   "update [output-id]",
		Short: "Update a framework output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdateOutputRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("content") {
				req.GeneratedContent = &content
			}
			if cmd.Flags().Changed("format") {
				req.Format = &format
			}
			if cmd.Flags().Changed("tag") {
				req.Tags = &tags
			}
			if cmd.Flags().Changed("sort") {
				req.SortOrder = &sortOrder
			}

			output, err := wire.OutputService().UpdateOutput(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update output: %w", err)
			}

			fmt.Printf("✓ Output %s updated\n", output.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New generated content")
	cmd.Flags().StringVar(&format, "format", "", "New content format")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable, replaces the list)")
	cmd.Flags().IntVar(&sortOrder, "sort", 0, "New sort order")

	return cmd
}

func outputDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [output-id]",
		Short: "Delete a framework output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.OutputService().DeleteOutput(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Output %s deleted\n", args[0])
			return nil
		},
	}
}
