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

// DocCmd returns the doc command
func DocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Manage context documents",
		Long:  `Create and manage context documents - the reference material attached to a project.`,
	}

	cmd.AddCommand(docCreateCmd())
	cmd.AddCommand(docListCmd())
	cmd.AddCommand(docShowCmd())
	cmd.AddCommand(docUpdateCmd())
	cmd.AddCommand(docDeleteCmd())

	return cmd
}

func docCreateCmd() *cobra.Command {
	var projectID, docType, content, contentFile, url, folderID string
	var tags []string
	var global bool

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a context document",
		Long: `Create a context document. Content comes from --content or --file;
the stored size is fixed from the content at creation.

Examples:
  pmide doc create "Q3 OKRs" --project proj-1 --type okr --file okrs.md
  pmide doc create "Style Guide" --project proj-1 --type reference --global`,
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

			document, err := wire.DocumentService().CreateDocument(ctx, primary.CreateDocumentRequest{
				ProjectID: projectID,
				Name:      args[0],
				DocType:   docType,
				Content:   content,
				URL:       url,
				IsGlobal:  global,
				FolderID:  folderID,
				Tags:      tags,
			})
			if err != nil {
				return fmt.Errorf("failed to create document: %w", err)
			}

			fmt.Printf("✓ Created document %s: %s (%d bytes)\n", document.ID, document.Name, document.SizeBytes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id (required)")
	cmd.Flags().StringVarP(&docType, "type", "t", "", "Document type (required)")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Document content")
	cmd.Flags().StringVar(&contentFile, "file", "", "Read content from a file")
	cmd.Flags().StringVar(&url, "url", "", "Source URL")
	cmd.Flags().StringVarP(&folderID, "folder", "f", "", "Folder to file the document in")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().BoolVarP(&global, "global", "g", false, "Visible across all projects")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("type")

	return cmd
}

func docListCmd() *cobra.Command {
	var projectID, folderID, docType string
	var globalOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List context documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			documents, err := wire.DocumentService().ListDocuments(ctx, primary.DocumentListFilters{
				ProjectID:  projectID,
				FolderID:   folderID,
				DocType:    docType,
				GlobalOnly: globalOnly,
			})
			if err != nil {
				return fmt.Errorf("failed to list documents: %w", err)
			}

			if len(documents) == 0 {
				fmt.Println("No documents found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSIZE\tTAGS")
			fmt.Fprintln(w, "--\t----\t----\t----\t----")
			for _, d := range documents {
				tags := "-"
				if len(d.Tags) > 0 {
					tags = strings.Join(d.Tags, ",")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", d.ID, d.Name, d.DocType, d.SizeBytes, tags)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Filter by project")
	cmd.Flags().StringVarP(&folderID, "folder", "f", "", "Filter by folder")
	cmd.Flags().StringVarP(&docType, "type", "t", "", "Filter by document type")
	cmd.Flags().BoolVarP(&globalOnly, "global", "g", false, "Only global documents")

	return cmd
}

func docShowCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "show [document-id]",
		Short: "Show document details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			document, err := wire.DocumentService().GetDocument(ctx, args[0])
			if err != nil {
				return fmt.Errorf("document not found: %w", err)
			}

			fmt.Printf("Document: %s\n", document.ID)
			fmt.Printf("Name: %s\n", document.Name)
			fmt.Printf("Type: %s\n", document.DocType)
			fmt.Printf("Project: %s\n", document.ProjectID)
			if document.FolderID != "" {
				fmt.Printf("Folder: %s\n", document.FolderID)
			}
			if document.URL != "" {
				fmt.Printf("URL: %s\n", document.URL)
			}
			if len(document.Tags) > 0 {
				fmt.Printf("Tags: %s\n", strings.Join(document.Tags, ", "))
			}
			fmt.Printf("Global: %s\n", yesNo(document.IsGlobal))
			fmt.Printf("Size: %d bytes\n", document.SizeBytes)
			fmt.Printf("Created: %s\n", document.CreatedAt)
			if full && document.Content != "" {
				fmt.Printf("\n%s\n", document.Content)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Print the document content too")

	return cmd
}

func docUpdateCmd() *cobra.Command {
	var name, docType, content, url string
	var tags []string
	var global bool
	var sortOrder int

	cmd := &cobra.Command{
		Use:   "update [document-id]",
		Short: "Update a context document",
		Long: `Update a document's fields. Only the flags you pass change; the
stored size stays fixed from creation even when content changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdateDocumentRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("type") {
				req.DocType = &docType
			}
			if cmd.Flags().Changed("content") {
				req.Content = &content
			}
			if cmd.Flags().Changed("url") {
				req.URL = &url
			}
			if cmd.Flags().Changed("global") {
				req.IsGlobal = &global
			}
			if cmd.Flags().Changed("tag") {
				req.Tags = &tags
			}
			if cmd.Flags().Changed("sort") {
				req.SortOrder = &sortOrder
			}

			document, err := wire.DocumentService().UpdateDocument(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update document: %w", err)
			}

			fmt.Printf("✓ Document %s updated\n", document.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&docType, "type", "t", "", "New document type")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New content")
	cmd.Flags().StringVar(&url, "url", "", "New source URL")
	cmd.Flags().BoolVarP(&global, "global", "g", false, "Visible across all projects")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable, replaces the list)")
	cmd.Flags().IntVar(&sortOrder, "sort", 0, "New sort order")

	return cmd
}

func docDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [document-id]",
		Short: "Delete a context document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.DocumentService().DeleteDocument(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Document %s deleted\n", args[0])
			return nil
		},
	}
}
