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

// ProjectCmd returns the project command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long:  `Create and manage projects - the top-level workspaces owning folders, documents, outputs, and conversations.`,
	}

	cmd.AddCommand(projectCreateCmd())
	cmd.AddCommand(projectListCmd())
	cmd.AddCommand(projectShowCmd())
	cmd.AddCommand(projectUpdateCmd())
	cmd.AddCommand(projectDeleteCmd())

	return cmd
}

func projectCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			project, err := wire.ProjectService().CreateProject(ctx, primary.CreateProjectRequest{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			fmt.Printf("✓ Created project %s: %s\n", project.ID, project.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")

	return cmd
}

func projectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects, most recently updated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projects, err := wire.ProjectService().ListProjects(ctx)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				fmt.Println()
				fmt.Println("Create your first project:")
				fmt.Println("  pmide project create \"My Product\"")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tUPDATED")
			fmt.Fprintln(w, "--\t----\t-------")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.UpdatedAt)
			}
			w.Flush()
			return nil
		},
	}
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			project, err := wire.ProjectService().GetProject(ctx, args[0])
			if err != nil {
				return fmt.Errorf("project not found: %w", err)
			}

			fmt.Printf("Project: %s\n", project.ID)
			fmt.Printf("Name: %s\n", project.Name)
			if project.Description != "" {
				fmt.Printf("Description: %s\n", project.Description)
			}
			fmt.Printf("Created: %s\n", project.CreatedAt)
			fmt.Printf("Updated: %s\n", project.UpdatedAt)

			return nil
		},
	}
}

func projectUpdateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update [project-id]",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdateProjectRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}

			project, err := wire.ProjectService().UpdateProject(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}

			fmt.Printf("✓ Project %s updated\n", project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")

	return cmd
}

func projectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [project-id]",
		Short: "Delete a project",
		Long: `Delete a project and everything it owns: folders, documents,
outputs, and conversations all go with it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.ProjectService().DeleteProject(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Project %s deleted\n", args[0])
			return nil
		},
	}
}
