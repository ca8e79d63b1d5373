package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverphoenix/ai-pm-ide/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the pmide database",
		Long: `Initialize the database at ~/.pmide/pm-ide.db (or $PMIDE_DATA_DIR)
with the schema and the bundled framework catalog. Safe to re-run:
existing data and catalog customizations are never touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing database at %s\n", dbPath)

			// Opening the connection runs schema init and catalog seeding
			if _, err := db.GetDB(); err != nil {
				return err
			}

			fmt.Println("✓ Database initialized")
			fmt.Println("✓ Builtin catalogs seeded")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  pmide project create \"My Product\"")
			fmt.Println("  pmide framework list")

			return nil
		},
	}
}
