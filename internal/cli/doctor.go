package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/riverphoenix/ai-pm-ide/internal/config"
	"github.com/riverphoenix/ai-pm-ide/internal/db"
	"github.com/riverphoenix/ai-pm-ide/internal/vault"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the pmide environment",
		Long: `Environment health check for pmide.

Validates:
- Data directory (~/.pmide/ or $PMIDE_DATA_DIR)
- Database file and schema
- Builtin catalog seeding
- Machine-bound encryption key derivation

Examples:
  pmide doctor            # Run full health check
  pmide doctor --quiet    # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDataDir(),
				checkDatabase(),
				checkCatalog(),
				checkVaultKey(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'pmide init' to set up the database.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkDataDir validates the data directory exists
func checkDataDir() CheckResult {
	cfg, err := config.Load()
	if err != nil {
		return CheckResult{Name: "Data directory", Status: "✗", Details: "  " + err.Error()}
	}
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return CheckResult{Name: "Data directory", Status: "✗", Details: "  " + err.Error()}
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{Name: "Data directory", Status: "⚠", Details: fmt.Sprintf("  %s missing (created on first use)", dir)}
	}
	return CheckResult{Name: "Data directory", Status: "✓"}
}

// checkDatabase validates the database opens and has the schema
func checkDatabase() CheckResult {
	dbPath, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return CheckResult{Name: "Database", Status: "⚠", Details: fmt.Sprintf("  %s missing, run 'pmide init'", filepath.Base(dbPath))}
	}

	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  " + err.Error()}
	}

	var name string
	err = database.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'projects'",
	).Scan(&name)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  schema missing, run 'pmide init'"}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}

// checkCatalog validates the builtin catalogs are seeded
func checkCatalog() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Catalog", Status: "✗", Details: "  " + err.Error()}
	}

	var categories, frameworks int
	if err := database.QueryRow("SELECT COUNT(*) FROM framework_categories").Scan(&categories); err != nil {
		return CheckResult{Name: "Catalog", Status: "✗", Details: "  " + err.Error()}
	}
	if err := database.QueryRow("SELECT COUNT(*) FROM framework_defs").Scan(&frameworks); err != nil {
		return CheckResult{Name: "Catalog", Status: "✗", Details: "  " + err.Error()}
	}
	if categories == 0 || frameworks == 0 {
		return CheckResult{Name: "Catalog", Status: "⚠", Details: "  builtin catalogs empty, run 'pmide init'"}
	}
	return CheckResult{Name: "Catalog", Status: "✓"}
}

// checkVaultKey validates the machine-bound key derives
func checkVaultKey() CheckResult {
	key := vault.DeriveKey()
	if len(key) != 32 {
		return CheckResult{Name: "Vault key", Status: "✗", Details: "  key derivation returned a bad length"}
	}
	return CheckResult{Name: "Vault key", Status: "✓"}
}
