package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/riverphoenix/ai-pm-ide/internal/seeddata"
)

// EnsureSeeded populates the catalog tables from the bundled definitions.
// It runs once per startup inside a single transaction and is idempotent:
// categories seed only when their table is empty, and definitions and
// prompts use INSERT OR IGNORE keyed by the seed's own id, so reseeding
// never clobbers rows a user has customized or a prior seed inserted.
// The bundled list order becomes each row's initial sort_order.
func EnsureSeeded(database *sql.DB) error {
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if err := seedCategories(tx); err != nil {
		return err
	}
	if err := seedFrameworks(tx); err != nil {
		return err
	}
	if err := seedPrompts(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

func seedCategories(tx *sql.Tx) error {
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM framework_categories").Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories, err := seeddata.Categories()
	if err != nil {
		return err
	}

	for i, c := range categories {
		_, err := tx.Exec(
			"INSERT INTO framework_categories (id, name, description, icon, is_builtin, sort_order) VALUES (?, ?, ?, ?, 1, ?)",
			c.ID, c.Name, c.Description, c.Icon, i,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
	}
	return nil
}

func seedFrameworks(tx *sql.Tx) error {
	frameworks, err := seeddata.Frameworks()
	if err != nil {
		return err
	}

	for i, f := range frameworks {
		questions, err := json.Marshal(f.GuidingQuestions)
		if err != nil {
			return fmt.Errorf("failed to encode guiding questions for %s: %w", f.ID, err)
		}

		_, err = tx.Exec(
			`INSERT OR IGNORE INTO framework_defs
				(id, category, name, description, icon, example_output, system_prompt,
				 guiding_questions, supports_visuals, visual_instructions, is_builtin, sort_order)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?)`,
			f.ID, f.Category, f.Name, f.Description, f.Icon, f.ExampleOutput, f.SystemPrompt,
			string(questions), f.SupportsVisuals, f.VisualInstructions, i,
		)
		if err != nil {
			return fmt.Errorf("failed to seed framework %s: %w", f.ID, err)
		}
	}
	return nil
}

func seedPrompts(tx *sql.Tx) error {
	prompts, err := seeddata.Prompts()
	if err != nil {
		return err
	}

	for i, p := range prompts {
		variables, err := json.Marshal(p.Variables)
		if err != nil {
			return fmt.Errorf("failed to encode variables for %s: %w", p.ID, err)
		}

		var frameworkID sql.NullString
		if p.FrameworkID != "" {
			frameworkID = sql.NullString{String: p.FrameworkID, Valid: true}
		}

		_, err = tx.Exec(
			`INSERT OR IGNORE INTO saved_prompts
				(id, name, description, category, prompt_text, variables, framework_id, is_builtin, sort_order)
			 VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?)`,
			p.ID, p.Name, p.Description, p.Category, p.PromptText, string(variables), frameworkID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to seed prompt %s: %w", p.ID, err)
		}
	}
	return nil
}
