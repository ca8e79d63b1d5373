// Package seeddata bundles the builtin catalog definitions that ship with the
// application. Each category, framework definition, and saved prompt lives in
// its own JSON document; the embedded directory order (lexical by filename)
// is the canonical seed order and becomes the initial sort_order.
package seeddata

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed categories/*.json frameworks/*.json prompts/*.json
var bundled embed.FS

// Category is a bundled framework category definition.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Framework is a bundled framework definition. Optional fields absent from
// the JSON document default to zero values, never a parse failure.
type Framework struct {
	ID                 string   `json:"id"`
	Category           string   `json:"category"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Icon               string   `json:"icon"`
	ExampleOutput      string   `json:"example_output"`
	SystemPrompt       string   `json:"system_prompt"`
	GuidingQuestions   []string `json:"guiding_questions"`
	SupportsVisuals    bool     `json:"supports_visuals"`
	VisualInstructions string   `json:"visual_instructions"`
}

// Prompt is a bundled saved prompt definition.
type Prompt struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	PromptText  string   `json:"prompt_text"`
	Variables   []string `json:"variables"`
	FrameworkID string   `json:"framework_id"`
}

// Categories returns the bundled categories in seed order.
func Categories() ([]Category, error) {
	return loadAll[Category]("categories")
}

// Frameworks returns the bundled framework definitions in seed order.
func Frameworks() ([]Framework, error) {
	return loadAll[Framework]("frameworks")
}

// Prompts returns the bundled saved prompts in seed order.
func Prompts() ([]Prompt, error) {
	return loadAll[Prompt]("prompts")
}

// FrameworkByID returns the bundled framework definition with the given id,
// or nil if no bundled definition carries that id.
func FrameworkByID(id string) (*Framework, error) {
	frameworks, err := Frameworks()
	if err != nil {
		return nil, err
	}
	for i := range frameworks {
		if frameworks[i].ID == id {
			return &frameworks[i], nil
		}
	}
	return nil, nil
}

func loadAll[T any](dir string) ([]T, error) {
	entries, err := fs.ReadDir(bundled, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []T
	for _, name := range names {
		data, err := bundled.ReadFile(dir + "/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read bundled %s/%s: %w", dir, name, err)
		}
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("failed to parse bundled %s/%s: %w", dir, name, err)
		}
		out = append(out, item)
	}
	return out, nil
}
