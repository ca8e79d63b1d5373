package catalog

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateEntryContext provides context for catalog entry creation guards.
type CreateEntryContext struct {
	Kind       string // "category", "framework", "prompt" - used in messages
	Slug       string
	SlugExists bool
}

// DeleteEntryContext provides context for catalog entry deletion guards.
type DeleteEntryContext struct {
	Kind      string
	ID        string
	IsBuiltin bool
}

// DeleteCategoryContext provides context for category deletion guards.
type DeleteCategoryContext struct {
	ID              string
	IsBuiltin       bool
	DefinitionCount int
}

// ResetDefinitionContext provides context for framework reset guards.
type ResetDefinitionContext struct {
	ID        string
	IsBuiltin bool
	SeedFound bool
}

// CanCreateEntry evaluates whether a catalog entry can be created.
// Rules:
// - Derived slug must not be empty
// - Slug must not collide with an existing entry in the same catalog
func CanCreateEntry(ctx CreateEntryContext) GuardResult {
	if ctx.Slug == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s name must contain at least one character", ctx.Kind),
		}
	}

	if ctx.SlugExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s '%s' already exists; pick a different name", ctx.Kind, ctx.Slug),
		}
	}

	return GuardResult{Allowed: true}
}

// CanDeleteEntry evaluates whether a catalog entry can be deleted.
// Rules:
// - Builtin entries are protected and can never be deleted
func CanDeleteEntry(ctx DeleteEntryContext) GuardResult {
	if ctx.IsBuiltin {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot delete builtin %s %s", ctx.Kind, ctx.ID),
		}
	}

	return GuardResult{Allowed: true}
}

// CanDeleteCategory evaluates whether a category can be deleted.
// Rules:
// - Builtin categories are protected
// - Categories with attached framework definitions cannot be deleted
func CanDeleteCategory(ctx DeleteCategoryContext) GuardResult {
	if ctx.IsBuiltin {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot delete builtin category %s", ctx.ID),
		}
	}

	if ctx.DefinitionCount > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("category %s still has %d framework definition(s); move or delete them first", ctx.ID, ctx.DefinitionCount),
		}
	}

	return GuardResult{Allowed: true}
}

// CanResetDefinition evaluates whether a framework definition can be reset
// to its bundled seed content.
// Rules:
// - Only builtin definitions can be reset
// - A bundled seed entry with the same id must exist
func CanResetDefinition(ctx ResetDefinitionContext) GuardResult {
	if !ctx.IsBuiltin {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("framework %s is not builtin and has no seed to reset to", ctx.ID),
		}
	}

	if !ctx.SeedFound {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no bundled seed found for framework %s", ctx.ID),
		}
	}

	return GuardResult{Allowed: true}
}
