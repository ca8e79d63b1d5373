// Package folder contains the pure business logic for folder tree
// operations. Guards are pure functions that evaluate preconditions without
// side effects.
package folder

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

// ReparentContext provides context for folder reparenting guards.
// ParentAncestors is the ancestor chain of the proposed parent, starting at
// the parent itself and walking up to the root.
type ReparentContext struct {
	FolderID        string
	NewParentID     string
	ParentAncestors []string
}

// CanReparentFolder evaluates whether a folder can be moved under a new
// parent.
// Rules:
// - A folder cannot be its own parent
// - The new parent must not be a descendant of the folder (no cycles)
func CanReparentFolder(ctx ReparentContext) GuardResult {
	if ctx.NewParentID == ctx.FolderID {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("folder %s cannot be its own parent", ctx.FolderID),
		}
	}

	for _, ancestor := range ctx.ParentAncestors {
		if ancestor == ctx.FolderID {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("moving folder %s under %s would create a cycle", ctx.FolderID, ctx.NewParentID),
			}
		}
	}

	return GuardResult{Allowed: true}
}
