package catalog

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Discovery", want: "discovery"},
		{name: "spaces become hyphens", in: "Growth Experiments", want: "growth-experiments"},
		{name: "trims whitespace", in: "  Pricing  ", want: "pricing"},
		{name: "blank name yields empty slug", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyFramework(t *testing.T) {
	got := SlugifyFramework("RICE (Reach Impact Confidence Effort)")
	want := "rice-reach-impact-confidence-effort"
	if got != want {
		t.Errorf("SlugifyFramework() = %q, want %q", got, want)
	}

	// No parentheses behaves exactly like Slugify
	if got := SlugifyFramework("Jobs to be Done"); got != "jobs-to-be-done" {
		t.Errorf("SlugifyFramework() = %q, want %q", got, "jobs-to-be-done")
	}
}

func TestCanCreateEntry(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateEntryContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can create with fresh slug",
			ctx: CreateEntryContext{
				Kind: "category",
				Slug: "growth-experiments",
			},
			wantAllowed: true,
		},
		{
			name: "cannot create with empty slug",
			ctx: CreateEntryContext{
				Kind: "category",
				Slug: "",
			},
			wantAllowed: false,
			wantReason:  "category name must contain at least one character",
		},
		{
			name: "cannot create with colliding slug",
			ctx: CreateEntryContext{
				Kind:       "framework",
				Slug:       "rice",
				SlugExists: true,
			},
			wantAllowed: false,
			wantReason:  "framework 'rice' already exists; pick a different name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateEntry(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanDeleteEntry(t *testing.T) {
	tests := []struct {
		name        string
		ctx         DeleteEntryContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can delete custom entry",
			ctx: DeleteEntryContext{
				Kind: "prompt",
				ID:   "my-prompt",
			},
			wantAllowed: true,
		},
		{
			name: "cannot delete builtin entry",
			ctx: DeleteEntryContext{
				Kind:      "framework",
				ID:        "rice",
				IsBuiltin: true,
			},
			wantAllowed: false,
			wantReason:  "cannot delete builtin framework rice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanDeleteEntry(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanDeleteCategory(t *testing.T) {
	tests := []struct {
		name        string
		ctx         DeleteCategoryContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can delete empty custom category",
			ctx: DeleteCategoryContext{
				ID: "my-category",
			},
			wantAllowed: true,
		},
		{
			name: "cannot delete builtin category",
			ctx: DeleteCategoryContext{
				ID:        "discovery",
				IsBuiltin: true,
			},
			wantAllowed: false,
			wantReason:  "cannot delete builtin category discovery",
		},
		{
			name: "cannot delete category holding definitions",
			ctx: DeleteCategoryContext{
				ID:              "my-category",
				DefinitionCount: 2,
			},
			wantAllowed: false,
			wantReason:  "category my-category still has 2 framework definition(s); move or delete them first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanDeleteCategory(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanResetDefinition(t *testing.T) {
	tests := []struct {
		name        string
		ctx         ResetDefinitionContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can reset builtin with seed",
			ctx: ResetDefinitionContext{
				ID:        "rice",
				IsBuiltin: true,
				SeedFound: true,
			},
			wantAllowed: true,
		},
		{
			name: "cannot reset custom definition",
			ctx: ResetDefinitionContext{
				ID: "my-framework",
			},
			wantAllowed: false,
			wantReason:  "framework my-framework is not builtin and has no seed to reset to",
		},
		{
			name: "cannot reset builtin without a seed",
			ctx: ResetDefinitionContext{
				ID:        "legacy-framework",
				IsBuiltin: true,
			},
			wantAllowed: false,
			wantReason:  "no bundled seed found for framework legacy-framework",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanResetDefinition(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}
