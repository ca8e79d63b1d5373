package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// mockFrameworkRepository implements secondary.FrameworkRepository for
// testing.
type mockFrameworkRepository struct {
	frameworks map[string]*secondary.FrameworkRecord
}

func newMockFrameworkRepository() *mockFrameworkRepository {
	return &mockFrameworkRepository{
		frameworks: make(map[string]*secondary.FrameworkRecord),
	}
}

func (m *mockFrameworkRepository) Create(ctx context.Context, framework *secondary.FrameworkRecord) error {
	m.frameworks[framework.ID] = framework
	return nil
}

func (m *mockFrameworkRepository) GetByID(ctx context.Context, id string) (*secondary.FrameworkRecord, error) {
	if framework, ok := m.frameworks[id]; ok {
		return framework, nil
	}
	return nil, fmt.Errorf("framework %s not found", id)
}

func (m *mockFrameworkRepository) List(ctx context.Context, filters secondary.FrameworkFilters) ([]*secondary.FrameworkRecord, error) {
	var result []*secondary.FrameworkRecord
	for _, f := range m.frameworks {
		if filters.Category != "" && f.Category != filters.Category {
			continue
		}
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (m *mockFrameworkRepository) Update(ctx context.Context, id string, upd secondary.FrameworkUpdate) error {
	existing, ok := m.frameworks[id]
	if !ok {
		return fmt.Errorf("framework %s not found", id)
	}
	if upd.Category != nil {
		existing.Category = *upd.Category
	}
	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.SystemPrompt != nil {
		existing.SystemPrompt = *upd.SystemPrompt
	}
	if upd.GuidingQuestions != nil {
		existing.GuidingQuestions = *upd.GuidingQuestions
	}
	if upd.SortOrder != nil {
		existing.SortOrder = *upd.SortOrder
	}
	return nil
}

func (m *mockFrameworkRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.frameworks[id]; !ok {
		return fmt.Errorf("framework %s not found", id)
	}
	delete(m.frameworks, id)
	return nil
}

func (m *mockFrameworkRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.frameworks[id]
	return ok, nil
}

func (m *mockFrameworkRepository) MaxSortOrder(ctx context.Context, category string) (int, error) {
	max := -1
	for _, f := range m.frameworks {
		if f.Category == category && f.SortOrder > max {
			max = f.SortOrder
		}
	}
	return max, nil
}

func (m *mockFrameworkRepository) ResetContent(ctx context.Context, id string, content secondary.FrameworkSeedContent) error {
	existing, ok := m.frameworks[id]
	if !ok {
		return fmt.Errorf("framework %s not found", id)
	}
	existing.SystemPrompt = content.SystemPrompt
	existing.GuidingQuestions = content.GuidingQuestions
	existing.ExampleOutput = content.ExampleOutput
	existing.VisualInstructions = content.VisualInstructions
	return nil
}

func (m *mockFrameworkRepository) Search(ctx context.Context, term string) ([]*secondary.FrameworkRecord, error) {
	var result []*secondary.FrameworkRecord
	for _, f := range m.frameworks {
		if strings.Contains(strings.ToLower(f.Name), strings.ToLower(term)) {
			result = append(result, f)
		}
	}
	return result, nil
}

var _ secondary.FrameworkRepository = (*mockFrameworkRepository)(nil)

func newFrameworkService() (*FrameworkServiceImpl, *mockFrameworkRepository, *mockCategoryRepository) {
	frameworkRepo := newMockFrameworkRepository()
	categoryRepo := newMockCategoryRepository()
	categoryRepo.categories["discovery"] = &secondary.CategoryRecord{ID: "discovery", IsBuiltin: true}
	return NewFrameworkService(frameworkRepo, categoryRepo), frameworkRepo, categoryRepo
}

func TestFrameworkService_CreateFramework_StripsParentheses(t *testing.T) {
	service, _, _ := newFrameworkService()
	ctx := context.Background()

	framework, err := service.CreateFramework(ctx, primary.CreateFrameworkRequest{
		Category: "discovery",
		Name:     "RICE (Reach Impact Confidence Effort)",
	})
	if err != nil {
		t.Fatalf("CreateFramework failed: %v", err)
	}
	if framework.ID != "rice-reach-impact-confidence-effort" {
		t.Errorf("expected parens stripped from id, got '%s'", framework.ID)
	}
}

func TestFrameworkService_CreateFramework_UnknownCategory(t *testing.T) {
	service, _, _ := newFrameworkService()
	ctx := context.Background()

	_, err := service.CreateFramework(ctx, primary.CreateFrameworkRequest{
		Category: "missing",
		Name:     "Something",
	})
	if err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestFrameworkService_DeleteFramework_BuiltinProtected(t *testing.T) {
	service, repo, _ := newFrameworkService()
	ctx := context.Background()

	repo.frameworks["jobs-to-be-done"] = &secondary.FrameworkRecord{
		ID: "jobs-to-be-done", Category: "discovery", IsBuiltin: true,
	}

	err := service.DeleteFramework(ctx, "jobs-to-be-done")
	if err == nil {
		t.Fatal("expected error deleting builtin framework")
	}
	if !strings.Contains(err.Error(), "builtin") {
		t.Errorf("expected builtin protection message, got: %v", err)
	}
}

func TestFrameworkService_ResetFramework_RestoresSeedContent(t *testing.T) {
	service, repo, _ := newFrameworkService()
	ctx := context.Background()

	// jobs-to-be-done ships in the bundled seed; simulate a user override.
	repo.frameworks["jobs-to-be-done"] = &secondary.FrameworkRecord{
		ID:           "jobs-to-be-done",
		Category:     "discovery",
		Name:         "My Renamed JTBD",
		SystemPrompt: "user override",
		IsBuiltin:    true,
		SortOrder:    5,
	}

	reset, err := service.ResetFramework(ctx, "jobs-to-be-done")
	if err != nil {
		t.Fatalf("ResetFramework failed: %v", err)
	}

	if reset.SystemPrompt == "user override" || reset.SystemPrompt == "" {
		t.Errorf("expected seed prompt restored, got '%s'", reset.SystemPrompt)
	}
	if len(reset.GuidingQuestions) == 0 {
		t.Error("expected seed guiding questions restored")
	}
	// User-owned fields survive
	if reset.Name != "My Renamed JTBD" {
		t.Errorf("expected name untouched, got '%s'", reset.Name)
	}
	if reset.SortOrder != 5 {
		t.Errorf("expected sort order untouched, got %d", reset.SortOrder)
	}
}

func TestFrameworkService_ResetFramework_CustomRejected(t *testing.T) {
	service, repo, _ := newFrameworkService()
	ctx := context.Background()

	repo.frameworks["my-framework"] = &secondary.FrameworkRecord{
		ID: "my-framework", Category: "discovery", IsBuiltin: false,
	}

	_, err := service.ResetFramework(ctx, "my-framework")
	if err == nil {
		t.Fatal("expected error resetting custom framework")
	}
	if !strings.Contains(err.Error(), "not builtin") {
		t.Errorf("expected not-builtin message, got: %v", err)
	}
}

func TestFrameworkService_ResetFramework_SeedMissing(t *testing.T) {
	service, repo, _ := newFrameworkService()
	ctx := context.Background()

	// Builtin flag set, but no bundled seed carries this id.
	repo.frameworks["legacy-framework"] = &secondary.FrameworkRecord{
		ID: "legacy-framework", Category: "discovery", IsBuiltin: true,
	}

	_, err := service.ResetFramework(ctx, "legacy-framework")
	if err == nil {
		t.Fatal("expected error when seed is missing")
	}
	if !strings.Contains(err.Error(), "seed") {
		t.Errorf("expected seed-missing message, got: %v", err)
	}
}

func TestFrameworkService_DuplicateFramework(t *testing.T) {
	service, repo, _ := newFrameworkService()
	ctx := context.Background()

	repo.frameworks["swot-analysis"] = &secondary.FrameworkRecord{
		ID:               "swot-analysis",
		Category:         "discovery",
		Name:             "SWOT Analysis",
		SystemPrompt:     "seed prompt",
		GuidingQuestions: []string{"Strengths?"},
		IsBuiltin:        true,
		SortOrder:        2,
	}

	copy, err := service.DuplicateFramework(ctx, "swot-analysis", "SWOT for Mobile")
	if err != nil {
		t.Fatalf("DuplicateFramework failed: %v", err)
	}

	if copy.ID != "swot-for-mobile" {
		t.Errorf("expected fresh slug id, got '%s'", copy.ID)
	}
	if copy.IsBuiltin {
		t.Error("expected copy of a builtin to be custom")
	}
	if copy.SortOrder != 3 {
		t.Errorf("expected copy slotted after source, got sort %d", copy.SortOrder)
	}
	if copy.SystemPrompt != "seed prompt" {
		t.Errorf("expected content preserved, got '%s'", copy.SystemPrompt)
	}
}

func TestFrameworkService_DuplicateFramework_SourceMissing(t *testing.T) {
	service, _, _ := newFrameworkService()
	ctx := context.Background()

	_, err := service.DuplicateFramework(ctx, "missing", "Copy")
	if err == nil {
		t.Error("expected error for missing source")
	}
}

func TestFrameworkService_DuplicateFramework_NameCollision(t *testing.T) {
	service, repo, _ := newFrameworkService()
	ctx := context.Background()

	repo.frameworks["swot-analysis"] = &secondary.FrameworkRecord{
		ID: "swot-analysis", Category: "discovery", Name: "SWOT Analysis", IsBuiltin: true,
	}

	_, err := service.DuplicateFramework(ctx, "swot-analysis", "SWOT Analysis")
	if err == nil {
		t.Error("expected error when the new name slugs to the source id")
	}
}
