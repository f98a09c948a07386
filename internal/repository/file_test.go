package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

func newTestRepo(t *testing.T) DecisionRepository {
	t.Helper()
	repo, err := NewFileDecisionRepository(filepath.Join(t.TempDir(), "decisions.json"))
	if err != nil {
		t.Fatalf("NewFileDecisionRepository failed: %v", err)
	}
	return repo
}

func testDecision(id, userID, createdAt string) *models.Decision {
	return &models.Decision{
		ID:         id,
		UserID:     userID,
		CategoryID: "daily",
		Title:      "decision " + id,
		Tags:       []string{"tag"},
		Confidence: 3,
		Result:     models.ResultPending,
		CreatedAt:  createdAt,
	}
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d := testDecision("d1", "user-1", "2026-01-05T10:00:00Z")
	d.Meta = models.DecisionMeta{"reflection": "test"}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "user-1", "d1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != d.Title || got.CategoryID != d.CategoryID {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Meta["reflection"] != "test" {
		t.Errorf("meta did not survive round trip: %v", got.Meta)
	}
}

func TestFileRepositoryMissingFileIsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	list, err := repo.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List on missing file failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty journal, got %d decisions", len(list))
	}
}

func TestFileRepositoryCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decisions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	repo, err := NewFileDecisionRepository(path)
	if err != nil {
		t.Fatalf("NewFileDecisionRepository failed: %v", err)
	}

	list, err := repo.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List on corrupt file failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("corrupt journal should read as empty, got %d decisions", len(list))
	}
}

func TestFileRepositoryListNewestFirstAndScoped(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, testDecision("old", "user-1", "2026-01-01T10:00:00Z")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, testDecision("new", "user-1", "2026-01-08T10:00:00Z")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, testDecision("other", "user-2", "2026-01-09T10:00:00Z")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := repo.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 decisions for user-1, got %d", len(list))
	}
	if list[0].ID != "new" || list[1].ID != "old" {
		t.Errorf("expected newest first, got [%s %s]", list[0].ID, list[1].ID)
	}
}

func TestFileRepositoryListPending(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	pending := testDecision("p1", "user-1", "2026-01-05T10:00:00Z")
	resolved := testDecision("r1", "user-1", "2026-01-06T10:00:00Z")
	resolved.Result = models.ResultPositive
	resolved.ResolvedAt = "2026-01-07T10:00:00Z"

	if err := repo.Create(ctx, pending); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, resolved); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := repo.ListPending(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != "p1" {
		t.Errorf("expected only the pending decision, got %+v", list)
	}
}

func TestFileRepositorySave(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d := testDecision("d1", "user-1", "2026-01-05T10:00:00Z")
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	d.Result = models.ResultPositive
	d.ResolvedAt = "2026-01-06T10:00:00Z"
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "user-1", "d1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Result != models.ResultPositive || got.ResolvedAt == "" {
		t.Errorf("save did not persist outcome: %+v", got)
	}

	missing := testDecision("ghost", "user-1", "2026-01-05T10:00:00Z")
	if err := repo.Save(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("saving a missing decision should report ErrNotFound, got %v", err)
	}
}

func TestFileRepositoryDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, testDecision("d1", "user-1", "2026-01-05T10:00:00Z")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, "user-1", "d1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, "user-1", "d1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted decision should be gone, got %v", err)
	}
	if err := repo.Delete(ctx, "user-1", "d1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete should report ErrNotFound, got %v", err)
	}
}

func TestFileRepositoryCrossUserAccess(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, testDecision("d1", "user-1", "2026-01-05T10:00:00Z")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := repo.GetByID(ctx, "user-2", "d1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user get must report ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "user-2", "d1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user delete must report ErrNotFound, got %v", err)
	}
}
