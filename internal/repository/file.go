package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// fileDecisionRepository stores all decisions in a single JSON file.
// It is the zero-dependency backend for local use; a mutex serializes
// access and writes go through a temp file rename so a crash never leaves
// a half-written journal.
type fileDecisionRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileDecisionRepository creates a file-backed decision repository
// rooted at path, creating the parent directory if needed.
func NewFileDecisionRepository(path string) (DecisionRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &fileDecisionRepository{path: path}, nil
}

// readAll loads the full journal. A missing file is an empty journal; a
// corrupt file is treated the same rather than taking the API down.
func (r *fileDecisionRepository) readAll() ([]models.Decision, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Decision{}, nil
		}
		return nil, fmt.Errorf("failed to read decisions file: %w", err)
	}

	var all []models.Decision
	if err := json.Unmarshal(raw, &all); err != nil {
		return []models.Decision{}, nil
	}
	return all, nil
}

func (r *fileDecisionRepository) writeAll(all []models.Decision) error {
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode decisions: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write decisions file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace decisions file: %w", err)
	}
	return nil
}

func sortNewestFirst(list []models.Decision) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})
}

func (r *fileDecisionRepository) List(ctx context.Context, userID string) ([]models.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return nil, err
	}

	mine := make([]models.Decision, 0, len(all))
	for _, d := range all {
		if d.UserID == userID {
			mine = append(mine, d)
		}
	}
	sortNewestFirst(mine)
	return mine, nil
}

func (r *fileDecisionRepository) ListPending(ctx context.Context, userID string) ([]models.Decision, error) {
	all, err := r.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending := make([]models.Decision, 0, len(all))
	for _, d := range all {
		if d.Result == models.ResultPending {
			pending = append(pending, d)
		}
	}
	return pending, nil
}

func (r *fileDecisionRepository) GetByID(ctx context.Context, userID, id string) (*models.Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id && all[i].UserID == userID {
			d := all[i]
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileDecisionRepository) Create(ctx context.Context, decision *models.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return err
	}
	all = append([]models.Decision{*decision}, all...)
	return r.writeAll(all)
}

func (r *fileDecisionRepository) Save(ctx context.Context, decision *models.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == decision.ID && all[i].UserID == decision.UserID {
			all[i] = *decision
			return r.writeAll(all)
		}
	}
	return ErrNotFound
}

func (r *fileDecisionRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return err
	}

	next := make([]models.Decision, 0, len(all))
	for _, d := range all {
		if d.ID == id && d.UserID == userID {
			continue
		}
		next = append(next, d)
	}
	if len(next) == len(all) {
		return ErrNotFound
	}
	return r.writeAll(next)
}
