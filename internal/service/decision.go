package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seongmin-h/decisionlog/backend/internal/analytics"
	"github.com/seongmin-h/decisionlog/backend/internal/models"
	"github.com/seongmin-h/decisionlog/backend/internal/repository"
)

var (
	// ErrTitleRequired indicates a create or edit without a usable title.
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidResult indicates an unknown result value.
	ErrInvalidResult = errors.New("result must be one of: pending, positive, negative, neutral")
)

const defaultConfidence = 3

type decisionService struct {
	repo repository.DecisionRepository
}

// NewDecisionService creates a new decision service
func NewDecisionService(repo repository.DecisionRepository) DecisionService {
	return &decisionService{repo: repo}
}

// normalizeTags trims tags and drops the empty ones. Duplicates are kept;
// the tag ranker counts each occurrence.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, raw := range tags {
		if tag := strings.TrimSpace(raw); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func validConfidence(c int) bool {
	return c >= 1 && c <= 5
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *decisionService) CreateDecision(ctx context.Context, userID string, req *models.CreateDecisionRequest) (*models.Decision, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	result := models.ResultPending
	if req.Result != "" {
		if !models.ValidResult(req.Result) {
			return nil, ErrInvalidResult
		}
		result = req.Result
	}

	confidence := defaultConfidence
	if req.Confidence != nil && validConfidence(*req.Confidence) {
		confidence = *req.Confidence
	}

	now := nowISO()
	decision := &models.Decision{
		ID:         uuid.New().String(),
		UserID:     userID,
		CategoryID: req.CategoryID,
		Title:      title,
		Notes:      strings.TrimSpace(req.Notes),
		Tags:       normalizeTags(req.Tags),
		Confidence: confidence,
		Result:     result,
		Meta:       req.Meta,
		CreatedAt:  now,
	}
	// resolvedAt is present exactly when the result is not pending.
	if result.Completed() {
		decision.ResolvedAt = now
	}

	if err := s.repo.Create(ctx, decision); err != nil {
		return nil, err
	}
	return decision, nil
}

func (s *decisionService) GetDecision(ctx context.Context, userID, id string) (*models.Decision, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *decisionService) ListDecisions(ctx context.Context, userID string) ([]models.Decision, error) {
	return s.repo.List(ctx, userID)
}

func (s *decisionService) ListPendingDecisions(ctx context.Context, userID string) ([]models.Decision, error) {
	return s.repo.ListPending(ctx, userID)
}

func (s *decisionService) UpdateDecision(ctx context.Context, userID, id string, req *models.UpdateDecisionRequest) (*models.Decision, error) {
	decision, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Result != nil {
		// Result entry mode: record (or revert) an outcome.
		if !models.ValidResult(*req.Result) {
			return nil, ErrInvalidResult
		}
		decision.Result = *req.Result
		if decision.Result.Completed() {
			decision.ResolvedAt = nowISO()
		} else {
			decision.ResolvedAt = ""
		}
		if req.Confidence != nil && validConfidence(*req.Confidence) {
			decision.Confidence = *req.Confidence
		}
		applyMeta(decision, req.Meta)

		if err := s.repo.Save(ctx, decision); err != nil {
			return nil, err
		}
		return decision, nil
	}

	// Detail edit mode: outcome untouched.
	if req.CategoryID != nil && *req.CategoryID != "" {
		decision.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title != "" {
			decision.Title = title
		}
	}
	if req.Notes.Set {
		if !req.Notes.Valid {
			decision.Notes = ""
		} else if notes := strings.TrimSpace(req.Notes.Value); notes != "" {
			decision.Notes = notes
		}
	}
	if req.Tags != nil {
		decision.Tags = normalizeTags(*req.Tags)
	}
	if req.Confidence != nil && validConfidence(*req.Confidence) {
		decision.Confidence = *req.Confidence
	}
	applyMeta(decision, req.Meta)

	if err := s.repo.Save(ctx, decision); err != nil {
		return nil, err
	}
	return decision, nil
}

func (s *decisionService) DeleteDecision(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// applyMeta applies the three-state meta patch: absent keeps the stored
// meta, null clears it, a value merges over it. After a merge the derived
// returnRate is recomputed when the invest price fields line up.
func applyMeta(decision *models.Decision, patch models.NullableMeta) {
	if !patch.Set {
		return
	}
	if !patch.Valid {
		decision.Meta = nil
		return
	}

	merged := make(models.DecisionMeta, len(decision.Meta)+len(patch.Value))
	for k, v := range decision.Meta {
		merged[k] = v
	}
	for k, v := range patch.Value {
		merged[k] = v
	}

	if rate, ok := calcReturnRate(merged["entryPrice"], merged["exitPrice"], merged["action"]); ok {
		merged["returnRate"] = rate
	}
	decision.Meta = merged
}

// calcReturnRate derives the invest return percentage (one decimal) from
// entry and exit prices. Sell positions profit when the price drops, so
// the sign flips. Non-numeric or non-positive entry prices yield nothing.
func calcReturnRate(entryPrice, exitPrice, action any) (float64, bool) {
	entry, ok := asFloat(entryPrice)
	if !ok || entry <= 0 {
		return 0, false
	}
	exit, ok := asFloat(exitPrice)
	if !ok {
		return 0, false
	}

	raw := (exit - entry) / entry
	if a, _ := action.(string); a == "sell" {
		raw = -raw
	}
	return analytics.Round1(raw * 100), true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return asFloat(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
