package repository

import (
	"context"
	"errors"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// ErrNotFound is returned when a decision does not exist or belongs to a
// different user. Callers must not be able to tell those cases apart.
var ErrNotFound = errors.New("decision not found")

// DecisionRepository defines the interface for decision data access.
// All reads are scoped to one user; identity and validation live above.
// Implementations persist decisions as given: the service layer owns
// normalization, ID assignment and the resolvedAt/result invariant.
type DecisionRepository interface {
	// List returns the user's decisions, newest created first.
	List(ctx context.Context, userID string) ([]models.Decision, error)
	// ListPending returns the user's unresolved decisions, newest first.
	ListPending(ctx context.Context, userID string) ([]models.Decision, error)
	// GetByID returns ErrNotFound when no matching decision exists.
	GetByID(ctx context.Context, userID, id string) (*models.Decision, error)
	Create(ctx context.Context, decision *models.Decision) error
	// Save replaces the stored decision with the same id and userId.
	Save(ctx context.Context, decision *models.Decision) error
	Delete(ctx context.Context, userID, id string) error
}
