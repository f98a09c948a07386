package service

import (
	"context"
	"time"

	"github.com/seongmin-h/decisionlog/backend/internal/analytics"
	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// DecisionService defines the interface for decision journal business logic.
type DecisionService interface {
	CreateDecision(ctx context.Context, userID string, req *models.CreateDecisionRequest) (*models.Decision, error)
	GetDecision(ctx context.Context, userID, id string) (*models.Decision, error)
	ListDecisions(ctx context.Context, userID string) ([]models.Decision, error)
	ListPendingDecisions(ctx context.Context, userID string) ([]models.Decision, error)
	UpdateDecision(ctx context.Context, userID, id string, req *models.UpdateDecisionRequest) (*models.Decision, error)
	DeleteDecision(ctx context.Context, userID, id string) error
}

// AnalyticsService defines the interface for retrospective analytics.
// Each call fetches the user's full decision list and recomputes the
// report from scratch; results are never cached.
type AnalyticsService interface {
	Overview(ctx context.Context, userID string) (*models.AnalysisOverviewResponse, error)
	Summary(ctx context.Context, userID string, params analytics.SummaryParams) (*models.AnalysisSummaryResponse, error)
	WeeklyReport(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklyReportResponse, error)
	WeeklyTrend(ctx context.Context, userID string, weeks int, categoryID string) (*models.WeeklyTrendResponse, error)
}
