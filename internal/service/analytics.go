package service

import (
	"context"
	"fmt"
	"time"

	"github.com/seongmin-h/decisionlog/backend/internal/analytics"
	"github.com/seongmin-h/decisionlog/backend/internal/models"
	"github.com/seongmin-h/decisionlog/backend/internal/repository"
)

type analyticsService struct {
	repo repository.DecisionRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo repository.DecisionRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) Overview(ctx context.Context, userID string) (*models.AnalysisOverviewResponse, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load decisions: %w", err)
	}

	overview := analytics.Overview(list)
	return &overview, nil
}

func (s *analyticsService) Summary(ctx context.Context, userID string, params analytics.SummaryParams) (*models.AnalysisSummaryResponse, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load decisions: %w", err)
	}

	if params.Now.IsZero() {
		params.Now = time.Now().UTC()
	}
	summary := analytics.Summarize(list, params)
	return &summary, nil
}

func (s *analyticsService) WeeklyReport(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklyReportResponse, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load decisions: %w", err)
	}

	report := analytics.WeeklyReport(list, weekStart)
	return &report, nil
}

func (s *analyticsService) WeeklyTrend(ctx context.Context, userID string, weeks int, categoryID string) (*models.WeeklyTrendResponse, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load decisions: %w", err)
	}

	trend := analytics.WeeklyTrend(list, weeks, categoryID, time.Now().UTC())
	return &trend, nil
}
