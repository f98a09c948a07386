package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/seongmin-h/decisionlog/backend/internal/models"
)

// decisionRow is the database shape of a decision. Tags and meta are
// stored as JSON columns; timestamps are native so the database can sort.
type decisionRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	UserID     string `gorm:"size:64;not null;index"`
	CategoryID string `gorm:"size:64;not null"`
	Title      string `gorm:"not null"`
	Notes      *string
	Tags       datatypes.JSON `gorm:"not null"`
	Confidence int
	Result     string `gorm:"size:16;not null;index"`
	Meta       datatypes.JSON
	CreatedAt  time.Time `gorm:"index"`
	ResolvedAt *time.Time
}

func (decisionRow) TableName() string { return "decisions" }

// OpenDatabase opens a gorm connection for the configured backend.
// Supported backends are "sqlite" and "postgres".
func OpenDatabase(backend, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch backend {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %q", backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	return db, nil
}

type gormDecisionRepository struct {
	db *gorm.DB
}

// NewGormDecisionRepository creates a database-backed decision repository
// and migrates its schema.
func NewGormDecisionRepository(db *gorm.DB) (DecisionRepository, error) {
	if err := db.AutoMigrate(&decisionRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate decisions schema: %w", err)
	}
	return &gormDecisionRepository{db: db}, nil
}

func parseISO(iso string) (time.Time, bool) {
	if iso == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toRow(d *models.Decision) (*decisionRow, error) {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	row := &decisionRow{
		ID:         d.ID,
		UserID:     d.UserID,
		CategoryID: d.CategoryID,
		Title:      d.Title,
		Tags:       tagsJSON,
		Confidence: d.Confidence,
		Result:     string(d.Result),
	}
	if d.Notes != "" {
		notes := d.Notes
		row.Notes = &notes
	}
	if d.Meta != nil {
		metaJSON, err := json.Marshal(d.Meta)
		if err != nil {
			return nil, fmt.Errorf("failed to encode meta: %w", err)
		}
		row.Meta = metaJSON
	}
	if t, ok := parseISO(d.CreatedAt); ok {
		row.CreatedAt = t.UTC()
	}
	if t, ok := parseISO(d.ResolvedAt); ok {
		resolved := t.UTC()
		row.ResolvedAt = &resolved
	}
	return row, nil
}

func toDecision(row *decisionRow) models.Decision {
	d := models.Decision{
		ID:         row.ID,
		UserID:     row.UserID,
		CategoryID: row.CategoryID,
		Title:      row.Title,
		Confidence: row.Confidence,
		Result:     models.DecisionResult(row.Result),
		Tags:       []string{},
		CreatedAt:  row.CreatedAt.UTC().Format(time.RFC3339),
	}
	if row.Notes != nil {
		d.Notes = *row.Notes
	}
	if len(row.Tags) > 0 {
		var tags []string
		if err := json.Unmarshal(row.Tags, &tags); err == nil && tags != nil {
			d.Tags = tags
		}
	}
	if len(row.Meta) > 0 {
		var meta models.DecisionMeta
		if err := json.Unmarshal(row.Meta, &meta); err == nil {
			d.Meta = meta
		}
	}
	if row.ResolvedAt != nil {
		d.ResolvedAt = row.ResolvedAt.UTC().Format(time.RFC3339)
	}
	return d
}

func (r *gormDecisionRepository) List(ctx context.Context, userID string) ([]models.Decision, error) {
	var rows []decisionRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}

	list := make([]models.Decision, 0, len(rows))
	for i := range rows {
		list = append(list, toDecision(&rows[i]))
	}
	return list, nil
}

func (r *gormDecisionRepository) ListPending(ctx context.Context, userID string) ([]models.Decision, error) {
	var rows []decisionRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND result = ?", userID, string(models.ResultPending)).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending decisions: %w", err)
	}

	list := make([]models.Decision, 0, len(rows))
	for i := range rows {
		list = append(list, toDecision(&rows[i]))
	}
	return list, nil
}

func (r *gormDecisionRepository) GetByID(ctx context.Context, userID, id string) (*models.Decision, error) {
	var row decisionRow
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load decision: %w", err)
	}

	d := toDecision(&row)
	return &d, nil
}

func (r *gormDecisionRepository) Create(ctx context.Context, decision *models.Decision) error {
	row, err := toRow(decision)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create decision: %w", err)
	}
	return nil
}

func (r *gormDecisionRepository) Save(ctx context.Context, decision *models.Decision) error {
	row, err := toRow(decision)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&decisionRow{}).
		Where("id = ? AND user_id = ?", row.ID, row.UserID).
		Select("category_id", "title", "notes", "tags", "confidence", "result", "meta", "resolved_at").
		Updates(row)
	if res.Error != nil {
		return fmt.Errorf("failed to update decision: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormDecisionRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&decisionRow{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete decision: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
