package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/setu-platform/setu-admin/internal/apperrors"
	"github.com/setu-platform/setu-admin/internal/models"
	"github.com/setu-platform/setu-admin/internal/status"
)

// ApplicationService owns the applicant-status lifecycle.
type ApplicationService struct {
	DB *gorm.DB

	// Policy decides whether transitions are checked against the pipeline
	// order. The default (unguarded) matches the current product behavior,
	// strict mode is behind a config flag until the product decides.
	Policy status.Policy
}

func NewApplicationService(db *gorm.DB, policy status.Policy) *ApplicationService {
	return &ApplicationService{DB: db, Policy: policy}
}

// ListForJob returns the applied candidates for one posting with the
// applicant loaded for display.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID string) ([]models.AppliedJob, error) {
	var apps []models.AppliedJob
	err := s.DB.WithContext(ctx).
		Preload("User").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// SetStatus moves an application to a new status and bumps LastUpdatedAt.
// AppliedAt never changes. The previous status is only consulted when the
// policy is strict.
func (s *ApplicationService) SetStatus(ctx context.Context, id string, next status.Status) (*models.AppliedJob, error) {
	if !next.Valid() {
		return nil, apperrors.FieldError("status", fmt.Sprintf("%q is not a valid application status", next))
	}

	var app models.AppliedJob
	err := s.DB.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.Policy.Allows(status.Status(app.Status), next) {
		return nil, apperrors.FieldError("status",
			fmt.Sprintf("cannot move application from %s to %s", app.Status, next))
	}

	app.Status = string(next)
	app.LastUpdatedAt = time.Now()
	err = s.DB.WithContext(ctx).Model(&app).
		Select("status", "last_updated_at").
		Updates(map[string]any{
			"status":          app.Status,
			"last_updated_at": app.LastUpdatedAt,
		}).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}
