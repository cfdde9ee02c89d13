package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/setu-platform/setu-admin/internal/apperrors"
	"github.com/setu-platform/setu-admin/internal/models"
)

// ReportService drives the moderation queue: list, inspect, resolve, and if
// needed take down the reported content.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// ReportDetails pairs a report with whatever it points at. Content is nil
// when the target has already been removed.
type ReportDetails struct {
	Report  models.Report `json:"report"`
	Content any           `json:"content"`
}

func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	err := s.DB.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportService) getReport(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	err := s.DB.WithContext(ctx).Preload("User").First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Details loads the report plus the reported content for the detail screen.
func (s *ReportService) Details(ctx context.Context, id string) (*ReportDetails, error) {
	report, err := s.getReport(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := s.loadContent(ctx, report)
	if err != nil {
		return nil, err
	}
	return &ReportDetails{Report: *report, Content: content}, nil
}

func (s *ReportService) loadContent(ctx context.Context, report *models.Report) (any, error) {
	db := s.DB.WithContext(ctx)
	switch report.ReportFor {
	case models.ReportForJob:
		var job models.Job
		err := db.Preload("Title").First(&job, "id = ?", report.TargetID).Error
		return resolved(&job, err)
	case models.ReportForPost:
		var post models.Post
		err := db.First(&post, "id = ?", report.TargetID).Error
		return resolved(&post, err)
	case models.ReportForUser:
		var user models.User
		err := db.First(&user, "id = ?", report.TargetID).Error
		return resolved(&user, err)
	default:
		return nil, nil
	}
}

func resolved(content any, err error) (any, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}

// UpdateStatus moves a report between PENDING and RESOLVED.
func (s *ReportService) UpdateStatus(ctx context.Context, id, newStatus string) error {
	if newStatus != models.ReportStatusPending && newStatus != models.ReportStatusResolved {
		return apperrors.FieldError("status", fmt.Sprintf("%q is not a valid report status", newStatus))
	}
	res := s.DB.WithContext(ctx).Model(&models.Report{}).
		Where("id = ?", id).
		Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.Report{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RemoveContent takes down whatever the report targets: jobs are deleted,
// posts are soft-deleted, users are blocked. A snapshot of the content as it
// stood is stored on the report so the detail screen keeps working after.
func (s *ReportService) RemoveContent(ctx context.Context, id string) error {
	report, err := s.getReport(ctx, id)
	if err != nil {
		return err
	}

	content, err := s.loadContent(ctx, report)
	if err != nil {
		return err
	}
	if content == nil {
		return apperrors.ErrNotFound
	}

	db := s.DB.WithContext(ctx)
	switch report.ReportFor {
	case models.ReportForJob:
		if err := db.Delete(&models.Job{}, "id = ?", report.TargetID).Error; err != nil {
			return err
		}
	case models.ReportForPost:
		err := db.Model(&models.Post{}).
			Where("id = ?", report.TargetID).
			Update("is_deleted", true).Error
		if err != nil {
			return err
		}
	case models.ReportForUser:
		err := db.Model(&models.User{}).
			Where("id = ?", report.TargetID).
			Update("is_blocked", true).Error
		if err != nil {
			return err
		}
	default:
		return apperrors.FieldError("report_for", fmt.Sprintf("%q has no removable content", report.ReportFor))
	}

	snapshot, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return db.Model(report).Update("content_snapshot", snapshot).Error
}
