package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/setu-platform/setu-admin/internal/models"
	"github.com/setu-platform/setu-admin/internal/status"
)

// DashboardStats feeds the landing-page cards.
type DashboardStats struct {
	TotalUsers    int64 `json:"total_users"`
	VerifiedUsers int64 `json:"verified_users"`
	BlockedUsers  int64 `json:"blocked_users"`

	TotalJobs  int64 `json:"total_jobs"`
	ActiveJobs int64 `json:"active_jobs"`

	TotalApplications    int64            `json:"total_applications"`
	ApplicationsByStatus map[string]int64 `json:"applications_by_status"`

	PendingReports int64 `json:"pending_reports"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	db := s.DB.WithContext(ctx)
	stats := &DashboardStats{ApplicationsByStatus: make(map[string]int64)}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, db.Model(&models.User{})},
		{&stats.VerifiedUsers, db.Model(&models.User{}).Where("is_verified_user = ?", true)},
		{&stats.BlockedUsers, db.Model(&models.User{}).Where("is_blocked = ?", true)},
		{&stats.TotalJobs, db.Model(&models.Job{})},
		{&stats.ActiveJobs, db.Model(&models.Job{}).Where("status = ?", "ACTIVE")},
		{&stats.TotalApplications, db.Model(&models.AppliedJob{})},
		{&stats.PendingReports, db.Model(&models.Report{}).Where("status = ?", models.ReportStatusPending)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	for _, st := range status.All {
		var n int64
		err := db.Model(&models.AppliedJob{}).
			Where("status = ?", string(st)).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		stats.ApplicationsByStatus[string(st)] = n
	}
	return stats, nil
}
