package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/setu-platform/setu-admin/internal/apperrors"
	"github.com/setu-platform/setu-admin/internal/dtos"
	"github.com/setu-platform/setu-admin/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// jobScope attaches the full display graph. Every job read in the dashboard
// is a wide read, there is no partial-projection variant.
func jobScope(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Title").
		Preload("Recruiter").
		Preload("Recruiter.Company").
		Preload("Skills").
		Preload("Education").
		Preload("Departments")
}

// GetAllJobs returns every posting with its display graph, newest first.
func (s *JobService) GetAllJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := jobScope(s.DB.WithContext(ctx)).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := jobScope(s.DB.WithContext(ctx)).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob inserts a posting on behalf of a recruiter. Master-data
// references (skills, education, departments) are resolved to existing
// records, unknown ids are silently dropped rather than invented.
func (s *JobService) CreateJob(ctx context.Context, req *dtos.CreateJobRequest) (*models.Job, error) {
	db := s.DB.WithContext(ctx)

	var recruiter models.Recruiter
	err := db.First(&recruiter, "id = ?", req.RecruiterID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("recruiter %s: %w", req.RecruiterID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var title models.JobTitleMaster
	err = db.First(&title, "id = ?", req.TitleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("job title %s: %w", req.TitleID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		TitleID:            title.ID,
		RecruiterID:        recruiter.ID,
		Location:           req.Location,
		LocationType:       req.LocationType,
		Salary:             req.Salary,
		Description:        req.Description,
		Experience:         req.Experience,
		Openings:           req.Openings,
		EmploymentType:     req.EmploymentType,
		CompanyDescription: req.CompanyDescription,
		IndustryType:       req.IndustryType,
		CompanyWebsite:     req.CompanyWebsite,
		TechStack:          req.TechStack,
		Status:             "ACTIVE",
	}

	if job.Skills, err = fetchByIDs[models.SkillMaster](db, req.Skills); err != nil {
		return nil, err
	}
	if job.Education, err = fetchByIDs[models.DegreeMaster](db, req.Education); err != nil {
		return nil, err
	}
	if job.Departments, err = fetchByIDs[models.FieldOfStudyMaster](db, req.Departments); err != nil {
		return nil, err
	}

	if err := db.Create(job).Error; err != nil {
		return nil, err
	}
	return s.GetJob(ctx, job.ID)
}

// UpdateJob applies the provided fields to an existing posting. Nil fields
// in the request are left untouched; association lists, when present,
// replace the job's current set.
func (s *JobService) UpdateJob(ctx context.Context, id string, req *dtos.UpdateJobRequest) (*models.Job, error) {
	db := s.DB.WithContext(ctx)

	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	setString(updates, "location", req.Location)
	setString(updates, "location_type", req.LocationType)
	setString(updates, "description", req.Description)
	setString(updates, "experience", req.Experience)
	setString(updates, "employment_type", req.EmploymentType)
	setString(updates, "company_description", req.CompanyDescription)
	setString(updates, "industry_type", req.IndustryType)
	setString(updates, "company_website", req.CompanyWebsite)
	setString(updates, "status", req.Status)
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Openings != nil {
		updates["openings"] = *req.Openings
	}
	if req.TechStack != nil {
		updates["tech_stack"] = req.TechStack
	}
	if len(updates) > 0 {
		if err := db.Model(&job).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if req.Skills != nil {
		skills, err := fetchByIDs[models.SkillMaster](db, req.Skills)
		if err != nil {
			return nil, err
		}
		if err := db.Model(&job).Association("Skills").Replace(skills); err != nil {
			return nil, err
		}
	}
	if req.Education != nil {
		education, err := fetchByIDs[models.DegreeMaster](db, req.Education)
		if err != nil {
			return nil, err
		}
		if err := db.Model(&job).Association("Education").Replace(education); err != nil {
			return nil, err
		}
	}
	if req.Departments != nil {
		departments, err := fetchByIDs[models.FieldOfStudyMaster](db, req.Departments)
		if err != nil {
			return nil, err
		}
		if err := db.Model(&job).Association("Departments").Replace(departments); err != nil {
			return nil, err
		}
	}

	return s.GetJob(ctx, id)
}

func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func fetchByIDs[T any](db *gorm.DB, ids []string) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []T
	if err := db.Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func setString(updates map[string]any, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}
