package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/setu-platform/setu-admin/internal/models"
)

// Connect opens the Postgres connection. The handle is returned rather than
// stored in a package variable so every service takes its store explicitly.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates every table the admin API touches.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.CertificationMaster{},
		&models.DegreeMaster{},
		&models.SkillMaster{},
		&models.JobTitleMaster{},
		&models.FieldOfStudyMaster{},
		&models.UniversityMaster{},
		&models.CompanyMaster{},
		&models.Recruiter{},
		&models.Job{},
		&models.AppliedJob{},
		&models.Post{},
		&models.Report{},
	)
}
