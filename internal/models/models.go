package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is a platform member. Admin screens only ever read or flag users,
// account creation happens on the member-facing side.
type User struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Role      string `gorm:"default:'USER'" json:"role"`
	Image     string `json:"image"`
	Phone     string `json:"phone"`

	IsVerifiedUser bool `gorm:"default:false" json:"is_verified_user"`
	IsBlocked      bool `gorm:"default:false" json:"is_blocked"`
	IsDeleted      bool `gorm:"default:false" json:"is_deleted"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Session is an externally-issued login session. The admin API only reads
// these to authorize requests, issuance lives in the auth provider.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Recruiter links a posting account to its company.
type Recruiter struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID    string        `gorm:"type:uuid;index" json:"user_id"`
	CompanyID string        `gorm:"type:uuid;index" json:"company_id"`
	Company   CompanyMaster `json:"company"`
}

func (r *Recruiter) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Job is a posting created by a recruiter. Listings in the admin dashboard
// always load the full display graph (title, recruiter and company, skills,
// education, departments), there is no partial projection.
type Job struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TitleID     string         `gorm:"type:uuid;index" json:"title_id"`
	Title       JobTitleMaster `json:"title"`
	RecruiterID string         `gorm:"type:uuid;index" json:"recruiter_id"`
	Recruiter   Recruiter      `json:"recruiter"`

	Location     string `json:"location"`
	LocationType string `json:"location_type"`
	Salary       int    `json:"salary"`
	Description  string `gorm:"type:text" json:"description"`
	Experience   string `json:"experience"`
	Openings     int    `json:"openings"`
	Applicants   int    `gorm:"default:0" json:"applicants"`

	EmploymentType     string `json:"employment_type"`
	CompanyDescription string `gorm:"type:text" json:"company_description"`
	IndustryType       string `json:"industry_type"`
	CompanyWebsite     string `json:"company_website"`

	Status    string         `gorm:"default:'ACTIVE'" json:"status"`
	TechStack pq.StringArray `gorm:"type:text[]" json:"tech_stack"`

	Skills      []SkillMaster        `gorm:"many2many:job_skills" json:"skills"`
	Education   []DegreeMaster       `gorm:"many2many:job_education" json:"education"`
	Departments []FieldOfStudyMaster `gorm:"many2many:job_departments" json:"departments"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// AppliedJob is one user's application to one job, tracked through the
// status vocabulary in the status package. AppliedAt is immutable,
// LastUpdatedAt moves exactly once per status change.
type AppliedJob struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	JobID  string `gorm:"type:uuid;not null;index" json:"job_id"`
	Job    Job    `json:"job"`
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User   `json:"user"`

	Status        string    `gorm:"default:'APPLIED'" json:"status"`
	AppliedAt     time.Time `gorm:"autoCreateTime" json:"applied_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

func (a *AppliedJob) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.LastUpdatedAt.IsZero() {
		a.LastUpdatedAt = time.Now()
	}
	return nil
}

// Post is community content, only present here so report moderation can
// soft-delete it.
type Post struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID    string `gorm:"type:uuid;index" json:"user_id"`
	Content   string `gorm:"type:text" json:"content"`
	IsDeleted bool   `gorm:"default:false" json:"is_deleted"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Report targets
const (
	ReportForJob  = "JOB"
	ReportForPost = "POST"
	ReportForUser = "USER"
	ReportForNone = "NONE"
)

// Report statuses
const (
	ReportStatusPending  = "PENDING"
	ReportStatusResolved = "RESOLVED"
)

// Report is a member complaint about a job, post or user. ContentSnapshot
// keeps a copy of the reported content at moderation time so the report
// detail screen still renders after the target is removed.
type Report struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User   `json:"user"`

	ReportFor   string `gorm:"not null" json:"report_for"`
	TargetID    string `gorm:"type:uuid" json:"target_id"`
	Category    string `json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"default:'PENDING'" json:"status"`

	ContentSnapshot datatypes.JSON `json:"content_snapshot,omitempty"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
