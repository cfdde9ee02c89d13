package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterFields is the writable field set shared by the master-data entities.
// Every entity applies the subset it actually stores and ignores the rest.
type MasterFields struct {
	Name     string
	Location string
	Country  string
	Website  string
	Logo     string
	Industry string
}

// MasterBase carries the columns common to every master-data table.
// Name uniqueness is deliberately not enforced, duplicates are allowed.
type MasterBase struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *MasterBase) GetID() string   { return b.ID }
func (b *MasterBase) GetName() string { return b.Name }

func (b *MasterBase) Apply(f MasterFields) {
	b.Name = f.Name
}

func (b *MasterBase) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// MasterPtr constrains a type parameter to a pointer to one of the
// master-data entity structs. It is what lets a single CRUD service cover
// all seven tables without per-entity boilerplate.
type MasterPtr[T any] interface {
	*T
	Apply(MasterFields)
	GetID() string
	GetName() string
}

type CertificationMaster struct {
	MasterBase
}

type DegreeMaster struct {
	MasterBase
}

type SkillMaster struct {
	MasterBase
}

type JobTitleMaster struct {
	MasterBase
}

type FieldOfStudyMaster struct {
	MasterBase
}

type UniversityMaster struct {
	MasterBase
	Location string `json:"location"`
	Country  string `json:"country"`
	Website  string `json:"website"`
}

func (u *UniversityMaster) Apply(f MasterFields) {
	u.MasterBase.Apply(f)
	u.Location = f.Location
	u.Country = f.Country
	u.Website = f.Website
}

type CompanyMaster struct {
	MasterBase
	Logo     string `json:"logo"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Location string `json:"location"`
}

func (c *CompanyMaster) Apply(f MasterFields) {
	c.MasterBase.Apply(f)
	c.Logo = f.Logo
	c.Industry = f.Industry
	c.Website = f.Website
	c.Location = f.Location
}
