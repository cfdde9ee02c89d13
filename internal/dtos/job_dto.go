package dtos

import "github.com/lib/pq"

type CreateJobRequest struct {
	TitleID     string `json:"title_id" binding:"required"`
	RecruiterID string `json:"recruiter_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`

	// Optional fields
	LocationType       string         `json:"location_type"`
	Salary             int            `json:"salary"`
	Experience         string         `json:"experience"`
	Openings           int            `json:"openings"`
	EmploymentType     string         `json:"employment_type"`
	CompanyDescription string         `json:"company_description"`
	IndustryType       string         `json:"industry_type"`
	CompanyWebsite     string         `json:"company_website"`
	TechStack          pq.StringArray `json:"tech_stack"`
	Skills             []string       `json:"skills"`
	Education          []string       `json:"education"`
	Departments        []string       `json:"departments"`
}

// UpdateJobRequest uses pointers so absent fields stay untouched. Nil and
// empty association lists mean different things: nil keeps the current set,
// empty clears it.
type UpdateJobRequest struct {
	Location           *string        `json:"location"`
	LocationType       *string        `json:"location_type"`
	Salary             *int           `json:"salary"`
	Description        *string        `json:"description"`
	Experience         *string        `json:"experience"`
	Openings           *int           `json:"openings"`
	EmploymentType     *string        `json:"employment_type"`
	CompanyDescription *string        `json:"company_description"`
	IndustryType       *string        `json:"industry_type"`
	CompanyWebsite     *string        `json:"company_website"`
	Status             *string        `json:"status"`
	TechStack          pq.StringArray `json:"tech_stack"`
	Skills             []string       `json:"skills"`
	Education          []string       `json:"education"`
	Departments        []string       `json:"departments"`
}
