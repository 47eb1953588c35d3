package domain

import "time"

type JobStatus string

const (
	JobActive JobStatus = "ACTIVE"
	JobPaused JobStatus = "PAUSED"
	JobClosed JobStatus = "CLOSED"
	JobDraft  JobStatus = "DRAFT"
)

type SalaryPeriod string

const (
	SalaryMonthly SalaryPeriod = "MONTHLY"
	SalaryYearly  SalaryPeriod = "YEARLY"
	SalaryHourly  SalaryPeriod = "HOURLY"
)

type Job struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	CompanyID   int64  `json:"company_id" gorm:"index"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" gorm:"type:text"`
	Type        string `json:"type"`

	ExperienceMin int `json:"experience_min"`
	ExperienceMax int `json:"experience_max"`

	SalaryMin    float64      `json:"salary_min"`
	SalaryMax    float64      `json:"salary_max"`
	SalaryPeriod SalaryPeriod `json:"salary_period"`

	Location string `json:"location"`
	Remote   bool   `json:"remote"`
	// Historically stored as JSON array or CSV; decoded via pkg/jsonfield.
	Skills string `json:"-" gorm:"type:text"`

	Status   JobStatus  `json:"status"`
	Deadline *time.Time `json:"deadline,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company *User `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

func (Job) TableName() string { return "jobs" }

// SavedJob is a bookmark joining a user to a job posting.
type SavedJob struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_job"`
	JobID     int64     `json:"job_id" gorm:"not null;index;uniqueIndex:idx_user_job"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Job *Job `json:"job,omitempty" gorm:"foreignKey:JobID"`
}

func (SavedJob) TableName() string { return "saved_jobs" }
