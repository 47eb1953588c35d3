package job

import (
	"connecthub/internal/domain"
	"connecthub/internal/pkg/jsonfield"
)

type CreateRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	ExperienceMin int      `json:"experienceMin"`
	ExperienceMax int      `json:"experienceMax"`
	SalaryMin     float64  `json:"salaryMin"`
	SalaryMax     float64  `json:"salaryMax"`
	SalaryPeriod  string   `json:"salaryPeriod" binding:"omitempty,oneof=MONTHLY YEARLY HOURLY"`
	Location      string   `json:"location"`
	Remote        bool     `json:"remote"`
	Skills        []string `json:"skills"`
	Deadline      *string  `json:"deadline"`
}

type UpdateRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Type          *string   `json:"type"`
	ExperienceMin *int      `json:"experienceMin"`
	ExperienceMax *int      `json:"experienceMax"`
	SalaryMin     *float64  `json:"salaryMin"`
	SalaryMax     *float64  `json:"salaryMax"`
	SalaryPeriod  *string   `json:"salaryPeriod" binding:"omitempty,oneof=MONTHLY YEARLY HOURLY"`
	Location      *string   `json:"location"`
	Remote        *bool     `json:"remote"`
	Skills        *[]string `json:"skills"`
	Status        *string   `json:"status" binding:"omitempty,oneof=ACTIVE PAUSED CLOSED DRAFT"`
}

// View carries the decoded skills list. Legacy rows hold either a JSON array
// or a CSV; unparseable data is reported, not dropped.
type View struct {
	domain.Job
	Skills       []string `json:"skills"`
	DataWarnings []string `json:"dataWarnings,omitempty"`
}

func NewView(j domain.Job) View {
	v := View{Job: j}
	skills := jsonfield.Decode(j.Skills)
	v.Skills = skills.Values
	if skills.Malformed {
		v.DataWarnings = append(v.DataWarnings, "skills field could not be parsed")
	}
	return v
}

func NewViews(jobs []domain.Job) []View {
	out := make([]View, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewView(j))
	}
	return out
}
