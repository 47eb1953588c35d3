package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connecthub/internal/domain"
	"connecthub/internal/pkg/jsonfield"
	"connecthub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	jobs  *repository.JobRepository
	saved *repository.SavedJobRepository
}

func NewService(jobs *repository.JobRepository, saved *repository.SavedJobRepository) *Service {
	return &Service{jobs: jobs, saved: saved}
}

func (s *Service) Create(ctx context.Context, companyID int64, req CreateRequest) (*domain.Job, error) {
	if req.SalaryMin > req.SalaryMax && req.SalaryMax != 0 {
		return nil, ErrSalaryRange
	}

	j := &domain.Job{
		CompanyID:     companyID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		ExperienceMin: req.ExperienceMin,
		ExperienceMax: req.ExperienceMax,
		SalaryMin:     req.SalaryMin,
		SalaryMax:     req.SalaryMax,
		SalaryPeriod:  domain.SalaryPeriod(req.SalaryPeriod),
		Location:      req.Location,
		Remote:        req.Remote,
		Skills:        jsonfield.Encode(req.Skills),
		Status:        domain.JobActive,
	}

	if req.Deadline != nil && *req.Deadline != "" {
		at, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline: %w", err)
		}
		j.Deadline = &at
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

func (s *Service) List(ctx context.Context, companyID int64, status string) ([]domain.Job, error) {
	return s.jobs.GetAll(ctx, companyID, status)
}

// Update lets the posting company edit its job. Skills arrive as a list and
// are re-encoded; whatever malformed legacy value was stored is replaced.
func (s *Service) Update(ctx context.Context, id, callerID int64, callerRole domain.UserRole, req UpdateRequest) (*domain.Job, error) {
	j, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if callerRole != domain.RoleAdmin && j.CompanyID != callerID {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Type != nil {
		j.Type = *req.Type
	}
	if req.ExperienceMin != nil {
		j.ExperienceMin = *req.ExperienceMin
	}
	if req.ExperienceMax != nil {
		j.ExperienceMax = *req.ExperienceMax
	}
	if req.SalaryMin != nil {
		j.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		j.SalaryMax = *req.SalaryMax
	}
	if j.SalaryMax != 0 && j.SalaryMin > j.SalaryMax {
		return nil, ErrSalaryRange
	}
	if req.SalaryPeriod != nil {
		j.SalaryPeriod = domain.SalaryPeriod(*req.SalaryPeriod)
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.Remote != nil {
		j.Remote = *req.Remote
	}
	if req.Skills != nil {
		j.Skills = jsonfield.Encode(*req.Skills)
	}
	if req.Status != nil {
		j.Status = domain.JobStatus(*req.Status)
	}

	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// SaveJob bookmarks a job for the user; repeated saves are idempotent.
func (s *Service) SaveJob(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error) {
	if _, err := s.Get(ctx, jobID); err != nil {
		return nil, err
	}
	return s.saved.Save(ctx, userID, jobID)
}

func (s *Service) SavedJobs(ctx context.Context, userID int64) ([]domain.SavedJob, error) {
	return s.saved.GetByUserID(ctx, userID)
}

func (s *Service) UnsaveJob(ctx context.Context, userID, jobID int64) error {
	affected, err := s.saved.Delete(ctx, userID, jobID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotSaved
	}
	return nil
}
