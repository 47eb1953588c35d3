package repository

import (
	"context"
	"errors"

	"connecthub/internal/domain"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var j domain.Job
	if err := r.db.WithContext(ctx).Preload("Company").First(&j, id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepository) GetAll(ctx context.Context, companyID int64, status string) ([]domain.Job, error) {
	var jobs []domain.Job
	q := r.db.WithContext(ctx).Model(&domain.Job{})
	if companyID != 0 {
		q = q.Where("company_id = ?", companyID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Update(ctx context.Context, j *domain.Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

type SavedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) *SavedJobRepository {
	return &SavedJobRepository{db: db}
}

func (r *SavedJobRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.SavedJob, error) {
	var saved []domain.SavedJob
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Job").
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

// Save bookmarks a job; saving twice is a no-op.
func (r *SavedJobRepository) Save(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error) {
	var existing domain.SavedJob
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	saved := domain.SavedJob{UserID: userID, JobID: jobID}
	if err := r.db.WithContext(ctx).Create(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *SavedJobRepository) Delete(ctx context.Context, userID, jobID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&domain.SavedJob{})
	return res.RowsAffected, res.Error
}
