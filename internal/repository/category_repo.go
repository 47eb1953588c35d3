package repository

import (
	"context"

	"connecthub/internal/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, cat *domain.Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var cat domain.Category
	if err := r.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var cat domain.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetAll returns categories, optionally restricted by type and including
// inactive rows, with the derived listing count attached.
func (r *CategoryRepository) GetAll(ctx context.Context, catType string, includeInactive bool) ([]domain.Category, error) {
	var cats []domain.Category

	q := r.db.WithContext(ctx).Model(&domain.Category{})
	if catType != "" {
		q = q.Where("type = ?", catType)
	}
	if !includeInactive {
		q = q.Where("active = ?", true)
	}

	if err := q.Order("sort_order ASC, name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}

	for i := range cats {
		var count int64
		r.db.WithContext(ctx).Model(&domain.Listing{}).
			Where("category_id = ?", cats[i].ID).
			Count(&count)
		cats[i].ServiceCount = count
	}

	return cats, nil
}

func (r *CategoryRepository) Update(ctx context.Context, cat *domain.Category) error {
	return r.db.WithContext(ctx).Save(cat).Error
}

func (r *CategoryRepository) SetFlag(ctx context.Context, id int64, column string, value bool) error {
	return r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("id = ?", id).
		Update(column, value).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Category{}, id).Error
}

func (r *CategoryRepository) CountListings(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Listing{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
