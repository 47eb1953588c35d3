package domain

import "time"

type CategoryType string

const (
	CategoryService CategoryType = "SERVICE"
	CategoryProduct CategoryType = "PRODUCT"
)

type Category struct {
	ID          int64        `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" validate:"required"`
	Slug        string       `json:"slug" gorm:"uniqueIndex"`
	Description string       `json:"description,omitempty" gorm:"type:text"`
	Icon        string       `json:"icon,omitempty"`
	Image       string       `json:"image,omitempty"`
	Type        CategoryType `json:"type"`
	Featured    bool         `json:"featured"`
	Active      bool         `json:"active"`
	SortOrder   int          `json:"order" gorm:"column:sort_order"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Derived, not stored: number of listings attached to this category.
	ServiceCount int64 `json:"serviceCount" gorm:"-"`
}

func (Category) TableName() string { return "categories" }
