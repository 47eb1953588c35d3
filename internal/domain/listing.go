package domain

import "time"

// Listing is a vendor service or product offering. Both kinds share one
// backing table; Kind mirrors the order type discriminator.
type Listing struct {
	ID          int64        `json:"id" gorm:"primaryKey"`
	VendorID    int64        `json:"vendor_id" gorm:"index"`
	CategoryID  int64        `json:"category_id" gorm:"index"`
	Kind        CategoryType `json:"kind"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" gorm:"type:text"`
	Price       float64      `json:"price" validate:"gte=0"`

	// JSON-encoded arrays, decoded via pkg/jsonfield.
	Images string `json:"-" gorm:"type:text"`
	Tags   string `json:"-" gorm:"type:text"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vendor   *User     `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Listing) TableName() string { return "listings" }
