package domain

import "time"

type Review struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	ListingID int64  `json:"listing_id" gorm:"index"`
	OrderID   *int64 `json:"order_id,omitempty"`
	UserID    int64  `json:"user_id" gorm:"index"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" gorm:"type:text"`
	// JSON-encoded array of image URLs, decoded via pkg/jsonfield.
	Images   string `json:"-" gorm:"type:text"`
	Helpful  int    `json:"helpful"`
	Reported bool   `json:"reported"`
	Approved bool   `json:"approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Review) TableName() string { return "reviews" }
