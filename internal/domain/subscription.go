package domain

import (
	"database/sql"
	"time"
)

type PlanID string

const (
	PlanFree         PlanID = "free"
	PlanStarter      PlanID = "starter"
	PlanProfessional PlanID = "professional"
	PlanEnterprise   PlanID = "enterprise"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionPending   SubscriptionStatus = "pending"
)

// Plan is a subscription tier available to vendors. Buyers are never
// assigned plans.
type Plan struct {
	ID          PlanID  `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	Description string  `gorm:"column:description" json:"description"`
	Price       float64 `gorm:"column:price" json:"price"`

	MaxListings    int `gorm:"column:max_listings" json:"max_listings"` // -1 = unlimited
	MaxImages      int `gorm:"column:max_images" json:"max_images"`
	MaxTeamMembers int `gorm:"column:max_team_members" json:"max_team_members"`

	AnalyticsAdvanced bool `gorm:"column:analytics_advanced" json:"analytics_advanced"`
	PrioritySearch    bool `gorm:"column:priority_search" json:"priority_search"`
	PrioritySupport   bool `gorm:"column:priority_support" json:"priority_support"`

	IsActive  bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Plan) TableName() string { return "subscription_plans" }

// Subscription tracks a vendor's active plan.
type Subscription struct {
	ID        string             `gorm:"column:id;primaryKey" json:"id"`
	VendorID  int64              `gorm:"column:vendor_id" json:"vendor_id"`
	PlanID    PlanID             `gorm:"column:plan_id" json:"plan"`
	Status    SubscriptionStatus `gorm:"column:status" json:"status"`
	StartDate time.Time          `gorm:"column:start_date" json:"startDate"`
	EndDate   sql.NullTime       `gorm:"column:end_date" json:"endDate,omitempty"`
	AutoRenew bool               `gorm:"column:auto_renew" json:"autoRenew"`
	CreatedAt time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time          `gorm:"column:updated_at" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

func (s *Subscription) IsExpired() bool {
	if !s.EndDate.Valid {
		return false
	}
	return time.Now().After(s.EndDate.Time)
}

func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionActive && !s.IsExpired()
}
