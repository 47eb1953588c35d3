package domain

import "time"

type UserRole string

const (
	RoleBuyer     UserRole = "BUYER"
	RoleVendor    UserRole = "VENDOR"
	RoleSeller    UserRole = "SELLER"
	RoleCompany   UserRole = "COMPANY"
	RoleEmployer  UserRole = "EMPLOYER"
	RoleJobSeeker UserRole = "JOB_SEEKER"
	RoleUser      UserRole = "USER"
	RoleAdmin     UserRole = "ADMIN"
)

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserInactive  UserStatus = "INACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
	UserPending   UserStatus = "PENDING"
)

type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Role-specific counters, populated only where they apply
	// (buyers: orders/spent, vendors: listings/earnings, companies: jobs/hires).
	OrderCount   int     `json:"order_count,omitempty"`
	TotalSpent   float64 `json:"total_spent,omitempty"`
	ListingCount int     `json:"listing_count,omitempty"`
	TotalEarned  float64 `json:"total_earned,omitempty"`
	JobCount     int     `json:"job_count,omitempty"`
	HireCount    int     `json:"hire_count,omitempty"`
}

func (User) TableName() string { return "users" }
