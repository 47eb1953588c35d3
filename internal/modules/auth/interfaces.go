package auth

import (
	"context"

	"connecthub/internal/domain"

	"gorm.io/gorm"
)

// UserReader covers the lookups the auth service performs.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	DB() *gorm.DB
}

// CodeSender delivers an OTP over the chosen channel. The dev implementation
// just logs it.
type CodeSender interface {
	SendCode(ctx context.Context, method, destination, code string) error
}
