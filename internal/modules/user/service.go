package user

import (
	"context"
	"errors"

	"connecthub/internal/domain"
	"connecthub/internal/modules/auth"
	"connecthub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidPhone = errors.New("invalid phone number")
)

// Publisher decouples the service from the event hub.
type Publisher interface {
	Publish(eventType string, payload any)
}

type Service struct {
	users  *repository.UserRepository
	events Publisher
}

func NewService(users *repository.UserRepository, events Publisher) *Service {
	return &Service{users: users, events: events}
}

func (s *Service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
}

// UpdateProfile edits the fields a user controls. Clients cache the
// "current user" blob locally, so every successful write publishes
// profileUpdated to invalidate those caches.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		if !auth.ValidPhone(*req.Phone) {
			return nil, ErrInvalidPhone
		}
		u.Phone = auth.NormalizePhone(*req.Phone)
	}
	if req.AvatarURL != nil {
		u.AvatarURL = *req.AvatarURL
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("profileUpdated", map[string]any{"userId": u.ID})
	}

	u.PasswordHash = ""
	return u, nil
}
