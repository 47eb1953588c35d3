package message

import (
	"context"
	"errors"
	"strings"

	"connecthub/internal/domain"
	"connecthub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("message not found")
	ErrEmptyReply = errors.New("reply must not be empty")
)

type Service struct {
	messages *repository.MessageRepository
}

func NewService(messages *repository.MessageRepository) *Service {
	return &Service{messages: messages}
}

// Submit records a contact-form message with NORMAL priority unless the
// caller flags otherwise.
func (s *Service) Submit(ctx context.Context, m *domain.Message) error {
	if m.Priority == "" {
		m.Priority = domain.PriorityNormal
	}
	m.Status = domain.MessageUnread
	return s.messages.Create(ctx, m)
}

func (s *Service) List(ctx context.Context, f repository.MessageFilters) ([]domain.Message, error) {
	return s.messages.GetAll(ctx, f)
}

// MarkRead only moves UNREAD messages; replied messages keep their status.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	return s.messages.MarkRead(ctx, id)
}

func (s *Service) Reply(ctx context.Context, id int64, reply string) error {
	if strings.TrimSpace(reply) == "" {
		return ErrEmptyReply
	}
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	return s.messages.SaveReply(ctx, id, reply)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	return s.messages.Delete(ctx, id)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Message, error) {
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
