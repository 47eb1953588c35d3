package repository

import (
	"context"
	"strings"
	"time"

	"connecthub/internal/domain"

	"gorm.io/gorm"
)

type MessageFilters struct {
	Search   string
	Status   string
	Priority string
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	var m domain.Message
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) GetAll(ctx context.Context, f MessageFilters) ([]domain.Message, error) {
	var msgs []domain.Message

	q := r.db.WithContext(ctx).Model(&domain.Message{})
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ?", like, like, like)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	err := q.Order("created_at DESC").Find(&msgs).Error
	return msgs, err
}

func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("id = ? AND status = ?", id, domain.MessageUnread).
		Update("status", domain.MessageRead).Error
}

func (r *MessageRepository) SaveReply(ctx context.Context, id int64, reply string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reply":      reply,
			"status":     domain.MessageReplied,
			"replied_at": now,
		}).Error
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Message{}, id).Error
}
