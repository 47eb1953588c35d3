package domain

import "time"

type MessagePriority string

const (
	PriorityLow    MessagePriority = "LOW"
	PriorityNormal MessagePriority = "NORMAL"
	PriorityHigh   MessagePriority = "HIGH"
)

type MessageStatus string

const (
	MessageUnread  MessageStatus = "UNREAD"
	MessageRead    MessageStatus = "READ"
	MessageReplied MessageStatus = "REPLIED"
)

// Message is a contact/support message surfaced in the admin console.
type Message struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Subject   string          `json:"subject"`
	Body      string          `json:"body" gorm:"type:text"`
	Priority  MessagePriority `json:"priority"`
	Status    MessageStatus   `json:"status"`
	Reply     string          `json:"reply,omitempty" gorm:"type:text"`
	RepliedAt *time.Time      `json:"replied_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Message) TableName() string { return "messages" }
