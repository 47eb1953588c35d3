package message

import (
	"testing"

	"connecthub/internal/database"
	"connecthub/internal/domain"
	"connecthub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Message{}))
	return NewService(repository.NewMessageRepository(db))
}

func submit(t *testing.T, svc *Service, name, subject string, priority domain.MessagePriority) *domain.Message {
	t.Helper()
	m := &domain.Message{Name: name, Email: name + "@example.com", Subject: subject, Body: "body", Priority: priority}
	require.NoError(t, svc.Submit(t.Context(), m))
	return m
}

func TestSubmitDefaults(t *testing.T) {
	svc := setup(t)
	m := submit(t, svc, "alice", "broken tap", "")

	assert.Equal(t, domain.MessageUnread, m.Status)
	assert.Equal(t, domain.PriorityNormal, m.Priority)
}

func TestListFilters(t *testing.T) {
	svc := setup(t)
	ctx := t.Context()

	submit(t, svc, "alice", "broken tap", domain.PriorityHigh)
	submit(t, svc, "bob", "invoice question", domain.PriorityLow)

	got, err := svc.List(ctx, repository.MessageFilters{Search: "TAP"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Name)

	got, err = svc.List(ctx, repository.MessageFilters{Priority: "LOW"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].Name)

	// AND composition
	got, err = svc.List(ctx, repository.MessageFilters{Search: "alice", Priority: "LOW"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarkReadOnlyMovesUnread(t *testing.T) {
	svc := setup(t)
	ctx := t.Context()
	m := submit(t, svc, "alice", "broken tap", "")

	require.NoError(t, svc.MarkRead(ctx, m.ID))
	require.NoError(t, svc.Reply(ctx, m.ID, "We are on it"))

	// replied message stays REPLIED even if marked read again
	require.NoError(t, svc.MarkRead(ctx, m.ID))

	got, err := svc.get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MessageReplied, got.Status)
	assert.Equal(t, "We are on it", got.Reply)
	assert.NotNil(t, got.RepliedAt)
}

func TestReplyValidation(t *testing.T) {
	svc := setup(t)
	m := submit(t, svc, "alice", "broken tap", "")

	assert.ErrorIs(t, svc.Reply(t.Context(), m.ID, "   "), ErrEmptyReply)
	assert.ErrorIs(t, svc.Reply(t.Context(), 999, "hi"), ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := setup(t)
	m := submit(t, svc, "alice", "broken tap", "")

	require.NoError(t, svc.Delete(t.Context(), m.ID))
	assert.ErrorIs(t, svc.Delete(t.Context(), m.ID), ErrNotFound)
}
