package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedContent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := createTestUser(t, db, "writer")

	c := &GeneratedContent{UserID: u.ID, ContentType: "social_post", ContentText: "🚀 Introducing Acme", Tone: "bold"}
	require.NoError(t, db.SaveGeneratedContent(ctx, c))
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	items, err := db.ListGeneratedContent(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].ProjectID.Valid)
	assert.Equal(t, "🚀 Introducing Acme", items[0].ContentText)
	assert.Equal(t, "bold", items[0].Tone)
}

func TestSentimentReports(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := createTestUser(t, db, "analyst")
	other := createTestUser(t, db, "other")
	p, err := db.CreateProject(ctx, u.ID, "Acme", "", 70)
	require.NoError(t, err)

	withProject := &SentimentReport{
		ProjectID:            uuid.NullUUID{UUID: p.ID, Valid: true},
		UserID:               u.ID,
		InputText:            "great product",
		PositivePct:          70.2,
		NeutralPct:           19.8,
		NegativePct:          10,
		BrandPerceptionScore: 8,
		Suggestions:          "a; b; c",
	}
	require.NoError(t, db.SaveSentimentReport(ctx, withProject))
	require.NoError(t, db.SaveSentimentReport(ctx, &SentimentReport{UserID: u.ID, InputText: "meh"}))
	require.NoError(t, db.SaveSentimentReport(ctx, &SentimentReport{UserID: other.ID, InputText: "not mine"}))

	all, err := db.ListSentimentReports(ctx, u.ID, uuid.NullUUID{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := db.ListSentimentReports(ctx, u.ID, uuid.NullUUID{UUID: p.ID, Valid: true})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "great product", scoped[0].InputText)
	assert.Equal(t, "a; b; c", scoped[0].Suggestions)
	assert.InDelta(t, 70.2, scoped[0].PositivePct, 1e-9)
	assert.Equal(t, p.ID, scoped[0].ProjectID.UUID)
}

func TestChatHistory_NewestFirstAndLimited(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := createTestUser(t, db, "chatter")

	for i := 0; i < DefaultHistoryLimit+5; i++ {
		require.NoError(t, db.SaveChatMessage(ctx, &ChatMessage{
			UserID:   u.ID,
			Message:  fmt.Sprintf("message %d", i),
			Response: "reply",
		}))
	}

	history, err := db.ListChatHistory(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, DefaultHistoryLimit)
	assert.Equal(t, fmt.Sprintf("message %d", DefaultHistoryLimit+4), history[0].Message)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].CreatedAt.After(history[i-1].CreatedAt))
	}

	short, err := db.ListChatHistory(ctx, u.ID, 3)
	require.NoError(t, err)
	assert.Len(t, short, 3)
}

func TestAdminLogsAndCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	admin, err := db.CreateUser(ctx, "root", "root@example.com", "h", RoleAdmin)
	require.NoError(t, err)

	_, err = db.AddAdminLog(ctx, ActionUserRegistered, "User root registered", uuid.NullUUID{})
	require.NoError(t, err)
	_, err = db.AddAdminLog(ctx, ActionUserToggled, "User x active=false", uuid.NullUUID{UUID: admin.ID, Valid: true})
	require.NoError(t, err)

	logs, err := db.ListAdminLogs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, ActionUserToggled, logs[0].Action)
	assert.Equal(t, admin.ID, logs[0].AdminID.UUID)
	assert.False(t, logs[1].AdminID.Valid)

	n, err := db.Count(ctx, TableAdminLogs)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	n, err = db.Count(ctx, TableUsers)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
