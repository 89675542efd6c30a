package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DefaultHistoryLimit caps chat history and report listings.
const DefaultHistoryLimit = 50

// SaveGeneratedContent records a content generation. ID and CreatedAt are assigned here.
func (db *DB) SaveGeneratedContent(ctx context.Context, c *GeneratedContent) error {
	c.ID = uuid.New()
	c.CreatedAt = now()
	_, err := db.exec(ctx,
		`INSERT INTO generated_content (id, project_id, user_id, content_type, content_text, tone, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ProjectID, c.UserID, c.ContentType, c.ContentText, c.Tone, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save generated content: %w", err)
	}
	return nil
}

// ListGeneratedContent returns the user's most recent generations, newest first
func (db *DB) ListGeneratedContent(ctx context.Context, userID uuid.UUID, limit int) ([]GeneratedContent, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rs, err := db.query(ctx,
		`SELECT id, project_id, user_id, content_type, content_text, tone, created_at
		 FROM generated_content WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated content: %w", err)
	}
	defer rs.Close()

	items := []GeneratedContent{}
	for rs.Next() {
		var c GeneratedContent
		if err := rs.Scan(&c.ID, &c.ProjectID, &c.UserID, &c.ContentType, &c.ContentText, &c.Tone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generated content: %w", err)
		}
		items = append(items, c)
	}
	return items, rs.Err()
}

// SaveSentimentReport records a sentiment analysis. ID and CreatedAt are assigned here.
func (db *DB) SaveSentimentReport(ctx context.Context, r *SentimentReport) error {
	r.ID = uuid.New()
	r.CreatedAt = now()
	_, err := db.exec(ctx,
		`INSERT INTO sentiment_reports (id, project_id, user_id, input_text, positive_pct, neutral_pct,
		     negative_pct, brand_perception_score, suggestions, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ProjectID, r.UserID, r.InputText, r.PositivePct, r.NeutralPct,
		r.NegativePct, r.BrandPerceptionScore, r.Suggestions, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sentiment report: %w", err)
	}
	return nil
}

// ListSentimentReports returns the user's reports, newest first, optionally narrowed to
// one project.
func (db *DB) ListSentimentReports(ctx context.Context, userID uuid.UUID, projectID uuid.NullUUID) ([]SentimentReport, error) {
	query := `SELECT id, project_id, user_id, input_text, positive_pct, neutral_pct, negative_pct,
		     brand_perception_score, suggestions, created_at
		FROM sentiment_reports WHERE user_id = ?`
	args := []any{userID}
	if projectID.Valid {
		query += ` AND project_id = ?`
		args = append(args, projectID.UUID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, DefaultHistoryLimit)

	rs, err := db.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sentiment reports: %w", err)
	}
	defer rs.Close()

	reports := []SentimentReport{}
	for rs.Next() {
		var r SentimentReport
		if err := rs.Scan(&r.ID, &r.ProjectID, &r.UserID, &r.InputText, &r.PositivePct, &r.NeutralPct,
			&r.NegativePct, &r.BrandPerceptionScore, &r.Suggestions, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rs.Err()
}

// SaveChatMessage records a consultant exchange. ID and CreatedAt are assigned here.
func (db *DB) SaveChatMessage(ctx context.Context, m *ChatMessage) error {
	m.ID = uuid.New()
	m.CreatedAt = now()
	_, err := db.exec(ctx,
		`INSERT INTO chat_history (id, user_id, message, response, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.Message, m.Response, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// ListChatHistory returns the user's most recent exchanges, newest first
func (db *DB) ListChatHistory(ctx context.Context, userID uuid.UUID, limit int) ([]ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rs, err := db.query(ctx,
		`SELECT id, user_id, message, response, created_at
		 FROM chat_history WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}
	defer rs.Close()

	messages := []ChatMessage{}
	for rs.Next() {
		var m ChatMessage
		if err := rs.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rs.Err()
}
