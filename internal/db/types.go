package db

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Admin log actions
const (
	ActionUserRegistered = "user_registered"
	ActionUserToggled    = "user_toggled"
	ActionUserDeleted    = "user_deleted"
	ActionAdminCreated   = "admin_created"
)

// Table names accepted by Count
const (
	TableUsers            = "users"
	TableProjects         = "projects"
	TableBrandAssets      = "brand_assets"
	TableGeneratedContent = "generated_content"
	TableSentimentReports = "sentiment_reports"
	TableChatHistory      = "chat_history"
	TableAdminLogs        = "admin_logs"
)

// User represents an account
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Project is a user's branding workspace
type Project struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	BrandStrengthScore float64   `json:"brand_strength_score"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BrandAsset is one saved item of a project's brand kit (logo, color, name, tagline, ...)
type BrandAsset struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	AssetType  string    `json:"asset_type"`
	AssetValue string    `json:"asset_value"`
	CreatedAt  time.Time `json:"created_at"`
}

// GeneratedContent records one content generation
type GeneratedContent struct {
	ID          uuid.UUID     `json:"id"`
	ProjectID   uuid.NullUUID `json:"project_id"`
	UserID      uuid.UUID     `json:"user_id"`
	ContentType string        `json:"content_type"`
	ContentText string        `json:"content_text"`
	Tone        string        `json:"tone"`
	CreatedAt   time.Time     `json:"created_at"`
}

// SentimentReport records one sentiment analysis. Suggestions are joined with "; ".
type SentimentReport struct {
	ID                   uuid.UUID     `json:"id"`
	ProjectID            uuid.NullUUID `json:"project_id"`
	UserID               uuid.UUID     `json:"user_id"`
	InputText            string        `json:"input_text"`
	PositivePct          float64       `json:"positive_pct"`
	NeutralPct           float64       `json:"neutral_pct"`
	NegativePct          float64       `json:"negative_pct"`
	BrandPerceptionScore float64       `json:"brand_perception_score"`
	Suggestions          string        `json:"suggestions"`
	CreatedAt            time.Time     `json:"created_at"`
}

// ChatMessage is one consultant exchange
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminLog is an audit entry. AdminID is null for self-service actions such as registration.
type AdminLog struct {
	ID        uuid.UUID     `json:"id"`
	Action    string        `json:"action"`
	Details   string        `json:"details"`
	AdminID   uuid.NullUUID `json:"admin_id"`
	CreatedAt time.Time     `json:"created_at"`
}

// now returns the current UTC time at the precision PostgreSQL stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
