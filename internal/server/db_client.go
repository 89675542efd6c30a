package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/brandcraft/internal/db"
)

// DBClient is the persistence surface the HTTP API depends on. *db.DB implements it.
type DBClient interface {
	CreateUser(ctx context.Context, username, email, passwordHash, role string) (*db.User, error)
	CreateUserAudited(ctx context.Context, username, email, passwordHash, role string, entry db.AuditEntry) (*db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CheckUsernameExists(ctx context.Context, username string) (bool, error)
	ListUsers(ctx context.Context) ([]db.User, error)
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) error
	UpdateUserCredentials(ctx context.Context, id uuid.UUID, passwordHash, role string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	DeleteUserAudited(ctx context.Context, id uuid.UUID, entry db.AuditEntry) error

	CreateProject(ctx context.Context, userID uuid.UUID, name, description string, brandStrength float64) (*db.Project, error)
	GetProject(ctx context.Context, userID, projectID uuid.UUID) (*db.Project, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]db.Project, error)
	UpdateProject(ctx context.Context, userID, projectID uuid.UUID, name, description string) (*db.Project, error)
	DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error

	CreateBrandAsset(ctx context.Context, projectID uuid.UUID, assetType, assetValue string) (*db.BrandAsset, error)
	ListBrandAssets(ctx context.Context, projectID uuid.UUID) ([]db.BrandAsset, error)
	DeleteBrandAsset(ctx context.Context, userID, assetID uuid.UUID) error

	SaveGeneratedContent(ctx context.Context, c *db.GeneratedContent) error
	ListGeneratedContent(ctx context.Context, userID uuid.UUID, limit int) ([]db.GeneratedContent, error)
	SaveSentimentReport(ctx context.Context, r *db.SentimentReport) error
	ListSentimentReports(ctx context.Context, userID uuid.UUID, projectID uuid.NullUUID) ([]db.SentimentReport, error)
	SaveChatMessage(ctx context.Context, m *db.ChatMessage) error
	ListChatHistory(ctx context.Context, userID uuid.UUID, limit int) ([]db.ChatMessage, error)

	AddAdminLog(ctx context.Context, action, details string, adminID uuid.NullUUID) (*db.AdminLog, error)
	ListAdminLogs(ctx context.Context, limit int) ([]db.AdminLog, error)
	Count(ctx context.Context, table string) (int64, error)
}

var _ DBClient = (*db.DB)(nil)
