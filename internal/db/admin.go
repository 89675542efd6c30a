package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var countableTables = map[string]bool{
	TableUsers:            true,
	TableProjects:         true,
	TableBrandAssets:      true,
	TableGeneratedContent: true,
	TableSentimentReports: true,
	TableChatHistory:      true,
	TableAdminLogs:        true,
}

// AuditEntry describes an admin log row written alongside the change it records.
type AuditEntry struct {
	Action  string
	Details string
	AdminID uuid.NullUUID
}

// AddAdminLog appends an audit entry. adminID is left null when the action was not
// performed by an administrator.
func (db *DB) AddAdminLog(ctx context.Context, action, details string, adminID uuid.NullUUID) (*AdminLog, error) {
	return insertAdminLog(ctx, db.exec, AuditEntry{Action: action, Details: details, AdminID: adminID})
}

func insertAdminLog(ctx context.Context, exec execFunc, entry AuditEntry) (*AdminLog, error) {
	l := &AdminLog{
		ID:        uuid.New(),
		Action:    entry.Action,
		Details:   entry.Details,
		AdminID:   entry.AdminID,
		CreatedAt: now(),
	}
	_, err := exec(ctx,
		`INSERT INTO admin_logs (id, action, details, admin_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.Action, l.Details, l.AdminID, l.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add admin log: %w", err)
	}
	return l, nil
}

// ListAdminLogs returns the most recent audit entries, newest first
func (db *DB) ListAdminLogs(ctx context.Context, limit int) ([]AdminLog, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rs, err := db.query(ctx,
		`SELECT id, action, details, admin_id, created_at
		 FROM admin_logs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin logs: %w", err)
	}
	defer rs.Close()

	logs := []AdminLog{}
	for rs.Next() {
		var l AdminLog
		if err := rs.Scan(&l.ID, &l.Action, &l.Details, &l.AdminID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rs.Err()
}

// Count returns the number of rows in one of the Table* tables
func (db *DB) Count(ctx context.Context, table string) (int64, error) {
	if !countableTables[table] {
		return 0, fmt.Errorf("cannot count unknown table %q", table)
	}
	n, err := db.count(ctx, `SELECT COUNT(*) FROM `+table)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
