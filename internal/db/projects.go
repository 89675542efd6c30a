package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const projectColumns = `id, user_id, name, description, brand_strength_score, created_at, updated_at`

func scanProject(r row) (*Project, error) {
	var p Project
	if err := r.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.BrandStrengthScore, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject inserts a project owned by userID
func (db *DB) CreateProject(ctx context.Context, userID uuid.UUID, name, description string, brandStrength float64) (*Project, error) {
	ts := now()
	p := &Project{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               name,
		Description:        description,
		BrandStrengthScore: brandStrength,
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
	_, err := db.exec(ctx,
		`INSERT INTO projects (id, user_id, name, description, brand_strength_score, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Name, p.Description, p.BrandStrengthScore, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject retrieves a project only if userID owns it
func (db *DB) GetProject(ctx context.Context, userID, projectID uuid.UUID) (*Project, error) {
	p, err := scanProject(db.queryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ? AND user_id = ?`,
		projectID, userID,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects returns the user's projects, oldest first
func (db *DB) ListProjects(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	rs, err := db.query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = ? ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rs.Close()

	projects := []Project{}
	for rs.Next() {
		p, err := scanProject(rs)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rs.Err()
}

// UpdateProject renames a project owned by userID and bumps updated_at
func (db *DB) UpdateProject(ctx context.Context, userID, projectID uuid.UUID, name, description string) (*Project, error) {
	n, err := db.exec(ctx,
		`UPDATE projects SET name = ?, description = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		name, description, now(), projectID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}
	return db.GetProject(ctx, userID, projectID)
}

// DeleteProject deletes a project owned by userID along with its assets and reports
func (db *DB) DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error {
	n, err := db.exec(ctx, `DELETE FROM projects WHERE id = ? AND user_id = ?`, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}
	return nil
}
