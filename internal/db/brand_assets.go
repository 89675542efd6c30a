package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateBrandAsset saves an asset into a project's brand kit. Ownership of the project
// is checked by the caller.
func (db *DB) CreateBrandAsset(ctx context.Context, projectID uuid.UUID, assetType, assetValue string) (*BrandAsset, error) {
	a := &BrandAsset{
		ID:         uuid.New(),
		ProjectID:  projectID,
		AssetType:  assetType,
		AssetValue: assetValue,
		CreatedAt:  now(),
	}
	_, err := db.exec(ctx,
		`INSERT INTO brand_assets (id, project_id, asset_type, asset_value, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.ProjectID, a.AssetType, a.AssetValue, a.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create brand asset: %w", err)
	}
	return a, nil
}

// ListBrandAssets returns the brand kit of a project, oldest first
func (db *DB) ListBrandAssets(ctx context.Context, projectID uuid.UUID) ([]BrandAsset, error) {
	rs, err := db.query(ctx,
		`SELECT id, project_id, asset_type, asset_value, created_at
		 FROM brand_assets WHERE project_id = ? ORDER BY created_at ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list brand assets: %w", err)
	}
	defer rs.Close()

	assets := []BrandAsset{}
	for rs.Next() {
		var a BrandAsset
		if err := rs.Scan(&a.ID, &a.ProjectID, &a.AssetType, &a.AssetValue, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rs.Err()
}

// DeleteBrandAsset deletes an asset if it belongs to one of userID's projects
func (db *DB) DeleteBrandAsset(ctx context.Context, userID, assetID uuid.UUID) error {
	n, err := db.exec(ctx,
		`DELETE FROM brand_assets
		 WHERE id = ? AND project_id IN (SELECT id FROM projects WHERE user_id = ?)`,
		assetID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete brand asset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("brand asset %s: %w", assetID, ErrNotFound)
	}
	return nil
}
