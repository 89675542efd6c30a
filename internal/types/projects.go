package types

import (
	"github.com/google/uuid"
)

// ProjectRequest creates or updates a project.
type ProjectRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
}

// BrandAssetRequest saves an asset into a project's brand kit.
type BrandAssetRequest struct {
	ProjectID  uuid.UUID `json:"project_id" validate:"required"`
	AssetType  string    `json:"asset_type" validate:"required,max=50"`
	AssetValue string    `json:"asset_value" validate:"required"`
}

// Validate validates the ProjectRequest using the validator.
func (r *ProjectRequest) Validate() error { return validate.Struct(r) }

// Validate validates the BrandAssetRequest using the validator.
func (r *BrandAssetRequest) Validate() error { return validate.Struct(r) }
