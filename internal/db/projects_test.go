package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner")

	p, err := db.CreateProject(ctx, owner.ID, "Acme", "Bakery brand", 77.3)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, p.UserID)

	got, err := db.GetProject(ctx, owner.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "Bakery brand", got.Description)
	assert.InDelta(t, 77.3, got.BrandStrengthScore, 1e-9)

	time.Sleep(2 * time.Millisecond)
	updated, err := db.UpdateProject(ctx, owner.ID, p.ID, "Acme 2", "")
	require.NoError(t, err)
	assert.Equal(t, "Acme 2", updated.Name)
	assert.Equal(t, "", updated.Description)
	assert.True(t, updated.UpdatedAt.After(got.UpdatedAt), "updated_at should move forward")
	assert.InDelta(t, 77.3, updated.BrandStrengthScore, 1e-9)

	list, err := db.ListProjects(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)

	require.NoError(t, db.DeleteProject(ctx, owner.ID, p.ID))
	_, err = db.GetProject(ctx, owner.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProject_OwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")

	p, err := db.CreateProject(ctx, owner.ID, "Private", "", 80)
	require.NoError(t, err)

	_, err = db.GetProject(ctx, other.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = db.UpdateProject(ctx, other.ID, p.ID, "Hijacked", "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, db.DeleteProject(ctx, other.ID, p.ID), ErrNotFound)

	list, err := db.ListProjects(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := db.GetProject(ctx, owner.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", got.Name)
}

func TestBrandAssets(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")
	p, err := db.CreateProject(ctx, owner.ID, "Acme", "", 70)
	require.NoError(t, err)

	logo, err := db.CreateBrandAsset(ctx, p.ID, "logo", "https://via.placeholder.com/400x400/000/fff")
	require.NoError(t, err)
	_, err = db.CreateBrandAsset(ctx, p.ID, "tagline", "Acme — Empowering Your Bakery Journey with AI")
	require.NoError(t, err)

	assets, err := db.ListBrandAssets(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "logo", assets[0].AssetType)
	assert.Equal(t, "tagline", assets[1].AssetType)

	// Another user cannot delete it
	assert.ErrorIs(t, db.DeleteBrandAsset(ctx, other.ID, logo.ID), ErrNotFound)
	require.NoError(t, db.DeleteBrandAsset(ctx, owner.ID, logo.ID))
	assert.ErrorIs(t, db.DeleteBrandAsset(ctx, owner.ID, logo.ID), ErrNotFound)

	assets, err = db.ListBrandAssets(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, assets, 1)
}

func TestBrandAsset_UnknownProjectRejected(t *testing.T) {
	db := newTestDB(t)
	_, err := db.CreateBrandAsset(context.Background(), uuid.New(), "logo", "x")
	assert.Error(t, err, "foreign keys are enforced")
}

func TestDeleteUser_Cascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := createTestUser(t, db, "leaving")

	p, err := db.CreateProject(ctx, u.ID, "Acme", "", 70)
	require.NoError(t, err)
	_, err = db.CreateBrandAsset(ctx, p.ID, "name", "Acme")
	require.NoError(t, err)
	require.NoError(t, db.SaveChatMessage(ctx, &ChatMessage{UserID: u.ID, Message: "hi", Response: "hello"}))
	require.NoError(t, db.SaveGeneratedContent(ctx, &GeneratedContent{
		ProjectID: uuid.NullUUID{UUID: p.ID, Valid: true}, UserID: u.ID, ContentType: "blog", ContentText: "x",
	}))

	require.NoError(t, db.DeleteUser(ctx, u.ID))

	for _, table := range []string{TableProjects, TableBrandAssets, TableChatHistory, TableGeneratedContent} {
		n, err := db.Count(ctx, table)
		require.NoError(t, err)
		assert.Zero(t, n, "table %s", table)
	}
}
