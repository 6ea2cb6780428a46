package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exodus/internal/models/db_models"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &db_models.User{
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$hash",
	}))

	found, err := repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ann", found.Name)

	missing, err := repo.FindByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_UpdateAccessToken_OverwritesPriorGrant(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	user := &db_models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}
	require.NoError(t, repo.Insert(ctx, user))

	require.NoError(t, repo.UpdateAccessToken(ctx, user.ID, "access-old"))
	require.NoError(t, repo.UpdateAccessToken(ctx, user.ID, "access-new"))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "access-new", found.PlaidAccessToken)
}
