package user

import (
	"testing"

	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/security"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *SQLAdminRepository {
	t.Helper()
	db, err := database.NewConnection("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	creator := database.NewTableCreator()
	require.NoError(t, creator.CreateSchema(db.DB))
	require.NoError(t, creator.SeedInitialContent(db.DB))
	return NewSQLAdminRepository(db)
}

func TestSeedCreatesDefaultAdmin(t *testing.T) {
	repo := setupRepo(t)

	admin, err := repo.FindByUsername(config.DefaultAdminUser)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, security.CheckPassword(admin.PasswordHash, config.DefaultAdminPassword))
}

func TestFindUnknownAdmin(t *testing.T) {
	repo := setupRepo(t)

	admin, err := repo.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, admin)

	byID, err := repo.FindByID(9999)
	require.NoError(t, err)
	assert.Nil(t, byID)
}

func TestUpdatePassword(t *testing.T) {
	repo := setupRepo(t)

	admin, err := repo.FindByUsername(config.DefaultAdminUser)
	require.NoError(t, err)
	require.NotNil(t, admin)

	hash, err := security.HashPassword("brand-new-secret")
	require.NoError(t, err)
	require.NoError(t, repo.UpdatePassword(admin.ID, hash))

	reloaded, err := repo.FindByID(admin.ID)
	require.NoError(t, err)
	assert.True(t, security.CheckPassword(reloaded.PasswordHash, "brand-new-secret"))
	assert.False(t, security.CheckPassword(reloaded.PasswordHash, config.DefaultAdminPassword))

	assert.Error(t, repo.UpdatePassword(9999, hash))
}
