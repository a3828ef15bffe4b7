package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"faultdesk/internal/domain/user"
	"faultdesk/internal/infrastructure/persistence/models"
	"faultdesk/internal/shared/authorization"
	appErrors "faultdesk/internal/shared/errors"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))
	return db
}

func createTestUser(t *testing.T, username string, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser(username, "$2a$12$storedhash", role, "North Command", "Alpha Unit")
	require.NoError(t, err)
	return u
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "tech1", authorization.RoleTechnician)
	require.NoError(t, repo.Save(ctx, u))
	require.NotZero(t, u.ID())

	byID, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "tech1", byID.Username())
	assert.Equal(t, authorization.RoleTechnician, byID.Role())
	assert.True(t, byID.IsActive())

	byName, err := repo.FindByUsername(ctx, "tech1")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), byName.ID())
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestUser(t, "tech1", authorization.RoleTechnician)))

	err := repo.Save(ctx, createTestUser(t, "tech1", authorization.RoleViewer))
	require.Error(t, err)
	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrorTypeConflict, appErr.Type)
}

func TestUserRepository_UnknownUserNotFound(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "ghost")
	require.Error(t, err)
	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrorTypeNotFound, appErr.Type)
}

func TestUserRepository_CountActiveAdmins(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestUser(t, "admin1", authorization.RoleAdmin)))
	require.NoError(t, repo.Save(ctx, createTestUser(t, "tech1", authorization.RoleTechnician)))

	second := createTestUser(t, "admin2", authorization.RoleAdmin)
	require.NoError(t, repo.Save(ctx, second))

	count, err := repo.CountActiveAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, second.Deactivate())
	require.NoError(t, repo.Update(ctx, second))

	count, err = repo.CountActiveAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "inactive admins do not count")
}

func TestUserRepository_ListFilters(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestUser(t, "admin1", authorization.RoleAdmin)))
	require.NoError(t, repo.Save(ctx, createTestUser(t, "tech1", authorization.RoleTechnician)))
	require.NoError(t, repo.Save(ctx, createTestUser(t, "viewer1", authorization.RoleViewer)))

	t.Run("unfiltered", func(t *testing.T) {
		users, total, err := repo.List(ctx, user.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, users, 3)
	})

	t.Run("by role", func(t *testing.T) {
		role := "technician"
		users, total, err := repo.List(ctx, user.Filter{Role: &role})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, "tech1", users[0].Username())
	})

	t.Run("by active flag", func(t *testing.T) {
		inactive := createTestUser(t, "retired1", authorization.RoleViewer)
		require.NoError(t, repo.Save(ctx, inactive))
		require.NoError(t, inactive.Deactivate())
		require.NoError(t, repo.Update(ctx, inactive))

		active := true
		_, total, err := repo.List(ctx, user.Filter{IsActive: &active})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}
