package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/averyhollis/stockroom-backend/pkg/db"
	"github.com/averyhollis/stockroom-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(&models.User{}))
	return conn
}

func TestCreateAndFind(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)

	created, err := repo.Create(context.Background(), &models.User{
		First:        "Avery",
		Last:         "Hollis",
		Username:     "avery",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byName, err := repo.FindByUsername(context.Background(), "avery")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "avery", byID.Username)
}

func TestFindUnknownUserReturnsNotFound(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))

	_, err := repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestExistsByUsername(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)

	_, err := repo.Create(context.Background(), &models.User{First: "A", Last: "B", Username: "avery", PasswordHash: "h"})
	require.NoError(t, err)

	ok, err := repo.ExistsByUsername(context.Background(), "avery")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUniqueUsernameEnforcedByIndex(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)

	_, err := repo.Create(context.Background(), &models.User{First: "A", Last: "B", Username: "avery", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), &models.User{First: "C", Last: "D", Username: "avery", PasswordHash: "h"})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, ""))
}
