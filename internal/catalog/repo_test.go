package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/averyhollis/stockroom-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Building{}, &models.Location{}, &models.ItemType{}))
	return db
}

func TestListItemTypesSortedByName(t *testing.T) {
	db := setupCatalogTestDB(t)
	for _, name := range []string{"monitor", "dock", "laptop"} {
		require.NoError(t, db.Create(&models.ItemType{Name: name}).Error)
	}

	rows, err := NewRepository(db).ListItemTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "dock", rows[0].Name)
	assert.Equal(t, "laptop", rows[1].Name)
	assert.Equal(t, "monitor", rows[2].Name)
}

func TestListBuildingsAndLocations(t *testing.T) {
	db := setupCatalogTestDB(t)

	building := models.Building{Name: "HQ", Address: "1 Main St"}
	require.NoError(t, db.Create(&building).Error)
	require.NoError(t, db.Create(&models.Location{BuildingID: building.ID, Name: "Shelf A"}).Error)
	require.NoError(t, db.Create(&models.Location{BuildingID: building.ID, Name: "Shelf B"}).Error)

	repo := NewRepository(db)

	buildings, err := repo.ListBuildings(context.Background())
	require.NoError(t, err)
	require.Len(t, buildings, 1)
	assert.Equal(t, "HQ", buildings[0].Name)

	locations, err := repo.ListLocations(context.Background())
	require.NoError(t, err)
	assert.Len(t, locations, 2)
}

func TestExistenceChecks(t *testing.T) {
	db := setupCatalogTestDB(t)
	require.NoError(t, db.Create(&models.ItemType{Name: "laptop"}).Error)

	building := models.Building{Name: "HQ", Address: "1 Main St"}
	require.NoError(t, db.Create(&building).Error)
	location := models.Location{BuildingID: building.ID, Name: "Shelf A"}
	require.NoError(t, db.Create(&location).Error)

	repo := NewRepository(db)

	ok, err := repo.ItemTypeExists(context.Background(), "laptop")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ItemTypeExists(context.Background(), "toaster")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.LocationExists(context.Background(), location.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.LocationExists(context.Background(), 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}
