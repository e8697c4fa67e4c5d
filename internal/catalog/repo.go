package catalog

import (
	"context"
	"errors"

	"github.com/averyhollis/stockroom-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads the immutable reference data: item types, buildings and
// locations. Rows are seeded by migrations; nothing here mutates them.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListItemTypes returns the full item type catalog in name order.
func (r *Repository) ListItemTypes(ctx context.Context) ([]models.ItemType, error) {
	var rows []models.ItemType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBuildings returns every building in id order.
func (r *Repository) ListBuildings(ctx context.Context) ([]models.Building, error) {
	var rows []models.Building
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListLocations returns every location in id order.
func (r *Repository) ListLocations(ctx context.Context) ([]models.Location, error) {
	var rows []models.Location
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ItemTypeExists reports whether the named type is part of the catalog.
func (r *Repository) ItemTypeExists(ctx context.Context, name string) (bool, error) {
	var row models.ItemType
	err := r.db.WithContext(ctx).First(&row, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// LocationExists reports whether the location id references a seeded row.
func (r *Repository) LocationExists(ctx context.Context, id int64) (bool, error) {
	var row models.Location
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
