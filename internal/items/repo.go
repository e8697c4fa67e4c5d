package items

import (
	"context"
	"time"

	"github.com/averyhollis/stockroom-backend/pkg/db/models"
	"github.com/averyhollis/stockroom-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository exposes item and shipment persistence operations. Services build
// one over the transaction handle of each request, so every validate-then-
// mutate sequence commits or rolls back as a unit.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an items repo bound to the provided GORM handle,
// which may be a live transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new item row, image bytes included.
func (r *Repository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID loads a full item row, image included.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ApplyMove updates exactly the fields a move transition touches.
func (r *Repository) ApplyMove(ctx context.Context, itemID int64, locationID int64, madlib string, lastUserID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"location_id":  locationID,
			"madlib":       madlib,
			"last_user_id": lastUserID,
			"last_updated": at,
		}).Error
}

// ShipmentForItem returns the shipment referencing the item, or nil.
func (r *Repository) ShipmentForItem(ctx context.Context, itemID int64) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.WithContext(ctx).First(&shipment, "item_id = ?", itemID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &shipment, nil
}

// CreateShipment inserts a shipment row; the unique index on item_id rejects
// a second shipment for the same item.
func (r *Repository) CreateShipment(ctx context.Context, shipment *models.Shipment) (*models.Shipment, error) {
	if err := r.db.WithContext(ctx).Create(shipment).Error; err != nil {
		return nil, err
	}
	return shipment, nil
}

// Search returns image-stripped item rows matching the filter, ordered by id
// so pages are reproducible over an unchanged dataset.
func (r *Repository) Search(ctx context.Context, filter Filter, page pagination.Page) ([]models.Item, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Omit("image").
		Order("id ASC")

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.ItemType != nil {
		query = query.Where("item_type = ?", *filter.ItemType)
	}
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.Serial != nil {
		query = query.Where("serial = ?", *filter.Serial)
	}
	if filter.Part != nil {
		query = query.Where("part = ?", *filter.Part)
	}

	if page.Skip > 0 {
		query = query.Offset(page.Skip)
	}
	query = query.Limit(page.Limit)

	var rows []models.Item
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
