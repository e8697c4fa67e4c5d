package items

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/averyhollis/stockroom-backend/internal/catalog"
	"github.com/averyhollis/stockroom-backend/internal/users"
	"github.com/averyhollis/stockroom-backend/pkg/db"
	"github.com/averyhollis/stockroom-backend/pkg/db/models"
	pkgerrors "github.com/averyhollis/stockroom-backend/pkg/errors"
	"github.com/averyhollis/stockroom-backend/pkg/pagination"
	"gorm.io/gorm"
)

const shipmentDateLayout = "2006-01-02"

// Service owns the item lifecycle transitions and the search projection.
// Every mutating operation validates its references first and then commits
// inside a single transaction, so a canceled or failed request never leaves
// partial state behind.
type Service interface {
	Intake(ctx context.Context, input IntakeInput, actor *models.User) (*ItemView, error)
	Move(ctx context.Context, itemID int64, input MoveInput, actor *models.User) error
	Ship(ctx context.Context, itemID int64, address string, actor *models.User) (*ShipmentView, error)
	Image(ctx context.Context, itemID int64) ([]byte, error)
	Search(ctx context.Context, filter Filter, page pagination.Page) ([]ItemView, error)
}

type service struct {
	db *gorm.DB
}

// NewService constructs the lifecycle service over the provided GORM handle.
func NewService(conn *gorm.DB) (Service, error) {
	if conn == nil {
		return nil, fmt.Errorf("db connection is required")
	}
	return &service{db: conn}, nil
}

func (s *service) Intake(ctx context.Context, input IntakeInput, actor *models.User) (*ItemView, error) {
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "acting user is required")
	}
	if len(input.Image) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item image is required")
	}

	var created *models.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		catalogRepo := catalog.NewRepository(tx)

		typeExists, err := catalogRepo.ItemTypeExists(ctx, input.ItemType)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check item type")
		}
		if !typeExists {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item type not found")
		}

		locationExists, err := catalogRepo.LocationExists(ctx, input.LocationID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check location")
		}
		if !locationExists {
			return pkgerrors.New(pkgerrors.CodeNotFound, "location not found")
		}

		locationID := input.LocationID
		item := &models.Item{
			ItemType:    input.ItemType,
			LocationID:  &locationID,
			Serial:      input.Serial,
			Part:        input.Part,
			LastUserID:  actor.ID,
			LastUpdated: time.Now().UTC(),
			Madlib:      input.Madlib,
			Image:       input.Image,
		}
		created, err = NewRepository(tx).Create(ctx, item)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist item")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := itemViewFromModel(created, *users.FromModel(actor))
	return &view, nil
}

func (s *service) Move(ctx context.Context, itemID int64, input MoveInput, actor *models.User) error {
	if actor == nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "acting user is required")
	}

	// Moving an already-shipped item is allowed on purpose: shipped items can
	// still be relocated before they physically leave the building.
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if _, err := repo.FindByID(ctx, itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load item")
		}

		locationExists, err := catalog.NewRepository(tx).LocationExists(ctx, input.LocationID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check location")
		}
		if !locationExists {
			return pkgerrors.New(pkgerrors.CodeNotFound, "location not found")
		}

		if err := repo.ApplyMove(ctx, itemID, input.LocationID, input.Madlib, actor.ID, time.Now().UTC()); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "apply move")
		}
		return nil
	})
}

func (s *service) Ship(ctx context.Context, itemID int64, address string, actor *models.User) (*ShipmentView, error) {
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "acting user is required")
	}

	var created *models.Shipment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if _, err := repo.FindByID(ctx, itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load item")
		}

		existing, err := repo.ShipmentForItem(ctx, itemID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check shipment")
		}
		if existing != nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "item already shipped")
		}

		shipment := &models.Shipment{
			ItemID:      itemID,
			CreatedDate: time.Now().UTC().Format(shipmentDateLayout),
			Address:     address,
		}
		created, err = repo.CreateShipment(ctx, shipment)
		if err != nil {
			// Two concurrent ships can both pass the pre-check; the unique
			// index lets exactly one commit.
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "item already shipped")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist shipment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return shipmentViewFromModel(created), nil
}

func (s *service) Image(ctx context.Context, itemID int64) ([]byte, error) {
	item, err := NewRepository(s.db).FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load item")
	}
	return item.Image, nil
}

func (s *service) Search(ctx context.Context, filter Filter, page pagination.Page) ([]ItemView, error) {
	page = page.Normalize()
	if page.Limit == 0 {
		return []ItemView{}, nil
	}

	repo := NewRepository(s.db)
	rows, err := repo.Search(ctx, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search items")
	}

	identities, err := s.resolveLastUsers(ctx, rows)
	if err != nil {
		return nil, err
	}

	views := make([]ItemView, 0, len(rows))
	for i := range rows {
		identity, ok := identities[rows[i].LastUserID]
		if !ok {
			// The foreign key guarantees the modifier exists; a miss here is
			// a data-integrity fault, not a caller mistake.
			return nil, pkgerrors.New(pkgerrors.CodeInternal, fmt.Sprintf("last user %d unresolvable", rows[i].LastUserID))
		}
		views = append(views, itemViewFromModel(&rows[i], identity))
	}
	return views, nil
}

func (s *service) resolveLastUsers(ctx context.Context, rows []models.Item) (map[int64]users.PublicIdentity, error) {
	ids := make([]int64, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	for i := range rows {
		if _, dup := seen[rows[i].LastUserID]; dup {
			continue
		}
		seen[rows[i].LastUserID] = struct{}{}
		ids = append(ids, rows[i].LastUserID)
	}
	if len(ids) == 0 {
		return map[int64]users.PublicIdentity{}, nil
	}

	var userRows []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&userRows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve last users")
	}

	identities := make(map[int64]users.PublicIdentity, len(userRows))
	for i := range userRows {
		identities[userRows[i].ID] = *users.FromModel(&userRows[i])
	}
	return identities, nil
}
