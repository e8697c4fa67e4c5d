package items

import (
	"time"

	"github.com/averyhollis/stockroom-backend/internal/users"
	"github.com/averyhollis/stockroom-backend/pkg/db/models"
)

// Filter is the set of optional equality predicates a search may carry.
// Present predicates are AND-combined; absent ones impose no constraint.
type Filter struct {
	ID         *int64
	ItemType   *string
	LocationID *int64
	Serial     *string
	Part       *string
}

// IntakeInput holds everything needed to record a new physical item.
type IntakeInput struct {
	ItemType   string
	LocationID int64
	Serial     string
	Part       string
	Madlib     string
	Image      []byte
}

// MoveInput carries the mutable fields of a move transition.
type MoveInput struct {
	LocationID int64  `json:"loc_id" validate:"required"`
	Madlib     string `json:"madlib" validate:"required"`
}

// ItemView is the image-stripped projection returned by intake and search.
// The last-modifying user is resolved to their public identity; the raw
// image bytes are only ever served by the image endpoint.
type ItemView struct {
	ItemID      int64                 `json:"item_id"`
	ItemType    string                `json:"item_type"`
	LocationID  *int64                `json:"loc_id"`
	Serial      string                `json:"serial"`
	Part        string                `json:"part"`
	Madlib      string                `json:"madlib"`
	LastUpdated time.Time            `json:"last_updated"`
	LastUser    users.PublicIdentity `json:"last_user"`
}

// ShipmentView is the transport shape of a shipment record.
type ShipmentView struct {
	ShipmentID  int64   `json:"shipment_id"`
	ItemID      int64   `json:"item_id"`
	CreatedDate string  `json:"created_date"`
	ShipDate    *string `json:"ship_date"`
	DeliverDate *string `json:"deliver_date"`
	Address     string  `json:"address"`
}

func itemViewFromModel(m *models.Item, lastUser users.PublicIdentity) ItemView {
	return ItemView{
		ItemID:      m.ID,
		ItemType:    m.ItemType,
		LocationID:  m.LocationID,
		Serial:      m.Serial,
		Part:        m.Part,
		Madlib:      m.Madlib,
		LastUpdated: m.LastUpdated,
		LastUser:    lastUser,
	}
}

func shipmentViewFromModel(m *models.Shipment) *ShipmentView {
	return &ShipmentView{
		ShipmentID:  m.ID,
		ItemID:      m.ItemID,
		CreatedDate: m.CreatedDate,
		ShipDate:    m.ShipDate,
		DeliverDate: m.DeliverDate,
		Address:     m.Address,
	}
}
