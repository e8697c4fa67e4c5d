package models

// Shipment finalizes an item. At most one shipment may exist per item; the
// unique index on item_id is what makes shipping a one-way transition even
// under concurrent requests. Dates are stored as YYYY-MM-DD strings, the
// format the consuming front end already speaks.
type Shipment struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID      int64   `gorm:"column:item_id;not null;uniqueIndex:uq_shipments_item_id"`
	CreatedDate string  `gorm:"column:created_date;not null"`
	ShipDate    *string `gorm:"column:ship_date"`
	DeliverDate *string `gorm:"column:deliver_date"`
	Address     string  `gorm:"column:address;not null"`
}

func (Shipment) TableName() string {
	return "shipments"
}
