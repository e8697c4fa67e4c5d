package models

import "time"

// Item is the central mutable entity. A nil LocationID means the item is in
// transit or otherwise unassigned. The raw image bytes live on the row; list
// and search responses project them away and only the image endpoint returns
// them.
type Item struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ItemType    string    `gorm:"column:item_type;not null;index"`
	LocationID  *int64    `gorm:"column:location_id;index"`
	Serial      string    `gorm:"column:serial;not null;index"`
	Part        string    `gorm:"column:part;not null;index"`
	LastUserID  int64     `gorm:"column:last_user_id;not null"`
	LastUpdated time.Time `gorm:"column:last_updated;not null"`
	Madlib      string    `gorm:"column:madlib;not null"`
	Image       []byte    `gorm:"column:image"`
}

func (Item) TableName() string {
	return "items"
}
