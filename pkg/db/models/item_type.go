package models

// ItemType is catalog reference data; the name acts as its own identifier.
type ItemType struct {
	Name string `gorm:"column:name;primaryKey"`
}

func (ItemType) TableName() string {
	return "item_types"
}
