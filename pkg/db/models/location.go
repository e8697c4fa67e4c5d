package models

// Location is a storage slot within a building. Immutable reference data;
// every located item must point at one of these rows.
type Location struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	BuildingID int64  `gorm:"column:building_id;not null;index"`
	Name       string `gorm:"column:name;not null"`
}

func (Location) TableName() string {
	return "locations"
}
