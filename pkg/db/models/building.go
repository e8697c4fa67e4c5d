package models

// Building is immutable reference data seeded out of band.
type Building struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name    string `gorm:"column:name;not null"`
	Address string `gorm:"column:address;not null"`
}

func (Building) TableName() string {
	return "buildings"
}
