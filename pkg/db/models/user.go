package models

// User represents the canonical identity entity. Rows are created at
// registration and never mutated or deleted afterwards.
type User struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	First        string `gorm:"column:first;not null"`
	Last         string `gorm:"column:last;not null"`
	Username     string `gorm:"column:username;not null;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash;not null"`
}

func (User) TableName() string {
	return "users"
}
