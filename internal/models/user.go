package models

import (
	"gorm.io/gorm"
)

// User is an authenticated account. The ID is the stable opaque identifier
// the daily selector and streak tracker key on; it never changes after
// registration.
type User struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"unique;not null"`
	DisplayName string `json:"displayName" gorm:"column:display_name"`
	Password    string `json:"-" gorm:"not null"` // bcrypt hash
	gorm.Model
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
