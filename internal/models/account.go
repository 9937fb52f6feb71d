package models

import (
	"time"

	"gorm.io/datatypes"
)

type Account struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"f_name" gorm:"not null;size:100"`
	LastName  string `json:"l_name" gorm:"not null;size:100"`
	Email     string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	// Bcrypt hash, never serialized.
	Password string                      `json:"-" gorm:"not null;size:255"`
	Majors   datatypes.JSONSlice[string] `json:"major"`
	Role     string                      `json:"role" gorm:"not null;index;size:50"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
