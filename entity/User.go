package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"nombre"`
	// 10-digit local number; the WhatsApp sender prepends the country code.
	Phone string `json:"telefono"`
	Role  string `gorm:"not null;default:cliente" json:"role"`

	Cart      *Cart      `json:"-"`
	Orders    []Order    `json:"-"`
	Reviews   []Review   `json:"-"`
	Favorites []Favorite `json:"-"`
}
