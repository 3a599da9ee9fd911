package entity

import (
	"gorm.io/gorm"
)

// Cart is the user's mutable pre-checkout bag. One per user, created lazily
// together with the user row; checkout empties it but never deletes it.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
