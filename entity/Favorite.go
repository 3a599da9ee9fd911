package entity

import (
	"time"
)

// Favorite is a unique (user, catalog item) pair with insert-or-ignore
// semantics. Removal is a hard delete: a removed pair must be re-addable,
// and a soft-deleted row would keep occupying the unique index.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID     uint     `gorm:"uniqueIndex:ux_favorites_user_food" json:"userId"`
	User       User     `json:"-"`
	FoodItemID uint     `gorm:"uniqueIndex:ux_favorites_user_food" json:"id_alimento"`
	FoodItem   FoodItem `json:"-"`
}
