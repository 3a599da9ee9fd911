package entity

import (
	"gorm.io/gorm"
)

// Review is one rating+comment per (user, catalog item); resubmitting
// overwrites (upsert on the composite unique index).
type Review struct {
	gorm.Model
	Rating  int    `json:"puntuacion"`
	Comment string `json:"comentario"`

	UserID     uint     `gorm:"uniqueIndex:ux_reviews_user_food" json:"userId"`
	User       User     `json:"-"`
	FoodItemID uint     `gorm:"uniqueIndex:ux_reviews_user_food" json:"id_alimento"`
	FoodItem   FoodItem `json:"-"`
}
