package entity

import (
	"gorm.io/gorm"
)

// FoodItem is a catalog entry (alimento). Cart and order lines snapshot its
// fields instead of referencing it, so menu edits never change past orders.
type FoodItem struct {
	gorm.Model
	Category            string `json:"categoria"`
	Name                string `json:"nombre"`
	RequiredIngredients string `json:"ingredientes_obligatorios"`
	Price               int64  `json:"precio"`
	Calories            int    `json:"calorias"`
	Image               string `json:"imagen"`

	Reviews   []Review   `json:"-"`
	Favorites []Favorite `json:"-"`
}
