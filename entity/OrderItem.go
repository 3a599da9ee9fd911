package entity

import (
	"gorm.io/gorm"
)

// OrderItem mirrors CartItem but is owned by an Order. Two separate tables
// keep line ownership exclusive instead of two nullable parent keys.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodItemID uint     `json:"id_original"`
	FoodItem   FoodItem `json:"-"`

	Category            string `json:"categoria"`
	Name                string `json:"nombre"`
	RequiredIngredients string `json:"ingredientes_obligatorios"`
	Sauce               string `json:"salsa"`
	Extra               string `json:"extra"`
	OptionalIngredients string `json:"ingredientes_opcionales"`
	Image               string `json:"imagen"`

	UnitPrice  int64 `json:"precio"`
	Quantity   int   `json:"cantidad"`
	FinalPrice int64 `json:"precio_final"`
}
