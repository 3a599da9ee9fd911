package entity

import (
	"gorm.io/gorm"
)

// CartItem is one customized product instance inside a cart. A line belongs
// to exactly one cart; at checkout its fields are copied into an OrderItem
// and the cart row is deleted, so there is never a dual-parent row.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	// id_original: the catalog entry this line was customized from.
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

// SameCustomization reports whether another line is an exact customization
// match, the condition for stacking instead of inserting a new line.
func (ci *CartItem) SameCustomization(o *CartItem) bool {
	return ci.FoodItemID == o.FoodItemID &&
		ci.Category == o.Category &&
		ci.Name == o.Name &&
		ci.RequiredIngredients == o.RequiredIngredients &&
		ci.Sauce == o.Sauce &&
		ci.Extra == o.Extra &&
		ci.OptionalIngredients == o.OptionalIngredients &&
		ci.UnitPrice == o.UnitPrice &&
		ci.Image == o.Image
}
