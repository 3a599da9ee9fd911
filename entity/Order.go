package entity

import (
	"gorm.io/gorm"
)

// Order (pedido) is an immutable snapshot of a checkout. Only Status ever
// changes after creation; Total is fixed to the sum of the line FinalPrices
// at the moment of materialization.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Status string `gorm:"not null;default:'En espera';index" json:"estatus"`
	Total  int64  `json:"precio_total"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
