package services

import (
	"fmt"
	"strings"

	"github.com/akaXala/ESCOMIDA/entity"
)

// KitchenOrder is the display-ready projection of one order for the kitchen
// boards: line summary, contact phone and total for fulfillment.
type KitchenOrder struct {
	ID      uint   `json:"id_pedido"`
	Status  string `json:"estatus"`
	Total   int64  `json:"precio_total"`
	Phone   string `json:"telefono"`
	Summary string `json:"resumen"`
}

// KitchenBoard partitions the order collection into the subsets each kitchen
// screen shows.
type KitchenBoard struct {
	NewOrders        []KitchenOrder `json:"nuevos"`
	Cooking          []KitchenOrder `json:"cocinando"`
	ReadyForDelivery []KitchenOrder `json:"listos"`
	Delivered        []KitchenOrder `json:"entregados"`
}

// ProjectKitchenBoard derives the per-screen subsets from the full order
// collection. It is pure: the input is never mutated and re-running it on
// every poll tick is safe. Ordering within each bucket follows the input.
// The cooking board shows in-progress work (Cocinando plus Listo para
// entregar); the delivery screen reads ReadyForDelivery alone.
func ProjectKitchenBoard(orders []entity.Order) KitchenBoard {
	board := KitchenBoard{
		NewOrders:        []KitchenOrder{},
		Cooking:          []KitchenOrder{},
		ReadyForDelivery: []KitchenOrder{},
		Delivered:        []KitchenOrder{},
	}
	for i := range orders {
		ko := projectOrder(&orders[i])
		switch orders[i].Status {
		case entity.StatusWaiting:
			board.NewOrders = append(board.NewOrders, ko)
		case entity.StatusCooking:
			board.Cooking = append(board.Cooking, ko)
		case entity.StatusReady:
			board.Cooking = append(board.Cooking, ko)
			board.ReadyForDelivery = append(board.ReadyForDelivery, ko)
		case entity.StatusDelivered:
			board.Delivered = append(board.Delivered, ko)
		}
	}
	return board
}

// SummarizeItems flattens the lines into "2x Taco, 1x Agua".
func SummarizeItems(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	return strings.Join(parts, ", ")
}

func projectOrder(o *entity.Order) KitchenOrder {
	return KitchenOrder{
		ID:      o.ID,
		Status:  o.Status,
		Total:   o.Total,
		Phone:   o.User.Phone,
		Summary: SummarizeItems(o.Items),
	}
}
