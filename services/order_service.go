package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository

	// Notifier is optional; transitions succeed without it.
	Notifier StatusNotifier
}

// StatusNotifier delivers the best-effort status message to the order's
// owner. Implementations must never be load-bearing for the transition.
type StatusNotifier interface {
	NotifyStatus(ctx context.Context, order *entity.Order, newStatus string)
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, notifier StatusNotifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Notifier: notifier}
}

// Checkout materializes the user's cart into a new order: the lines are
// snapshotted as order lines, the total is fixed to their summed final
// prices, and the cart is emptied, all in one transaction so a partial
// move can never exist.
func (s *OrderService) Checkout(userID uint) (orderID uint, err error) {
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCart(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoCart
			}
			return err
		}

		var lines []entity.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var total int64
		for _, line := range lines {
			total += line.FinalPrice
		}

		order := entity.Order{
			UserID: userID,
			Status: entity.StatusWaiting,
			Total:  total,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, entity.OrderItem{
				OrderID:             order.ID,
				FoodItemID:          line.FoodItemID,
				Category:            line.Category,
				Name:                line.Name,
				RequiredIngredients: line.RequiredIngredients,
				Sauce:               line.Sauce,
				Extra:               line.Extra,
				OptionalIngredients: line.OptionalIngredients,
				Image:               line.Image,
				UnitPrice:           line.UnitPrice,
				Quantity:            line.Quantity,
				FinalPrice:          line.FinalPrice,
			})
		}
		if err := s.Repo.CreateOrderItems(tx, items); err != nil {
			return err
		}

		if err := s.CartRepo.DeleteAllItems(tx, cart.ID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	return orderID, err
}

// ListForUser returns the customer's own orders, newest first.
func (s *OrderService) ListForUser(userID uint) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID)
}

// ListWithItems returns the full order collection for the kitchen boards.
func (s *OrderService) ListWithItems() ([]entity.Order, error) {
	return s.Repo.ListOrdersWithItems()
}

// ItemsForUser returns the lines of one of the user's own orders.
func (s *OrderService) ItemsForUser(userID, orderID uint) ([]entity.OrderItem, error) {
	return s.Repo.GetOrderItemsForUser(userID, orderID)
}
