package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/akaXala/ESCOMIDA/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithUser(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("User").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID        uint      `json:"id_pedido"`
	Status    string    `json:"estatus"`
	Total     int64     `json:"precio_total"`
	CreatedAt time.Time `json:"fecha"`
}

// ListOrdersForUser returns the customer's own orders, newest first.
func (r *OrderRepository) ListOrdersForUser(userID uint) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, status, total, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(&out).Error
	return out, err
}

// ListOrdersWithItems returns every order with its lines and owning user,
// newest first. This is the single collection the kitchen boards project
// their per-screen subsets from.
func (r *OrderRepository) ListOrdersWithItems() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ---------------- Status ----------------

// UpdateStatusGuard is a compare-and-swap: the row only moves when it is
// still in the expected source status, which serializes concurrent kitchen
// clicks (0 rows affected = lost the race or invalid transition).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// DeleteOrderWithItems removes the order and cascades its lines.
func (r *OrderRepository) DeleteOrderWithItems(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// GetOrderItemsForUser scopes the lines to orders the user owns.
func (r *OrderRepository) GetOrderItemsForUser(userID, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.
		Where("order_id = ? AND order_id IN (SELECT id FROM orders WHERE user_id = ?)", orderID, userID).
		Find(&items).Error
	return items, err
}
