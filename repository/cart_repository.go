package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/akaXala/ESCOMIDA/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCart returns the user's cart or gorm.ErrRecordNotFound.
func (r *CartRepository) GetCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCart backs the lazy cart creation on first authenticated
// contact.
func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) ListItems(cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("cart_id = ?", cartID).Find(&items).Error
	return items, err
}

func (r *CartRepository) CountItems(cartID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error
	return count, err
}

// UpsertItem stacks the new line onto an existing one when the whole
// customization matches (entity.CartItem.SameCustomization); otherwise it
// inserts a fresh line. Returns whether stacking happened.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) (stacked bool, err error) {
	var candidates []entity.CartItem
	err = tx.Where("cart_id = ? AND food_item_id = ?", cartID, row.FoodItemID).
		Find(&candidates).Error
	if err != nil {
		return false, err
	}

	for i := range candidates {
		if candidates[i].SameCustomization(row) {
			candidates[i].Quantity += row.Quantity
			candidates[i].FinalPrice = candidates[i].UnitPrice * int64(candidates[i].Quantity)
			return true, tx.Save(&candidates[i]).Error
		}
	}

	row.CartID = cartID
	return false, tx.Create(row).Error
}

// GetItemForUser loads a line only if it belongs to the user's cart.
func (r *CartRepository) GetItemForUser(tx *gorm.DB, userID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) SaveItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Delete(item).Error
}

// DeleteAllItems empties a cart. The cart row itself stays.
func (r *CartRepository) DeleteAllItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
