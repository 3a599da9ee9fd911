package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	FoodRepo *repository.FoodRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, FoodRepo: fr}
}

type AddToCartIn struct {
	Category            string `json:"categoria" binding:"required"`
	Name                string `json:"nombre" binding:"required"`
	RequiredIngredients string `json:"ingredientes_obligatorios" binding:"required"`
	Sauce               string `json:"salsa"`
	Extra               string `json:"extra"`
	OptionalIngredients string `json:"ingredientes_opcionales"`
	Price               int64  `json:"precio" binding:"required"`
	Image               string `json:"imagen" binding:"required"`
	Quantity            int    `json:"cantidad" binding:"required,min=1"`
	FoodItemID          uint   `json:"id_original" binding:"required"`
}

// Add puts a customized line in the user's cart, stacking onto an existing
// line when the whole customization matches. Returns whether it stacked.
func (s *CartService) Add(userID uint, in *AddToCartIn) (stacked bool, err error) {
	if _, err := s.FoodRepo.GetByID(in.FoodItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrFoodNotFound
		}
		return false, err
	}

	cart, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return false, err
	}

	line := &entity.CartItem{
		FoodItemID:          in.FoodItemID,
		Category:            in.Category,
		Name:                in.Name,
		RequiredIngredients: in.RequiredIngredients,
		Sauce:               in.Sauce,
		Extra:               in.Extra,
		OptionalIngredients: in.OptionalIngredients,
		Image:               in.Image,
		UnitPrice:           in.Price,
		Quantity:            in.Quantity,
		FinalPrice:          in.Price * int64(in.Quantity),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		stacked, txErr = s.CartRepo.UpsertItem(tx, cart.ID, line)
		return txErr
	})
	return stacked, err
}

// ListItems returns the cart lines; a user without a cart gets ErrNoCart,
// matching the original surface.
func (s *CartService) ListItems(userID uint) ([]entity.CartItem, error) {
	cart, err := s.CartRepo.GetCart(s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCart
		}
		return nil, err
	}
	return s.CartRepo.ListItems(cart.ID)
}

// Count backs the cart badge.
func (s *CartService) Count(userID uint) (int64, error) {
	cart, err := s.CartRepo.GetCart(s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNoCart
		}
		return 0, err
	}
	return s.CartRepo.CountItems(cart.ID)
}

// Increment raises the quantity by one and recomputes the final price.
func (s *CartService) Increment(userID, itemID uint) (*entity.CartItem, error) {
	var out *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.CartRepo.GetItemForUser(tx, userID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		item.Quantity++
		item.FinalPrice = item.UnitPrice * int64(item.Quantity)
		if err := s.CartRepo.SaveItem(tx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	return out, err
}

// Decrement lowers the quantity by one; at quantity 1 the line is deleted
// (decrement-to-delete is the only path to zero). Returns nil when the line
// was removed.
func (s *CartService) Decrement(userID, itemID uint) (*entity.CartItem, error) {
	var out *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.CartRepo.GetItemForUser(tx, userID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if item.Quantity <= 1 {
			return s.CartRepo.DeleteItem(tx, item)
		}
		item.Quantity--
		item.FinalPrice = item.UnitPrice * int64(item.Quantity)
		if err := s.CartRepo.SaveItem(tx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	return out, err
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.CartRepo.GetItemForUser(tx, userID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		return s.CartRepo.DeleteItem(tx, item)
	})
}
