package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akaXala/ESCOMIDA/entity"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository { return &FavoriteRepository{DB: db} }

// Add inserts the pair, ignoring a duplicate (insert-or-ignore semantics).
func (r *FavoriteRepository) Add(userID, foodItemID uint) error {
	fav := entity.Favorite{UserID: userID, FoodItemID: foodItemID}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
}

func (r *FavoriteRepository) Remove(userID, foodItemID uint) error {
	return r.DB.Where("user_id = ? AND food_item_id = ?", userID, foodItemID).
		Delete(&entity.Favorite{}).Error
}

func (r *FavoriteRepository) Exists(userID, foodItemID uint) (bool, error) {
	var fav entity.Favorite
	err := r.DB.Where("user_id = ? AND food_item_id = ?", userID, foodItemID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *FavoriteRepository) ListForUser(userID uint) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Table("food_items AS f").
		Select("f.*").
		Joins("JOIN favorites fav ON fav.food_item_id = f.id").
		Where("fav.user_id = ?", userID).
		Scan(&items).Error
	return items, err
}
