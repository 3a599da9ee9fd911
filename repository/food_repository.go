package repository

import (
	"gorm.io/gorm"

	"github.com/akaXala/ESCOMIDA/entity"
)

type FoodRepository struct{ DB *gorm.DB }

func NewFoodRepository(db *gorm.DB) *FoodRepository { return &FoodRepository{DB: db} }

func (r *FoodRepository) List() ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Select("id, category, name, price, calories, image").Find(&items).Error
	return items, err
}

func (r *FoodRepository) FilterByCategory(category string) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Select("id, category, name, price, calories, image").
		Where("category = ?", category).
		Find(&items).Error
	return items, err
}

func (r *FoodRepository) GetByID(id uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
