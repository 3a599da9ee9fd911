package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/repository"
)

type FoodService struct {
	Repo *repository.FoodRepository
}

func NewFoodService(repo *repository.FoodRepository) *FoodService {
	return &FoodService{Repo: repo}
}

func (s *FoodService) List() ([]entity.FoodItem, error) {
	return s.Repo.List()
}

func (s *FoodService) FilterByCategory(category string) ([]entity.FoodItem, error) {
	return s.Repo.FilterByCategory(category)
}

func (s *FoodService) Detail(id uint) (*entity.FoodItem, error) {
	item, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	return item, err
}
