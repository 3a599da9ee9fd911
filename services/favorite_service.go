package services

import (
	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/repository"
)

type FavoriteService struct {
	Repo *repository.FavoriteRepository
}

func NewFavoriteService(repo *repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{Repo: repo}
}

func (s *FavoriteService) Add(userID, foodItemID uint) error {
	return s.Repo.Add(userID, foodItemID)
}

func (s *FavoriteService) Remove(userID, foodItemID uint) error {
	return s.Repo.Remove(userID, foodItemID)
}

func (s *FavoriteService) Check(userID, foodItemID uint) (bool, error) {
	return s.Repo.Exists(userID, foodItemID)
}

func (s *FavoriteService) List(userID uint) ([]entity.FoodItem, error) {
	return s.Repo.ListForUser(userID)
}
