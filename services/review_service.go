package services

import (
	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/repository"
)

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

type RatingIn struct {
	FoodItemID uint   `json:"id_alimento"`
	Score      int    `json:"puntuacion"`
	Comment    string `json:"comentario"`
}

// Rate upserts one review per valid entry. Entries missing the dish or the
// score are skipped silently; partial success is the expected behavior, not
// all-or-nothing.
func (s *ReviewService) Rate(userID uint, entries []RatingIn) error {
	for _, e := range entries {
		if e.FoodItemID == 0 || e.Score == 0 {
			continue
		}
		rev := entity.Review{
			UserID:     userID,
			FoodItemID: e.FoodItemID,
			Rating:     e.Score,
			Comment:    e.Comment,
		}
		if err := s.Repo.Upsert(&rev); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReviewService) Average(foodItemID uint) (float64, bool, error) {
	return s.Repo.Average(foodItemID)
}

// Averages maps dish id to mean rating; dishes without reviews map to nil,
// mirroring the original batch-ratings response.
func (s *ReviewService) Averages(foodItemIDs []uint) (map[uint]*float64, error) {
	found, err := s.Repo.Averages(foodItemIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[uint]*float64, len(foodItemIDs))
	for _, id := range foodItemIDs {
		if avg, ok := found[id]; ok {
			v := avg
			out[id] = &v
		} else {
			out[id] = nil
		}
	}
	return out, nil
}

func (s *ReviewService) TopRated(limit int) ([]repository.TopRatedFood, error) {
	return s.Repo.TopRated(limit)
}
