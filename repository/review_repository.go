package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akaXala/ESCOMIDA/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

// Upsert keeps exactly one review per (user, food item); a resubmission
// overwrites rating and comment.
func (r *ReviewRepository) Upsert(rev *entity.Review) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "food_item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(rev).Error
}

// Average returns the mean rating for one dish; ok is false when it has no
// reviews yet.
func (r *ReviewRepository) Average(foodItemID uint) (avg float64, ok bool, err error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err = r.DB.Model(&entity.Review{}).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Where("food_item_id = ?", foodItemID).
		Scan(&row).Error
	if err != nil {
		return 0, false, err
	}
	return row.Avg, row.Count > 0, nil
}

// Averages returns the mean rating per dish for a batch of ids. Dishes
// without reviews are absent from the map.
func (r *ReviewRepository) Averages(foodItemIDs []uint) (map[uint]float64, error) {
	out := make(map[uint]float64, len(foodItemIDs))
	if len(foodItemIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		FoodItemID uint
		Avg        float64
	}
	err := r.DB.Model(&entity.Review{}).
		Select("food_item_id, AVG(rating) AS avg").
		Where("food_item_id IN ?", foodItemIDs).
		Group("food_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.FoodItemID] = row.Avg
	}
	return out, nil
}

type TopRatedFood struct {
	ID       uint    `json:"id_alimento"`
	Name     string  `json:"nombre"`
	Price    int64   `json:"precio"`
	Calories int     `json:"calorias"`
	Image    string  `json:"imagen"`
	Average  float64 `json:"promedio"`
	Reviews  int64   `json:"total_resenas"`
}

// TopRated lists the best-rated dishes (average, then review count).
func (r *ReviewRepository) TopRated(limit int) ([]TopRatedFood, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []TopRatedFood
	err := r.DB.Table("food_items AS f").
		Select("f.id, f.name, f.price, f.calories, f.image, AVG(r.rating) AS average, COUNT(r.rating) AS reviews").
		Joins("JOIN reviews r ON r.food_item_id = f.id").
		Where("r.deleted_at IS NULL").
		Group("f.id").
		Order("average DESC, reviews DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
