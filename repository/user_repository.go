package repository

import (
	"gorm.io/gorm"

	"github.com/akaXala/ESCOMIDA/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

// SetPhone stores the number only once; a second registration is reported as
// alreadyExists instead of overwriting.
func (r *UserRepository) SetPhone(userID uint, phone string) (alreadyExists bool, err error) {
	u, err := r.GetByID(userID)
	if err != nil {
		return false, err
	}
	if u.Phone != "" {
		return true, nil
	}
	return false, r.DB.Model(&entity.User{}).Where("id = ?", userID).Update("phone", phone).Error
}
