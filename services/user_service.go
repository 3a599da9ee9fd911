package services

import (
	"regexp"

	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/repository"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

type UserService struct {
	UserRepo *repository.UserRepository
	CartRepo *repository.CartRepository
}

func NewUserService(ur *repository.UserRepository, cr *repository.CartRepository) *UserService {
	return &UserService{UserRepo: ur, CartRepo: cr}
}

// EnsureProfile is hit on first authenticated contact: it guarantees the
// user's cart exists (carts are created lazily, not at registration) and
// returns the profile.
func (s *UserService) EnsureProfile(userID uint) (*entity.User, error) {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.CartRepo.GetOrCreateCart(userID); err != nil {
		return nil, err
	}
	return u, nil
}

// RegisterPhone stores a 10-digit number once; re-registration reports
// alreadyExists without overwriting.
func (s *UserService) RegisterPhone(userID uint, phone string) (alreadyExists bool, err error) {
	if !phonePattern.MatchString(phone) {
		return false, ErrInvalidPhone
	}
	return s.UserRepo.SetPhone(userID, phone)
}
