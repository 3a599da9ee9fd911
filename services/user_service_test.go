package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/repository"
	"github.com/akaXala/ESCOMIDA/utils"
)

func TestEnsureProfileCreatesCartLazily(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")

	svc := NewUserService(repository.NewUserRepository(db), repository.NewCartRepository(db))

	var carts int64
	require.NoError(t, db.Model(&entity.Cart{}).Count(&carts).Error)
	assert.Zero(t, carts)

	got, err := svc.EnsureProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	require.NoError(t, db.Model(&entity.Cart{}).Count(&carts).Error)
	assert.Equal(t, int64(1), carts)

	// Second contact reuses the same cart.
	_, err = svc.EnsureProfile(user.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.Cart{}).Count(&carts).Error)
	assert.Equal(t, int64(1), carts)
}

func TestRegisterPhoneOnce(t *testing.T) {
	db := testDB(t)
	u := entity.User{Email: "cliente@ipn.mx", Name: "Test", Role: "cliente"}
	require.NoError(t, db.Create(&u).Error)

	svc := NewUserService(repository.NewUserRepository(db), repository.NewCartRepository(db))

	exists, err := svc.RegisterPhone(u.ID, "5511223344")
	require.NoError(t, err)
	assert.False(t, exists)

	// Re-registration reports alreadyExists and keeps the stored number.
	exists, err = svc.RegisterPhone(u.ID, "5599999999")
	require.NoError(t, err)
	assert.True(t, exists)

	var stored entity.User
	require.NoError(t, db.First(&stored, u.ID).Error)
	assert.Equal(t, "5511223344", stored.Phone)
}

func TestRegisterPhoneValidation(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")

	svc := NewUserService(repository.NewUserRepository(db), repository.NewCartRepository(db))

	for _, bad := range []string{"", "123", "55112233445", "55-11-22-33", "abcdefghij"} {
		_, err := svc.RegisterPhone(user.ID, bad)
		assert.ErrorIs(t, err, ErrInvalidPhone, "phone %q", bad)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	user, err := svc.Register("Cliente@IPN.mx", "supersecreta", "Ana")
	require.NoError(t, err)
	assert.Equal(t, "cliente@ipn.mx", user.Email)
	assert.Equal(t, "cliente", user.Role)
	assert.NotEqual(t, "supersecreta", user.Password)

	_, err = svc.Register("cliente@ipn.mx", "otracosa", "Ana")
	require.Error(t, err)

	token, logged, err := svc.Login("cliente@ipn.mx", "supersecreta")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims := utils.Claims{}
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "cliente", claims.Role)

	_, _, err = svc.Login("cliente@ipn.mx", "incorrecta")
	require.Error(t, err)
}

func TestFavoritesRoundTrip(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	taco, agua := seedCatalog(t, db)

	svc := NewFavoriteService(repository.NewFavoriteRepository(db))

	require.NoError(t, svc.Add(user.ID, taco.ID))
	// Double add is insert-or-ignore.
	require.NoError(t, svc.Add(user.ID, taco.ID))

	isFav, err := svc.Check(user.ID, taco.ID)
	require.NoError(t, err)
	assert.True(t, isFav)
	isFav, err = svc.Check(user.ID, agua.ID)
	require.NoError(t, err)
	assert.False(t, isFav)

	list, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, taco.Name, list[0].Name)

	require.NoError(t, svc.Remove(user.ID, taco.ID))
	list, err = svc.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Remove then re-add must work; the removed row must not linger in the
	// unique index and swallow the new insert.
	require.NoError(t, svc.Add(user.ID, taco.ID))
	isFav, err = svc.Check(user.ID, taco.ID)
	require.NoError(t, err)
	assert.True(t, isFav)
	list, err = svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
