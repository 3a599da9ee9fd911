package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/repository"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One named in-memory database per test; cache=shared keeps the pool's
	// connections on the same database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.FoodItem{},
		&entity.Cart{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Review{},
		&entity.Favorite{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Name: "Test", Phone: "5512345678", Role: "cliente"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedCatalog(t *testing.T, db *gorm.DB) (taco, agua entity.FoodItem) {
	t.Helper()
	taco = entity.FoodItem{Category: "Tacos", Name: "Taco de pastor", RequiredIngredients: "Tortilla, carne", Price: 40, Calories: 250, Image: "/img/taco.webp"}
	agua = entity.FoodItem{Category: "Bebidas", Name: "Agua de horchata", RequiredIngredients: "Agua, arroz", Price: 15, Calories: 120, Image: "/img/agua.webp"}
	require.NoError(t, db.Create(&taco).Error)
	require.NoError(t, db.Create(&agua).Error)
	return taco, agua
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewFoodRepository(db))
}

func newOrderService(db *gorm.DB, notifier StatusNotifier) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db), notifier)
}

func addLine(t *testing.T, svc *CartService, userID uint, item entity.FoodItem, qty int) {
	t.Helper()
	_, err := svc.Add(userID, &AddToCartIn{
		Category:            item.Category,
		Name:                item.Name,
		RequiredIngredients: item.RequiredIngredients,
		Price:               item.Price,
		Image:               item.Image,
		Quantity:            qty,
		FoodItemID:          item.ID,
	})
	require.NoError(t, err)
}
