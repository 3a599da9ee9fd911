package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/akaXala/ESCOMIDA/entity"
)

// SeedAdmin creates the admin account once, from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog inserts a small starter menu so a fresh install is browsable.
func SeedCatalog() error {
	var count int64
	if err := db.Model(&entity.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.FoodItem{
		{Category: "Desayunos", Name: "Huevos Rancheros", RequiredIngredients: "Huevo, tortilla, salsa", Price: 55, Calories: 480, Image: "/img/huevos-rancheros.jpg"},
		{Category: "Tortas", Name: "Torta Cubana", RequiredIngredients: "Pan, pierna, milanesa, queso", Price: 70, Calories: 820, Image: "/img/torta-cubana.jpg"},
		{Category: "Chilaquiles", Name: "Chilaquiles con Pollo", RequiredIngredients: "Totopos, pollo, crema", Price: 60, Calories: 640, Image: "/img/chilaquiles-pollo.jpg"},
		{Category: "Tacos", Name: "Tacos de Pastor", RequiredIngredients: "Tortilla, pastor, piña", Price: 45, Calories: 520, Image: "/img/tacos-pastor.jpg"},
		{Category: "Bebidas Calientes", Name: "Café de Olla", RequiredIngredients: "Café, canela, piloncillo", Price: 25, Calories: 90, Image: "/img/cafe-olla.jpg"},
		{Category: "Bebidas Frías", Name: "Agua del Día", RequiredIngredients: "Fruta de temporada", Price: 15, Calories: 110, Image: "/img/agua-dia.jpg"},
		{Category: "Postres", Name: "Pay de Limón", RequiredIngredients: "Galleta, limón, lechera", Price: 35, Calories: 380, Image: "/img/pay-limon.jpg"},
	}
	return db.Create(&items).Error
}
