package services

import (
	"testing"
	"time"

	"github.com/Lokitha-S/NutriNova/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// A second connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if errMigrate := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.FoodEntry{},
		&models.NutritionRecommendation{},
		&models.NutritionReport{},
	); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedEntry(t *testing.T, db *gorm.DB, userID uint, date string, name string, cal, pro, carb, fat *float64) models.FoodEntry {
	t.Helper()

	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}

	entry := models.FoodEntry{
		UserID:      userID,
		FoodName:    name,
		Quantity:    1,
		Unit:        "serving",
		Calories:    cal,
		Protein:     pro,
		Carbs:       carb,
		Fat:         fat,
		MealType:    "lunch",
		EntryDate:   day,
		EntryTime:   day,
		EntryMethod: "manual",
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	return entry
}
