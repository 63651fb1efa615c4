package config

import (
	"fmt"
	"os"

	"github.com/Lokitha-S/NutriNova/models"
	"github.com/Lokitha-S/NutriNova/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Warn("env_file_not_loaded", zap.Error(err))
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		utils.Logger.Fatal("database_connection_failed", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.FoodEntry{},
		&models.NutritionRecommendation{},
		&models.NutritionReport{},
	)
	if err != nil {
		utils.Logger.Fatal("auto_migrate_failed", zap.Error(err))
	}
}
