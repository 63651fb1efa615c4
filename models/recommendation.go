package models

import (
    "gorm.io/gorm"
)

type NutritionRecommendation struct {
    gorm.Model
    UserID             uint   `gorm:"index;not null"`
    RecommendationType string `gorm:"size:20"` // nutrient, calorie, meal, general
    RecommendationText string `gorm:"type:text;not null"`
    IsRead             bool   `gorm:"default:false"`
}
