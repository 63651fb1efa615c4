package models

import (
    "time"

    "gorm.io/gorm"
)

// One FoodEntry per logged food item. Nutrient fields are pointers so an
// unset value is distinguishable from an explicit zero.
type FoodEntry struct {
    gorm.Model
    UserID      uint      `gorm:"index;not null"`
    FoodName    string    `gorm:"size:100;not null"`
    Quantity    float64   `gorm:"not null"`
    Unit        string    `gorm:"size:20;default:serving"`
    Calories    *float64
    Protein     *float64  // in grams
    Carbs       *float64  // in grams
    Fat         *float64  // in grams
    MealType    string    `gorm:"size:20"` // breakfast, lunch, dinner, snack
    EntryDate   time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD
    EntryTime   time.Time
    EntryMethod string    `gorm:"size:20"` // manual, speech, image
}
