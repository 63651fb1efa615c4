package models

import (
    "gorm.io/gorm"
)

// UserProfile holds each user's biometric and goal attributes.
type UserProfile struct {
    gorm.Model
    UserID              uint    `gorm:"uniqueIndex;not null"`
    Age                 int
    Gender              string  `gorm:"size:10"`
    Height              float64 // in cm
    Weight              float64 // in kg
    ActivityLevel       string  `gorm:"size:20"`  // sedentary, light, moderate, active, very active
    DietaryRestrictions string  `gorm:"size:200"` // comma-separated list
    CalorieGoal         int
}
