package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Username     string `gorm:"size:64;uniqueIndex;not null"`
    Email        string `gorm:"size:120;uniqueIndex;not null"`
    PasswordHash string `gorm:"size:128;not null"`
}
