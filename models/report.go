package models

import (
    "time"

    "gorm.io/datatypes"
    "gorm.io/gorm"
)

// NutritionReport caches a denormalized report payload per
// (user, type, start, end). The composite unique index keeps
// concurrent cache misses from inserting duplicate rows.
type NutritionReport struct {
    gorm.Model
    UserID     uint           `gorm:"not null;uniqueIndex:idx_report_key"`
    ReportType string         `gorm:"size:20;uniqueIndex:idx_report_key"` // daily, weekly, monthly
    StartDate  time.Time      `gorm:"not null;uniqueIndex:idx_report_key"`
    EndDate    time.Time      `gorm:"not null;uniqueIndex:idx_report_key"`
    ReportData datatypes.JSON
}
