package services

import (
	"context"
	"errors"
	"time"

	"github.com/Lokitha-S/NutriNova/models"

	"gorm.io/gorm"
)

var ErrMissingFields = errors.New("missing required fields")

type FoodEntryService struct{ db *gorm.DB }

func NewFoodEntryService(db *gorm.DB) *FoodEntryService { return &FoodEntryService{db: db} }

type FoodEntryInput struct {
	FoodName string   `json:"food_name"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Method   string   `json:"method"`
	MealType string   `json:"meal_type"`
}

// Add logs one food entry dated to the current UTC day. When no
// calories are supplied the nutrient fields get fixed placeholder
// values, standing in for an unintegrated nutrition lookup.
func (s *FoodEntryService) Add(ctx context.Context, userID uint, in FoodEntryInput, now time.Time) (*models.FoodEntry, error) {
	if in.FoodName == "" || in.Quantity == nil {
		return nil, ErrMissingFields
	}

	entry := models.FoodEntry{
		UserID:      userID,
		FoodName:    in.FoodName,
		Quantity:    *in.Quantity,
		Unit:        orDefault(in.Unit, "serving"),
		EntryMethod: orDefault(in.Method, "manual"),
		MealType:    orDefault(in.MealType, "Other"),
		EntryDate:   dayStartUTC(now),
		EntryTime:   now.UTC(),
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
	}

	if in.Calories == nil {
		entry.Calories = f64(100)
		entry.Protein = f64(5)
		entry.Carbs = f64(15)
		entry.Fat = f64(3)
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *FoodEntryService) ListByDate(ctx context.Context, userID uint, day time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, dayStartUTC(day)).
		Order("entry_time ASC").
		Find(&entries).Error
	return entries, err
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func f64(v float64) *float64 { return &v }
