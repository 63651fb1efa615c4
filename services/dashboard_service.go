package services

import (
	"context"
	"errors"
	"time"

	"github.com/Lokitha-S/NutriNova/models"

	"gorm.io/gorm"
)

const defaultCalorieGoal = 2000

type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

type DashboardEntry struct {
	ID       uint    `json:"id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
}

type DashboardRecommendation struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type DashboardSummary struct {
	DailyTotals     NutrientTotals              `json:"daily_totals"`
	CalorieGoal     int                         `json:"calorie_goal"`
	Meals           map[string][]DashboardEntry `json:"meals"`
	Recommendations []DashboardRecommendation   `json:"recommendations"`
}

// Summary reads the day's entries, sums the four tracked nutrients,
// groups entries by meal type and attaches the three most recent
// unread recommendations.
func (s *DashboardService) Summary(ctx context.Context, userID uint, today time.Time) (*DashboardSummary, error) {
	day := dayStartUTC(today)

	var entries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, day).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	out := &DashboardSummary{
		CalorieGoal:     defaultCalorieGoal,
		Meals:           map[string][]DashboardEntry{},
		Recommendations: []DashboardRecommendation{},
	}

	for _, e := range entries {
		out.DailyTotals.Calories += deref(e.Calories)
		out.DailyTotals.Protein += deref(e.Protein)
		out.DailyTotals.Carbs += deref(e.Carbs)
		out.DailyTotals.Fat += deref(e.Fat)

		mealType := e.MealType
		if mealType == "" {
			mealType = "Other"
		}
		out.Meals[mealType] = append(out.Meals[mealType], DashboardEntry{
			ID:       e.ID,
			FoodName: e.FoodName,
			Quantity: e.Quantity,
			Unit:     e.Unit,
			Calories: deref(e.Calories),
		})
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err == nil && profile.CalorieGoal > 0 {
		out.CalorieGoal = profile.CalorieGoal
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var recs []models.NutritionRecommendation
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Limit(3).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	for _, r := range recs {
		out.Recommendations = append(out.Recommendations, DashboardRecommendation{
			ID:        r.ID,
			Type:      r.RecommendationType,
			Text:      r.RecommendationText,
			CreatedAt: r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	return out, nil
}
