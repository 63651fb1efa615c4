package services

import (
	"context"
	"errors"

	"github.com/Lokitha-S/NutriNova/models"

	"gorm.io/gorm"
)

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

type ProfileInput struct {
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	Height              float64 `json:"height"`
	Weight              float64 `json:"weight"`
	ActivityLevel       string  `json:"activity_level"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
	CalorieGoal         int     `json:"calorie_goal"`
}

// Get returns the user's profile, or a zero-value one when none has
// been saved yet.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserProfile{UserID: userID}, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) Upsert(ctx context.Context, userID uint, in ProfileInput) (*models.UserProfile, error) {
	profile := models.UserProfile{
		UserID:              userID,
		Age:                 in.Age,
		Gender:              in.Gender,
		Height:              in.Height,
		Weight:              in.Weight,
		ActivityLevel:       in.ActivityLevel,
		DietaryRestrictions: in.DietaryRestrictions,
		CalorieGoal:         in.CalorieGoal,
	}

	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Assign(profile).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
