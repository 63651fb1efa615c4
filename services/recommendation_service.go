package services

import (
	"context"
	"errors"

	"github.com/Lokitha-S/NutriNova/models"

	"gorm.io/gorm"
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

type RecommendationService struct{ db *gorm.DB }

func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{db: db}
}

// MarkRead flips the unread flag. Rows belonging to other users are
// indistinguishable from missing ones.
func (s *RecommendationService) MarkRead(ctx context.Context, userID, recommendationID uint) error {
	var rec models.NutritionRecommendation
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", recommendationID, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecommendationNotFound
		}
		return err
	}

	rec.IsRead = true
	return s.db.WithContext(ctx).Save(&rec).Error
}

func (s *RecommendationService) List(ctx context.Context, userID uint) ([]models.NutritionRecommendation, error) {
	var recs []models.NutritionRecommendation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}
