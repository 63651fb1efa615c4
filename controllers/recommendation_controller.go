package controllers

import (
	"errors"
	"net/http"

	"github.com/Lokitha-S/NutriNova/middlewares"
	"github.com/Lokitha-S/NutriNova/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Svc *services.RecommendationService
}

func NewRecommendationController(svc *services.RecommendationService) *RecommendationController {
	return &RecommendationController{Svc: svc}
}

// POST /api/mark_recommendation_read
func (h *RecommendationController) MarkRecommendationRead(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		RecommendationID uint `json:"recommendation_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing recommendation ID"})
		return
	}

	err := h.Svc.MarkRead(c.Request.Context(), userID, input.RecommendationID)
	if err != nil {
		if errors.Is(err, services.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recommendation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	middlewares.InvalidateUserCache(userID, "/api/dashboard_data")

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/recommendations
func (h *RecommendationController) ListRecommendations(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
