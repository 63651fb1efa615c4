package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Lokitha-S/NutriNova/middlewares"
	"github.com/Lokitha-S/NutriNova/services"

	"github.com/gin-gonic/gin"
)

type FoodEntryController struct {
	Svc *services.FoodEntryService
}

func NewFoodEntryController(svc *services.FoodEntryService) *FoodEntryController {
	return &FoodEntryController{Svc: svc}
}

// POST /api/food_entry
func (h *FoodEntryController) AddFoodEntry(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.FoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	entry, err := h.Svc.Add(c.Request.Context(), userID, input, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	middlewares.InvalidateUserCache(userID, "/api/dashboard_data")

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"entry_id": entry.ID,
		"message":  fmt.Sprintf("Added %s to your food log", entry.FoodName),
	})
}

// GET /api/food_entries?date=YYYY-MM-DD
func (h *FoodEntryController) ListFoodEntries(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	day := time.Now().UTC()
	if v := c.Query("date"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			day = d
		}
	}

	entries, err := h.Svc.ListByDate(c.Request.Context(), userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
