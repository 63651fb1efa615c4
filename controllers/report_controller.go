// controllers/report_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/Lokitha-S/NutriNova/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

// GET /api/report_data?type={daily|weekly|monthly}&date=YYYY-MM-DD
func (h *ReportController) GetReportData(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	reportType := c.DefaultQuery("type", "daily")

	// Malformed dates silently fall back to today.
	anchor := time.Now().UTC()
	if v := c.Query("date"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			anchor = d
		}
	}

	out, err := h.Svc.Get(c.Request.Context(), userID, reportType, anchor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}
