package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /api/speech_to_text
// Speech recognition is not integrated; returns a fixed transcription.
func SpeechToText(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"text":    "I had a chicken salad with olive oil dressing for lunch.",
	})
}

// POST /api/image_analysis
// Food recognition is not integrated; validates the upload and returns
// mock detections.
func ImageAnalysis(c *gin.Context) {
	file, err := c.FormFile("food_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"detected_foods": []gin.H{
			{"name": "Apple", "confidence": 0.95},
			{"name": "Banana", "confidence": 0.85},
		},
	})
}
