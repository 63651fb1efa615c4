package routes

import (
	"net/http"
	"time"

	"github.com/Lokitha-S/NutriNova/controllers"
	"github.com/Lokitha-S/NutriNova/middlewares"
	"github.com/Lokitha-S/NutriNova/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(services.NewProfileService(db))
	foodCtl := controllers.NewFoodEntryController(services.NewFoodEntryService(db))
	reportCtl := controllers.NewReportController(services.NewReportService(db))
	dashCtl := controllers.NewDashboardController(services.NewDashboardService(db))
	recCtl := controllers.NewRecommendationController(services.NewRecommendationService(db))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/login", authCtl.Login)
	}

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/logout", authCtl.Logout)

		api.GET("/profile", userCtl.GetProfile)
		api.PUT("/profile", userCtl.UpdateProfile)

		api.GET("/dashboard_data", middlewares.CacheMiddleware(30*time.Second), dashCtl.GetDashboardData)

		api.POST("/food_entry", foodCtl.AddFoodEntry)
		api.GET("/food_entries", foodCtl.ListFoodEntries)

		api.GET("/report_data", reportCtl.GetReportData)

		api.GET("/recommendations", recCtl.ListRecommendations)
		api.POST("/mark_recommendation_read", recCtl.MarkRecommendationRead)

		api.POST("/speech_to_text", controllers.SpeechToText)
		api.POST("/image_analysis", controllers.ImageAnalysis)
	}

	return r
}
