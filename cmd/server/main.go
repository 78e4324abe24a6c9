package main

import (
	"fmt"
	"log"
	"net/http"

	"gamereviews/backend/internal/auth"
	"gamereviews/backend/internal/config"
	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/handler"
	"gamereviews/backend/internal/store"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamereviews/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Gamer Reviews API
// @version         1.0
// @description     This is the API for the Gamer Reviews service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	db := database.Connect(config.AppConfig.DatabaseURL)

	reviewStore := store.NewReviewStore(db)
	reviewHandler := handler.NewReviewHandler(reviewStore)
	gameHandler := handler.NewGameHandler(reviewStore)
	authHandler := handler.NewAuthHandler(db)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.RegisterUser)
			authRoutes.POST("/login", authHandler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", authHandler.GetMe)
		}

		// Anti-forgery token bootstrap for the submission form
		apiV1.GET("/csrf", handler.IssueCSRFToken)

		// Review routes (public; a valid token just attaches the user)
		reviewRoutes := apiV1.Group("/reviews")
		reviewRoutes.Use(auth.OptionalAuthMiddleware())
		{
			reviewRoutes.GET("", reviewHandler.ListReviews)
			reviewRoutes.POST("", auth.CSRFMiddleware(), reviewHandler.SubmitReview)
		}

		// Game names for dropdowns
		apiV1.GET("/games", gameHandler.GetGameNames)
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddress)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddress))
}
