package main

import (
	"log"
	"net/http"
	"time"

	"qa-forum/cache"
	"qa-forum/config"
	"qa-forum/handlers"
	"qa-forum/middleware"
	"qa-forum/repositories"
	"qa-forum/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db := config.InitDB(cfg.DatabaseDSN)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	voteRepo := repositories.NewVoteRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// Initialize services
	sidebarTTL := time.Duration(cfg.SidebarCacheTTLH) * time.Hour
	authService := services.NewAuthService(userRepo)
	questionService := services.NewQuestionService(questionRepo, tagRepo, voteRepo)
	answerService := services.NewAnswerService(answerRepo, questionRepo, activityRepo)
	voteService := services.NewVoteService(voteRepo, questionRepo, answerRepo, activityRepo)
	feedService := services.NewFeedService(activityRepo, questionRepo, answerRepo)
	sidebarService := services.NewSidebarService(userRepo, tagRepo, cache.New(), sidebarTTL)
	userService := services.NewUserService(userRepo, activityRepo)
	tagService := services.NewTagService(tagRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService, sidebarService, cfg)
	answerHandler := handlers.NewAnswerHandler(answerService)
	voteHandler := handlers.NewVoteHandler(voteService)
	tagHandler := handlers.NewTagHandler(tagService)
	userHandler := handlers.NewUserHandler(userService, feedService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public listings; optional auth so hot-question demotion and the
		// page-size preference can see the viewer
		questions := v1.Group("/questions")
		questions.Use(middleware.OptionalAuthMiddleware())
		questions.Use(middleware.PageSizeMiddleware(userRepo, cfg.DefaultPageSize))
		{
			questions.GET("", questionHandler.GetQuestions)
			questions.GET("/hot", questionHandler.GetHotQuestions)
			questions.GET("/tags/:tags", questionHandler.GetTaggedQuestions)
			questions.GET("/question/:id/:slug", questionHandler.GetDiscussion)
		}

		// Public profile pages
		users := v1.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
		}

		// Tags
		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/users/me/settings", userHandler.UpdateSettings)

			protected.POST("/questions", questionHandler.CreateQuestion)
			protected.POST("/questions/:id/answers", answerHandler.CreateAnswer)
			protected.POST("/answers/:id/correct", answerHandler.MarkCorrect)
			protected.POST("/votes", voteHandler.CastVote)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
