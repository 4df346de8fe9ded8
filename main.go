package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"careermatch/config"
	"careermatch/database"
	"careermatch/handlers"
	"careermatch/middleware"
	"careermatch/services"
	"careermatch/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("no .env file found, using environment")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	authService := handlers.NewAuthService(cfg)
	authHandler := handlers.NewAuthHandler(db, authService)
	aiHandler := handlers.NewAIHandler(services.NewGateway(cfg.AI), db)
	profileHandler := handlers.NewProfileHandler(db)
	historyHandler := handlers.NewHistoryHandler(db)

	s3Service, s3Err := services.NewS3Service(cfg.S3)
	if s3Err != nil {
		utils.LogWarn("S3 not configured, exports will fail", map[string]string{"error": s3Err.Error()})
	}
	exportHandler := handlers.NewExportHandler(s3Service, s3Err, db)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.MaxRequestSize(1 << 20))
	r.Use(middleware.ValidateJSON())

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMin, time.Minute)
	r.Use(limiter.Limit())

	feedCache := middleware.NewResponseCache(cfg.FeedCacheTTL)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)

	r.GET("/api/opportunities", feedCache.Cache(), handlers.ListOpportunities)
	r.GET("/api/opportunities/:id", handlers.GetOpportunity)

	authed := r.Group("/api", authService.Middleware())
	{
		authed.POST("/ai/analyze-resume", aiHandler.AnalyzeResume)
		authed.POST("/ai/smart-match", aiHandler.SmartMatch)
		authed.POST("/ai/generate-outreach", aiHandler.GenerateOutreach)
		authed.POST("/ai/tailor-resume", aiHandler.TailorResume)
		authed.POST("/ai/generate-cover-letter", aiHandler.GenerateCoverLetter)

		authed.GET("/profile", profileHandler.GetProfile)
		authed.PUT("/profile", profileHandler.UpdateProfile)

		authed.GET("/history/matches", historyHandler.ListMatches)
		authed.GET("/history/exports", historyHandler.ListExports)
		authed.DELETE("/history/exports/:id", historyHandler.DeleteExport)

		authed.POST("/export/resume", exportHandler.ExportResume)
		authed.POST("/export/cover-letter", exportHandler.ExportCoverLetter)
	}

	utils.LogInfo("starting server", map[string]string{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
