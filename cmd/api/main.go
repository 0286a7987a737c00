package main

import (
	"context"
	"log"

	_ "backend/api/swagger" // swagger docs
	"backend/internal/audit"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/license"
	"backend/internal/middleware"
	"backend/internal/observability"
	"backend/internal/service"
	"backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Concierge CMS API
// @version         1.0
// @description     Content, RBAC, audit and live-chat API for the concierge marketing site.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("connected to PostgreSQL")

	if err := database.SeedAdmin(db, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}

	// Identity resolver needs the DB for the token-subject → role lookup.
	middleware.Init(db)

	// Optional Redis bridge for multi-instance chat fan-out.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("unable to reach redis, chat fan-out stays in-process", zap.Error(err))
			rdb = nil
		} else {
			logger.Info("connected to redis")
		}
	}

	hub := ws.NewHub(rdb, logger)
	go hub.Run(context.Background())

	signer, err := license.NewSigner(cfg.LicenseSigningKey)
	if err != nil {
		logger.Fatal("license signer init failed", zap.Error(err))
	}

	recorder := audit.NewRecorder(db, logger)

	// Services
	userService := service.NewUserService(db, middleware.GetJWTSecret())
	contentService := service.NewContentService(db)
	publicService := service.NewPublicService(db)
	themeService := service.NewThemeService(db)
	requestService := service.NewRequestService(db)
	chatService := service.NewChatService(db, hub)
	auditService := service.NewAuditService(db)
	backupService := service.NewBackupService(db)
	licenseService := service.NewLicenseService(db, signer)
	if err := licenseService.Seed(context.Background(), cfg.TenantID, cfg.LicenseToken); err != nil {
		logger.Warn("unable to seed license token", zap.Error(err))
	}
	mediaService := service.NewMediaService(db, cfg.MediaDir)

	// Handlers
	authHandler := handler.NewAuthHandler(userService, recorder)
	userHandler := handler.NewUserHandler(userService, recorder)
	contentHandler := handler.NewContentHandler(contentService, recorder)
	publicHandler := handler.NewPublicHandler(publicService)
	themeHandler := handler.NewThemeHandler(themeService, recorder, cfg.TenantID)
	requestHandler := handler.NewRequestHandler(requestService, recorder)
	chatHandler := handler.NewChatHandler(chatService, hub)
	auditHandler := handler.NewAuditHandler(auditService)
	backupHandler := handler.NewBackupHandler(backupService)
	licenseHandler := handler.NewLicenseHandler(licenseService, cfg.TenantID)
	mediaHandler := handler.NewMediaHandler(mediaService, recorder)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Uploaded assets
	router.Static("/media", cfg.MediaDir)

	root := router.Group("")
	authHandler.RegisterRoutes(root)
	userHandler.RegisterRoutes(root)
	contentHandler.RegisterRoutes(root)
	publicHandler.RegisterRoutes(root)
	themeHandler.RegisterRoutes(root)
	requestHandler.RegisterRoutes(root)
	chatHandler.RegisterRoutes(root)
	auditHandler.RegisterRoutes(root)
	backupHandler.RegisterRoutes(root)
	licenseHandler.RegisterRoutes(root)
	mediaHandler.RegisterRoutes(root)

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
