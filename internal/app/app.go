package app

import (
	"database/sql"
	"fmt"
	"log"

	"evermore/internal/config"
	"evermore/internal/handlers"
	"evermore/internal/middleware"
	"evermore/internal/pdf"
	"evermore/internal/routes"
	"evermore/internal/services"
	"evermore/internal/store"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "evermore/docs"
)

func Run() {
	cfg := config.LoadConfig()

	middleware.SetSigningKey(cfg.Auth.JWTSecret)

	// === Record store ===
	var recordStore store.Client
	switch cfg.Store.Backend {
	case "hosted":
		recordStore = store.NewHosted(cfg.Store.BaseURL, cfg.Store.APIKey)
	case "postgres":
		db, err := sql.Open("postgres", cfg.Store.PostgresDSN)
		if err != nil {
			log.Fatal("failed to open database: ", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("failed to close database: %v", err)
			}
		}()
		recordStore = store.NewPostgres(db)
	default:
		log.Fatalf("unknown store backend %q", cfg.Store.Backend)
	}

	// === Services ===
	var mailer services.EmailService
	if cfg.Email.SMTPHost != "" {
		mailer = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	boardService := services.NewBoardService(recordStore)
	conversionService := services.NewConversionService(recordStore)
	transitionService := services.NewTransitionService(recordStore, conversionService, mailer)
	inquiryService := services.NewInquiryService(recordStore)
	opportunityService := services.NewOpportunityService(recordStore)

	quoteGen := pdf.NewQuoteGenerator(cfg.Files.RootDir)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(cfg.Auth.Staff)
	boardHandler := handlers.NewBoardHandler(boardService, transitionService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityService)
	quoteHandler := handlers.NewQuoteHandler(opportunityService, quoteGen)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		boardHandler,
		inquiryHandler,
		opportunityHandler,
		quoteHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
