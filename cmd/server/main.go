// @title           A1.art Gateway API
// @version         1.0.0
// @description     Gateway service wrapping the A1.art image generation workflow: upload an image, submit a generation task, poll its status.

// @contact.name   API Support

// @host      localhost:1989
// @BasePath  /

package main

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"a1art-gateway/docs"
	"a1art-gateway/internal/a1art"
	"a1art-gateway/internal/config"
	"a1art-gateway/internal/handlers"
	"a1art-gateway/internal/middleware"
	"a1art-gateway/internal/services"
	"a1art-gateway/internal/storage"
	"a1art-gateway/internal/templates"
)

func main() {
	// Load .env if present; a missing file is fine in deployed environments.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := newLogger(cfg.Environment)

	if cfg.A1APIKey == "" {
		logger.Warn().Msg("API_KEY is not set; outbound A1.art calls will be rejected by the provider")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Wire components; each gets its collaborators and logger explicitly.
	client := a1art.NewClient(cfg.A1BaseURL, cfg.A1APIKey, cfg.A1Region, logger)
	templateStore := templates.Load(cfg.TemplatesPath, logger)
	localStore := storage.NewLocal(cfg.InputDir)
	taskService := services.NewTaskService(client, localStore, templateStore, logger)

	tasksHandler := handlers.NewTasksHandler(taskService, cfg)
	templatesHandler := handlers.NewTemplatesHandler(templateStore)

	router := gin.Default()
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", handlers.HealthHandler)

	// Static front-end
	indexPath := filepath.Join(cfg.StaticDir, "index.html")
	if _, err := os.Stat(indexPath); err == nil {
		router.Static("/static", cfg.StaticDir)
		router.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})
	}

	// Task creation and polling
	router.POST("/create", tasksHandler.Create)
	router.POST("/generate", tasksHandler.Generate)
	router.GET("/templates", templatesHandler.List)
	router.GET("/status/:task_id", tasksHandler.Status)

	logger.Info().Str("port", cfg.Port).Str("region", cfg.A1Region).Int("templates", templateStore.Len()).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func newLogger(environment string) zerolog.Logger {
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Logger()

	if environment == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return logger
}
