package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"sus-vacinacao-server/internal/config"
	"sus-vacinacao-server/internal/models"
	"sus-vacinacao-server/internal/repository"
	"sus-vacinacao-server/internal/routes"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load environment variables; a missing .env is fine in production
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, using process environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config")
	}

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		logger.Fatal().Err(err).Msg("error connecting to database")
	}

	// Seed the first API user so tokens can be issued on a fresh database
	if err := bootstrapAdmin(db, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("error seeding admin user")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, db, cfg, logger)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("port", cfg.Port).Msg("server running")
	if err := router.Run(serverAddr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// bootstrapAdmin creates the admin user from ADMIN_USERNAME/ADMIN_PASSWORD if
// it does not exist yet. Only the bcrypt hash is stored.
func bootstrapAdmin(db *gorm.DB, cfg *config.Config, logger zerolog.Logger) error {
	ctx := context.Background()
	usuarios := repository.NewUsuarioRepository(db)

	existente, err := usuarios.GetByUsername(ctx, cfg.Admin.Username)
	if err != nil {
		return err
	}
	if existente != nil {
		return nil
	}

	admin := models.Usuario{
		Username: cfg.Admin.Username,
		Ativo:    true,
	}
	if err := admin.SetSenha(cfg.Admin.Password); err != nil {
		return err
	}
	if err := usuarios.Create(ctx, &admin); err != nil {
		return err
	}

	logger.Info().Str("username", admin.Username).Msg("admin user created")
	return nil
}
