package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/pokeroster/backend/docs"
	"github.com/pokeroster/backend/internal/auth/middleware"
	"github.com/pokeroster/backend/internal/auth/service"
	"github.com/pokeroster/backend/internal/config"
	"github.com/pokeroster/backend/internal/database"
	"github.com/pokeroster/backend/internal/handlers"
	"github.com/pokeroster/backend/internal/logger"
	loggerMiddleware "github.com/pokeroster/backend/internal/logger/middleware"
	sharedMiddleware "github.com/pokeroster/backend/internal/middlewares"
	"github.com/pokeroster/backend/internal/pokeapi"
	"github.com/pokeroster/backend/internal/repositories"
	"github.com/pokeroster/backend/internal/services"
	"github.com/pokeroster/backend/internal/storage"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title PokeRoster API
// @version 1.0
// @description API for the Pokemon reference and team builder
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting PokeRoster API")

	// Connect to database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.Migrate(db, database.MigrationsPath()); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Token issuer holds the process-wide secret
	tokenIssuer := service.NewTokenIssuer(cfg.JWT.Secret)
	profileStorage := storage.NewLocalStorage(cfg.Upload.Dir)
	pokeClient := pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout, logger.Logger)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	pokemonRepo := repositories.NewPokemonRepository(db, logger.Logger)
	favoriteRepo := repositories.NewFavoriteRepository(db, logger.Logger)
	teamRepo := repositories.NewTeamRepository(db, logger.Logger)

	// Initialize services
	userService := services.NewUserService(userRepo, profileStorage, tokenIssuer, logger.Logger)
	pokemonService := services.NewPokemonService(pokeClient, logger.Logger)
	catalogService := services.NewCatalogService(pokemonRepo, logger.Logger)
	favoriteService := services.NewFavoriteService(favoriteRepo)
	teamService := services.NewTeamService(teamRepo, logger.Logger)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, logger.Logger)
	pokemonHandler := handlers.NewPokemonHandler(pokemonService, logger.Logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger.Logger)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, logger.Logger)
	teamHandler := handlers.NewTeamHandler(teamService, logger.Logger)
	profileHandler := handlers.NewProfileHandler(profileStorage, logger.Logger)
	healthHandler := handlers.NewHealthHandler(db, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.AuthMiddleware(tokenIssuer, logger.Logger)
	adminMiddleware := middleware.AdminMiddleware(logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(sharedMiddleware.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(sharedMiddleware.RecoveryMiddleware(logger.Logger))
	r.Use(sharedMiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(sharedMiddleware.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Get("/health", healthHandler.Health)
	profileHandler.RegisterRoutes(r)

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		userHandler.RegisterRoutes(r, authMiddleware)
		pokemonHandler.RegisterRoutes(r)
		catalogHandler.RegisterRoutes(r, authMiddleware, adminMiddleware)
		favoriteHandler.RegisterRoutes(r, authMiddleware)
		teamHandler.RegisterRoutes(r, authMiddleware)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
