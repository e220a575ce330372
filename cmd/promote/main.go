package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/pokeroster/backend/internal/config"
	"github.com/pokeroster/backend/internal/database"
	"github.com/pokeroster/backend/internal/logger"
	"github.com/pokeroster/backend/internal/repositories"
	"github.com/pokeroster/backend/internal/services"
	"go.uber.org/zap"
)

// Promote grants or revokes the admin flag of an account.
// It is the only way the flag changes; tokens issued earlier keep their old value until they expire.
func main() {
	email := flag.String("email", "", "email of the account to change")
	revoke := flag.Bool("revoke", false, "remove the admin flag instead of granting it")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := repositories.NewUserRepository(db, logger.Logger)
	normalized := services.NormalizeEmail(*email)
	isAdmin := !*revoke

	if err := userRepo.SetAdmin(ctx, normalized, isAdmin); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Logger.Error("No account with this email", zap.String("email", normalized))
		} else {
			logger.Logger.Error("Failed to update admin flag", zap.Error(err))
		}
		logger.Sync()
		os.Exit(1)
	}

	logger.Logger.Info("Admin flag updated", zap.String("email", normalized), zap.Bool("is_admin", isAdmin))
}
