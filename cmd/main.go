package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kjc6735/schedule-app/config"
	"github.com/kjc6735/schedule-app/db"
	"github.com/kjc6735/schedule-app/internal/auth/handler"
	repo "github.com/kjc6735/schedule-app/internal/auth/repository/postgres"
	"github.com/kjc6735/schedule-app/internal/auth/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.Migrate(cfg.DatabaseURL, "file://migrations"); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresUserRepository(dbPool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
	userService := service.NewUserService(userRepo, tokenService, cfg.BcryptCost)
	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New()
	app.Use(logger.New(), recover.New())
	handler.RegisterRoutes(app, authHandler, userHandler, tokenService)

	log.Fatal(app.Listen(":" + cfg.Port))
}
