package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/taskforge/todo-service/config"
	"github.com/taskforge/todo-service/db"
	"github.com/taskforge/todo-service/internal/audit"
	authhandler "github.com/taskforge/todo-service/internal/auth/handler"
	authrepo "github.com/taskforge/todo-service/internal/auth/repository/postgres"
	authservice "github.com/taskforge/todo-service/internal/auth/service"
	flagcache "github.com/taskforge/todo-service/internal/featureflag/cache"
	flaghandler "github.com/taskforge/todo-service/internal/featureflag/handler"
	flagrepo "github.com/taskforge/todo-service/internal/featureflag/repository/postgres"
	flagservice "github.com/taskforge/todo-service/internal/featureflag/service"
	"github.com/taskforge/todo-service/internal/middleware"
	todohandler "github.com/taskforge/todo-service/internal/todo/handler"
	todorepo "github.com/taskforge/todo-service/internal/todo/repository/postgres"
	todoservice "github.com/taskforge/todo-service/internal/todo/service"
	"github.com/taskforge/todo-service/pkg/constant"
)

func main() {
	cfg := config.Load()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := db.Migrate(cfg.DBURL); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		log.Println("migrations applied")
		return
	}

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Printf("warn: redis unavailable, caching and rate limiting disabled: %v", err)
		redisClient = nil
	}

	authRepo := authrepo.NewAuthRepository(dbPool)
	recorder := audit.NewRecorder(authRepo)
	tokenService := authservice.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin, cfg.StaySignedInExpiryMin)
	authService := authservice.NewAuthService(authRepo, tokenService, authservice.NewBcryptHasher(), recorder, cfg)
	authHandler := authhandler.NewAuthHandler(authService, tokenService)

	todoService := todoservice.NewTodoService(todorepo.NewTodoRepository(dbPool), recorder)
	todoHandler := todohandler.NewTodoHandler(todoService)

	evalCache := flagcache.New(redisClient, time.Duration(cfg.FlagCacheTTLSec)*time.Second)
	flagService := flagservice.NewFlagService(flagrepo.NewFlagRepository(dbPool), evalCache, recorder)
	flagHandler := flaghandler.NewFlagHandler(flagService)

	limiter := middleware.NewRateLimiter(redisClient, cfg.RateLimitRequests,
		time.Duration(cfg.RateLimitWindowSec)*time.Second)

	app := fiber.New()
	authhandler.RegisterRoutes(app, authHandler, limiter.Limit("auth"))
	todohandler.RegisterRoutes(app, todoHandler, authHandler.RequireAuth)
	flaghandler.RegisterRoutes(app, flagHandler, authHandler.RequireRole(constant.RoleSystemAdmin))

	log.Printf("listening on %s", cfg.Addr())
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
