package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"cafe_backend/internal/app/di"
	"cafe_backend/internal/app/middleware"
	"cafe_backend/internal/app/router"
	authadapters "cafe_backend/internal/feature/auth/adapters"
	authhandler "cafe_backend/internal/feature/auth/transport/handler"
	authusecase "cafe_backend/internal/feature/auth/usecase"
	cafeadapters "cafe_backend/internal/feature/cafes/adapters"
	cafehandler "cafe_backend/internal/feature/cafes/transport/handler"
	cafeusecase "cafe_backend/internal/feature/cafes/usecase"
	infradb "cafe_backend/internal/platform/db"
	infraredis "cafe_backend/internal/platform/redis"
	"cafe_backend/internal/platform/token"
)

const sessionTokenTTL = 7 * 24 * time.Hour

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] could not load .env: %v", err)
	}

	// db (sqlite file by default, postgres via DATABASE_URL)
	db := infradb.OpenDB(infradb.ConfigFromEnv())

	// Redis (optional; sessions fall back to the database)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Using database-backed sessions.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// SESSION_SECRET check (warning during development)
	secret := os.Getenv(token.EnvKeySessionSecret)
	if secret == "" {
		log.Println("[WARN] SESSION_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	cafeRepo := cafeadapters.NewCafeGorm(db)

	// One sweep at boot; redis sessions expire on their own.
	if n, err := sessionRepo.DeleteExpired(context.Background()); err != nil {
		slog.Warn("expired session cleanup failed", "error", err)
	} else if n > 0 {
		slog.Info("expired sessions removed", "count", n)
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo)
	cafeUC := cafeusecase.NewCafeUsecase(cafeRepo)

	// Session cookie codec
	codec := token.NewCodec(secret, sessionTokenTTL)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, codec)
	cafeH := cafehandler.NewCafeHandler(cafeUC)

	// Router
	r := router.NewRouter(authH, cafeH, middleware.CurrentUser(codec, authUC), "web/templates/*.html")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
