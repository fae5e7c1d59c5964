package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"taskflow_backend/internal/app/di"
	"taskflow_backend/internal/app/router"
	authadapters "taskflow_backend/internal/feature/auth/adapters"
	authhandler "taskflow_backend/internal/feature/auth/transport/handler"
	authusecase "taskflow_backend/internal/feature/auth/usecase"
	taskhandler "taskflow_backend/internal/feature/tasks/transport/handler"
	taskusecase "taskflow_backend/internal/feature/tasks/usecase"
	"taskflow_backend/internal/platform/config"
	infradb "taskflow_backend/internal/platform/db"
	jwtmw "taskflow_backend/internal/platform/jwt"
	infraredis "taskflow_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg.DSN(), cfg.RunMigrations)

	// Redis（未設定・接続不可の場合はキャッシュなしで起動）
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	taskRepo := di.NewTaskRepository(rdb, db, 5*time.Minute)

	// Token service
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiry)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)

	// Usecase
	accountUC := authusecase.NewAccountUsecase(userRepo, generator)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(accountUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// ルータ生成
	router := router.NewRouter(authH, taskH, verifier, userRepo, cfg.FrontendURL)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
