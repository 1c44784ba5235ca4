package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"recipe_backend/internal/app/config"
	"recipe_backend/internal/app/di"
	"recipe_backend/internal/app/router"
	authadapters "recipe_backend/internal/feature/auth/adapters"
	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	authusecase "recipe_backend/internal/feature/auth/usecase"
	recipeadapters "recipe_backend/internal/feature/recipe/adapters"
	recipehandler "recipe_backend/internal/feature/recipe/transport/handler"
	recipeusecase "recipe_backend/internal/feature/recipe/usecase"
	infradb "recipe_backend/internal/platform/db"
	infraredis "recipe_backend/internal/platform/redis"
	"recipe_backend/internal/platform/token"
)

func main() {
	// config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg.Database, cfg.RunMigrations)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to MySQL sessions.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	recipeRepo := recipeadapters.NewRecipeMySQL(db)

	// セッショントークンの署名コーデック
	tokens := token.NewCodec(cfg.Session.Secret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokens, cfg.Session.TTL)
	recipeUC := recipeusecase.NewRecipeUsecase(recipeRepo, cfg.Recipe.RequireParent)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	recipeH := recipehandler.NewRecipeHandler(recipeUC)

	// ルータ生成
	router := router.NewRouter(authH, recipeH, authUC)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
