package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"recipe_backend/internal/app/config"
	authadapters "recipe_backend/internal/feature/auth/adapters"
	authentity "recipe_backend/internal/feature/auth/domain/entity"
	recipeentity "recipe_backend/internal/feature/recipe/domain/entity"
)

// DSN assembles the MySQL connection string from the database config.
func DSN(cfg config.Database) string {
	if cfg.Instance != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Instance, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

func OpenDB(cfg config.Database, runMigrations bool) *gorm.DB {
	dsn := DSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			// 起動はブロックしない。接続が回復するまで各クエリがエラーを返す。
			log.Printf("[WARN] DB connect failed after 60s, starting without a verified connection: %v", err)
			db, err = openDeferred(dsn)
			if err != nil {
				log.Fatalf("failed to initialize DB handle: %v", err)
			}
			return db
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		// マイグレーション（User, Recipe, Session）
		if err := db.AutoMigrate(
			&authentity.User{},
			&recipeentity.Recipe{},
			&authadapters.SessionModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// openDeferred はDBに触れずにハンドルだけ初期化します。
// 接続確認もバージョン取得も行わないため、DB停止中でも起動できます。
func openDeferred(dsn string) (*gorm.DB, error) {
	return gorm.Open(gmysql.New(gmysql.Config{
		DSN:                       dsn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
}
