package router

import (
	"recipe_backend/internal/app/middleware"
	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	recipehandler "recipe_backend/internal/feature/recipe/transport/handler"
	"recipe_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, recipes *recipehandler.RecipeHandler,
	resolver middleware.SessionResolver) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（セッション発行）
	r.POST("/login", authHandler.Login)
	// ログアウトは冪等なので認証ミドルウェアを通さない
	// （セッションが無くても200を返す）
	r.POST("/logout", authHandler.Logout)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// middleware.SessionRequired() ミドルウェアを適用
	// → リクエストにセッショントークンが必要になる
	auth.Use(middleware.SessionRequired(resolver))
	{
		auth.POST("/recipes", recipes.Create)
		auth.POST("/recipes/branch", recipes.Branch)
		auth.POST("/recipes/delete", recipes.Delete)
		auth.GET("/my/recipes", recipes.ListMine)
		auth.GET("/my/branched-recipes", recipes.ListBranches)
	}

	return r
}
