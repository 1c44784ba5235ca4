// Package handler はrecipeフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/app/middleware"
	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/transport/http/dto"
	"recipe_backend/internal/feature/recipe/usecase"
)

// RecipeUsecase はレシピ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type RecipeUsecase interface {
	Create(ctx context.Context, ownerID, title string, ingredients []string, instructions string) (*entity.Recipe, error)
	Branch(ctx context.Context, ownerID, parentID string, ingredients []string, instructions string) (*entity.Recipe, error)
	Delete(ctx context.Context, ownerID, recipeID string) error
	ListOwn(ctx context.Context, ownerID string) ([]*entity.Recipe, error)
	ListBranchesOfOwner(ctx context.Context, ownerID string) ([]*entity.Recipe, error)
}

// RecipeHandler はレシピ操作のHTTPリクエストを処理します。
type RecipeHandler struct {
	uc RecipeUsecase
}

// NewRecipeHandler は新しい RecipeHandler を作成します。
func NewRecipeHandler(uc RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// ownerID はSessionRequiredミドルウェアが設定した認証済みユーザーIDを返します。
func ownerID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// toItem はエンティティをレスポンスDTOに変換します。
func toItem(r *entity.Recipe) dto.RecipeItem {
	return dto.RecipeItem{
		ID:             r.ID,
		Title:          r.Title,
		Ingredients:    r.Ingredients,
		Instructions:   r.Instructions,
		ParentRecipeID: r.ParentRecipeID,
	}
}

// toItems はエンティティのスライスをレスポンスDTOに変換します。
func toItems(recipes []*entity.Recipe) []dto.RecipeItem {
	out := make([]dto.RecipeItem, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toItem(r))
	}
	return out
}

// Create は新規レシピ作成APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 作成失敗時は500を返却
// - 成功時は作成したレシピ付きで201を返却
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create recipe validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	recipe, err := h.uc.Create(c.Request.Context(), ownerID(c), req.Title, req.Ingredients, req.Instructions)
	if err != nil {
		slog.Error("create recipe failed", "error", err, "user_id", ownerID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}
	c.JSON(http.StatusCreated, toItem(recipe))
}

// Branch は既存レシピから派生レシピを作成するAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 親レシピ未検出時は404を返却（詳細メッセージは返さない）
// - 成功時は作成したレシピ付きで201を返却
func (h *RecipeHandler) Branch(c *gin.Context) {
	var req dto.BranchRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("branch recipe validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	recipe, err := h.uc.Branch(c.Request.Context(), ownerID(c), req.ParentRecipeID, req.Ingredients, req.Instructions)
	if err != nil {
		if errors.Is(err, usecase.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("branch recipe failed", "error", err, "user_id", ownerID(c), "parent_id", req.ParentRecipeID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to branch recipe"})
		return
	}
	c.JSON(http.StatusCreated, toItem(recipe))
}

// Delete はレシピ削除APIエンドポイントを処理します。
// 所有者が一致しない場合もサイレントno-opとして204を返します。
func (h *RecipeHandler) Delete(c *gin.Context) {
	var req dto.DeleteRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("delete recipe validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), ownerID(c), req.RecipeID); err != nil {
		slog.Error("delete recipe failed", "error", err, "user_id", ownerID(c), "recipe_id", req.RecipeID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMine は認証済みユーザーの所有レシピ一覧を返すAPIです。
func (h *RecipeHandler) ListMine(c *gin.Context) {
	recipes, err := h.uc.ListOwn(c.Request.Context(), ownerID(c))
	if err != nil {
		slog.Error("list recipes failed", "error", err, "user_id", ownerID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}
	c.JSON(http.StatusOK, toItems(recipes))
}

// ListBranches は認証済みユーザーのレシピから派生したレシピ一覧を返すAPIです。
func (h *RecipeHandler) ListBranches(c *gin.Context) {
	recipes, err := h.uc.ListBranchesOfOwner(c.Request.Context(), ownerID(c))
	if err != nil {
		slog.Error("list branched recipes failed", "error", err, "user_id", ownerID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list branched recipes"})
		return
	}
	c.JSON(http.StatusOK, toItems(recipes))
}
