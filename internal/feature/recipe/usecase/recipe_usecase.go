// Package usecase はrecipeフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"recipe_backend/internal/feature/recipe/domain/entity"

	"github.com/google/uuid"
)

// branchedRecipeTitle はブランチレシピに設定される既定タイトルです。
const branchedRecipeTitle = "Branched Recipe"

// RecipeRepository はレシピエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type RecipeRepository interface {
	// Create は新しいレシピをストレージに永続化します。
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID は指定されたIDに一致するレシピを取得します。
	// レシピが存在しない場合、ErrRecipeNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.Recipe, error)

	// DeleteByIDAndOwner はIDと所有者の両方に一致するレシピを削除します。
	// 一致する行が無い場合もエラーにしません（所有者のみ削除可能）。
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error

	// ListByOwner は指定された所有者のレシピをストレージ順で返します。
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Recipe, error)

	// ListByParentOwner は親レシピの所有者が指定ユーザーであるレシピを返します。
	ListByParentOwner(ctx context.Context, ownerID string) ([]*entity.Recipe, error)
}

// RecipeUsecase はレシピの所有権とリネージュのルールを適用します。
type RecipeUsecase struct {
	repo RecipeRepository

	// requireParent はブランチ時に親レシピの存在確認を行うかを制御します。
	requireParent bool
}

// NewRecipeUsecase はRecipeUsecaseの新しいインスタンスを生成します。
func NewRecipeUsecase(repo RecipeRepository, requireParent bool) *RecipeUsecase {
	return &RecipeUsecase{repo: repo, requireParent: requireParent}
}

// normalizeIngredients は空文字の要素を除去し、nilを空リストに正規化します。
// 要素の順序は保持されます。
func normalizeIngredients(ingredients []string) entity.Ingredients {
	out := make(entity.Ingredients, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing != "" {
			out = append(out, ing)
		}
	}
	return out
}

// Create は親を持たない新しいレシピを作成します。
func (u *RecipeUsecase) Create(ctx context.Context, ownerID, title string, ingredients []string, instructions string) (*entity.Recipe, error) {
	recipe := &entity.Recipe{
		ID:           uuid.NewString(),
		Title:        title,
		Ingredients:  normalizeIngredients(ingredients),
		Instructions: instructions,
		UserID:       ownerID,
	}
	if err := u.repo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// Branch は既存レシピを親とする派生レシピを作成します。
// 親レシピが存在しない場合、ErrParentNotFoundを返します（設定で無効化可能）。
// 親レシピの内容はコピーせず、親の行も変更しません。
func (u *RecipeUsecase) Branch(ctx context.Context, ownerID, parentID string, ingredients []string, instructions string) (*entity.Recipe, error) {
	if u.requireParent {
		if _, err := u.repo.FindByID(ctx, parentID); err != nil {
			if errors.Is(err, ErrRecipeNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
	}

	recipe := &entity.Recipe{
		ID:             uuid.NewString(),
		Title:          branchedRecipeTitle,
		Ingredients:    normalizeIngredients(ingredients),
		Instructions:   instructions,
		UserID:         ownerID,
		ParentRecipeID: &parentID,
	}
	if err := u.repo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create branched recipe: %w", err)
	}
	return recipe, nil
}

// Delete は所有者本人のレシピのみを削除します。
// IDと所有者が一致しない場合は何もしません（サイレントno-op）。
func (u *RecipeUsecase) Delete(ctx context.Context, ownerID, recipeID string) error {
	return u.repo.DeleteByIDAndOwner(ctx, recipeID, ownerID)
}

// ListOwn は指定された所有者のレシピ一覧を返します。
func (u *RecipeUsecase) ListOwn(ctx context.Context, ownerID string) ([]*entity.Recipe, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}

// ListBranchesOfOwner は指定ユーザーのレシピから派生したレシピ一覧を返します。
func (u *RecipeUsecase) ListBranchesOfOwner(ctx context.Context, ownerID string) ([]*entity.Recipe, error) {
	return u.repo.ListByParentOwner(ctx, ownerID)
}
