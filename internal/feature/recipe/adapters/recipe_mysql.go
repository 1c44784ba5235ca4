// Package adapters はrecipeフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipe_backend/internal/feature/recipe/domain/entity"
	"recipe_backend/internal/feature/recipe/usecase"
)

// recipeMySQL はRecipeRepositoryインターフェースのMySQL実装です。
type recipeMySQL struct {
	db *gorm.DB
}

// recipeMySQLがRecipeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecipeRepository = (*recipeMySQL)(nil)

// NewRecipeMySQL は指定されたgorm.DB接続でrecipeMySQLの新しいインスタンスを生成します。
func NewRecipeMySQL(db *gorm.DB) *recipeMySQL {
	return &recipeMySQL{db: db}
}

// Create はレシピをデータベースに追加します。
func (r *recipeMySQL) Create(ctx context.Context, recipe *entity.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// FindByID はIDでレシピを取得します。
// レシピが存在しない場合、usecase.ErrRecipeNotFoundを返します。
func (r *recipeMySQL) FindByID(ctx context.Context, id string) (*entity.Recipe, error) {
	var recipe entity.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// DeleteByIDAndOwner はIDと所有者の両方に一致するレシピを削除します。
// 一致する行が無い場合はno-opとして成功を返します。
func (r *recipeMySQL) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entity.Recipe{}).Error
}

// ListByOwner は指定された所有者のレシピをストレージ順で返します。
func (r *recipeMySQL) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Recipe, error) {
	var recipes []*entity.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListByParentOwner は親レシピの所有者が指定ユーザーであるレシピを返します。
// 親レシピIDをサブクエリで解決します。
func (r *recipeMySQL) ListByParentOwner(ctx context.Context, ownerID string) ([]*entity.Recipe, error) {
	parentIDs := r.db.WithContext(ctx).Model(&entity.Recipe{}).Select("id").Where("user_id = ?", ownerID)

	var recipes []*entity.Recipe
	if err := r.db.WithContext(ctx).
		Where("parent_recipe_id IN (?)", parentIDs).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
