// Package dto defines data transfer objects for the recipe HTTP API.
package dto

// CreateRecipeReq represents the request body for POST /recipes.
// Ingredients may be omitted or empty; title and instructions are required.
type CreateRecipeReq struct {
	Title        string   `json:"title" binding:"required"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions" binding:"required"`
}

// BranchRecipeReq represents the request body for POST /recipes/branch.
type BranchRecipeReq struct {
	ParentRecipeID string   `json:"parentRecipeId" binding:"required"`
	Ingredients    []string `json:"ingredients"`
	Instructions   string   `json:"instructions" binding:"required"`
}

// DeleteRecipeReq represents the request body for POST /recipes/delete.
type DeleteRecipeReq struct {
	RecipeID string `json:"recipeId" binding:"required"`
}
