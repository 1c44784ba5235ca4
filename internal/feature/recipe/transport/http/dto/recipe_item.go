package dto

// RecipeItem represents a recipe in the API response.
// It contains only the public-facing fields needed by clients.
type RecipeItem struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Ingredients    []string `json:"ingredients"`
	Instructions   string   `json:"instructions"`
	ParentRecipeID *string  `json:"parentRecipeId,omitempty"`
}
