// Package usecase implements the business logic for the recipe feature.
package usecase

import "errors"

var (
	// ErrRecipeNotFound is returned when a recipe cannot be found by ID.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrParentNotFound is returned when branching from a recipe that does not exist.
	ErrParentNotFound = errors.New("parent recipe not found")
)
