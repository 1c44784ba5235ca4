// Package entity defines the domain entities for the recipe feature.
package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Ingredients is an ordered list of ingredient strings.
// It is persisted as a JSON-encoded TEXT column so element order survives
// a write/read round trip.
type Ingredients []string

// Value implements driver.Valuer for GORM.
func (i Ingredients) Value() (driver.Value, error) {
	if i == nil {
		i = Ingredients{}
	}
	data, err := json.Marshal(i)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ingredients: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for GORM.
func (i *Ingredients) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*i = Ingredients{}
		return nil
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("unsupported ingredients column type %T", src)
	}
}

// Recipe represents a cooking recipe, possibly branched from a parent recipe.
// Branched recipes record their parent's ID; the parent row itself is never
// touched, so lineage is discovered by querying children.
type Recipe struct {
	// ID is the unique identifier for the recipe (UUID string).
	ID string `gorm:"primaryKey;size:36"`

	// Title is the recipe's display title.
	Title string `gorm:"size:255;not null"`

	// Ingredients is the ordered ingredient list.
	Ingredients Ingredients `gorm:"type:text"`

	// Instructions is the free-text preparation instructions.
	Instructions string `gorm:"type:text;not null"`

	// UserID references the owning user. Set once at creation.
	UserID string `gorm:"index;size:36;not null"`

	// ParentRecipeID references the recipe this one was branched from.
	// Nil for recipes created directly.
	ParentRecipeID *string `gorm:"index;size:36"`

	// CreatedAt is the timestamp when the recipe was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the recipe was last updated.
	UpdatedAt time.Time
}

// IsBranch returns true if the recipe was branched from a parent recipe.
func (r *Recipe) IsBranch() bool {
	return r.ParentRecipeID != nil
}
