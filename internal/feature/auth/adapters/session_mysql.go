// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"recipe_backend/internal/feature/auth/domain/entity"
	"recipe_backend/internal/feature/auth/usecase"

	"gorm.io/gorm"
)

// sessionMySQL is a MySQL implementation of the SessionRepository interface.
// It serves as the fallback session backend when Redis is unavailable.
type sessionMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionMySQL implements SessionRepository.
var _ usecase.SessionRepository = (*sessionMySQL)(nil)

// NewSessionMySQL creates a new instance of sessionMySQL.
func NewSessionMySQL(db *gorm.DB) *sessionMySQL {
	return &sessionMySQL{db: db}
}

// Create persists a new session to the database.
func (r *sessionMySQL) Create(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID retrieves a session by its opaque ID.
func (r *sessionMySQL) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Delete removes a session by its ID.
func (r *sessionMySQL) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&SessionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}
