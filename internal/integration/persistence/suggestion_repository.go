// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
	"github.com/chronyx/backend/internal/integration/persistence/model"
)

// suggestionRepository implements the adapter.SuggestionRepository interface.
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository instance.
func NewSuggestionRepository(db *gorm.DB) adapter.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

// CreateBatch inserts a batch of suggestions.
func (r *suggestionRepository) CreateBatch(ctx context.Context, suggestions []*entity.DeductionSuggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	suggestionModels := make([]*model.DeductionSuggestionModel, 0, len(suggestions))
	for _, suggestion := range suggestions {
		suggestionModels = append(suggestionModels, model.DeductionSuggestionFromEntity(suggestion))
	}

	result := r.db.WithContext(ctx).Create(suggestionModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a suggestion by its ID.
func (r *suggestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeductionSuggestion, error) {
	var suggestionModel model.DeductionSuggestionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&suggestionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSuggestionNotFound
		}
		return nil, result.Error
	}
	return suggestionModel.ToEntity(), nil
}

// FindPendingByUser retrieves the user's pending suggestions, newest first.
func (r *suggestionRepository) FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeductionSuggestion, error) {
	var suggestionModels []model.DeductionSuggestionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.SuggestionStatusPending)).
		Order("created_at DESC").
		Find(&suggestionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	suggestions := make([]*entity.DeductionSuggestion, 0, len(suggestionModels))
	for i := range suggestionModels {
		suggestions = append(suggestions, suggestionModels[i].ToEntity())
	}
	return suggestions, nil
}

// Update saves status changes to a suggestion.
func (r *suggestionRepository) Update(ctx context.Context, suggestion *entity.DeductionSuggestion) error {
	suggestionModel := model.DeductionSuggestionFromEntity(suggestion)
	result := r.db.WithContext(ctx).Save(suggestionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeletePendingByUser clears the user's pending suggestions before a rescan.
func (r *suggestionRepository) DeletePendingByUser(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.SuggestionStatusPending)).
		Delete(&model.DeductionSuggestionModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
