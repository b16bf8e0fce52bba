// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/domain/entity"
)

// SuggestionRepository defines persistence for deduction suggestions.
type SuggestionRepository interface {
	// CreateBatch inserts a batch of suggestions.
	CreateBatch(ctx context.Context, suggestions []*entity.DeductionSuggestion) error

	// FindByID retrieves a suggestion by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeductionSuggestion, error)

	// FindPendingByUser retrieves the user's pending suggestions, newest first.
	FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeductionSuggestion, error)

	// Update saves status changes to a suggestion.
	Update(ctx context.Context, suggestion *entity.DeductionSuggestion) error

	// DeletePendingByUser clears the user's pending suggestions before a rescan.
	DeletePendingByUser(ctx context.Context, userID uuid.UUID) error
}
