// Package discovery contains the deduction discovery use cases.
package discovery

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
)

// GetSuggestionsInput represents the input for listing pending suggestions.
type GetSuggestionsInput struct {
	UserID uuid.UUID
}

// GetSuggestionsOutput represents the pending suggestions of a user.
type GetSuggestionsOutput struct {
	Suggestions []*entity.DeductionSuggestion
}

// GetSuggestionsUseCase lists a user's pending deduction suggestions.
type GetSuggestionsUseCase struct {
	suggestionRepo adapter.SuggestionRepository
}

// NewGetSuggestionsUseCase creates a new GetSuggestionsUseCase instance.
func NewGetSuggestionsUseCase(suggestionRepo adapter.SuggestionRepository) *GetSuggestionsUseCase {
	return &GetSuggestionsUseCase{
		suggestionRepo: suggestionRepo,
	}
}

// Execute returns the user's pending suggestions, newest first.
func (uc *GetSuggestionsUseCase) Execute(ctx context.Context, input GetSuggestionsInput) (*GetSuggestionsOutput, error) {
	suggestions, err := uc.suggestionRepo.FindPendingByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}

	return &GetSuggestionsOutput{Suggestions: suggestions}, nil
}
