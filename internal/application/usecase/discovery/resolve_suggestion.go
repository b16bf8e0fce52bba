// Package discovery contains the deduction discovery use cases.
package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// SuggestionResolution is the action taken on a pending suggestion.
type SuggestionResolution string

const (
	ResolutionAccept  SuggestionResolution = "accept"
	ResolutionDismiss SuggestionResolution = "dismiss"
)

// ResolveSuggestionInput represents the input for resolving a suggestion.
type ResolveSuggestionInput struct {
	UserID       uuid.UUID
	SuggestionID uuid.UUID
	Resolution   SuggestionResolution
}

// ResolveSuggestionOutput represents the resolved suggestion.
type ResolveSuggestionOutput struct {
	Suggestion *entity.DeductionSuggestion
}

// ResolveSuggestionUseCase accepts or dismisses a pending suggestion. Only the
// owning user may resolve it, and a suggestion is resolved at most once.
type ResolveSuggestionUseCase struct {
	suggestionRepo adapter.SuggestionRepository
}

// NewResolveSuggestionUseCase creates a new ResolveSuggestionUseCase instance.
func NewResolveSuggestionUseCase(suggestionRepo adapter.SuggestionRepository) *ResolveSuggestionUseCase {
	return &ResolveSuggestionUseCase{
		suggestionRepo: suggestionRepo,
	}
}

// Execute applies the resolution.
func (uc *ResolveSuggestionUseCase) Execute(ctx context.Context, input ResolveSuggestionInput) (*ResolveSuggestionOutput, error) {
	suggestion, err := uc.suggestionRepo.FindByID(ctx, input.SuggestionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSuggestionNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeSuggestionNotFound,
				"suggestion not found",
				domainerror.ErrSuggestionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load suggestion: %w", err)
	}

	if suggestion.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNotRecordOwner,
			"suggestion belongs to another user",
			domainerror.ErrNotRecordOwner,
		)
	}

	if suggestion.Status != entity.SuggestionStatusPending {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeSuggestionAlreadyResolved,
			fmt.Sprintf("suggestion is already %s", suggestion.Status),
			domainerror.ErrSuggestionAlreadyResolved,
		)
	}

	switch input.Resolution {
	case ResolutionAccept:
		suggestion.MarkAccepted()
	case ResolutionDismiss:
		suggestion.MarkDismissed()
	default:
		return nil, fmt.Errorf("unknown suggestion resolution %q", input.Resolution)
	}

	if err := uc.suggestionRepo.Update(ctx, suggestion); err != nil {
		return nil, fmt.Errorf("failed to update suggestion: %w", err)
	}

	return &ResolveSuggestionOutput{Suggestion: suggestion}, nil
}
