// Package tax contains the tax computation use cases.
package tax

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
)

// defaultHistoryLimit caps how many saved calculations a single request returns.
const defaultHistoryLimit = 50

// GetHistoryInput represents the input for fetching calculation history.
type GetHistoryInput struct {
	UserID uuid.UUID
	Limit  int
}

// GetHistoryOutput represents the output of fetching calculation history.
type GetHistoryOutput struct {
	Calculations []*entity.TaxCalculation
}

// GetHistoryUseCase lists the caller's saved calculations, newest first.
type GetHistoryUseCase struct {
	calcRepo adapter.CalculationRepository
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(calcRepo adapter.CalculationRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		calcRepo: calcRepo,
	}
}

// Execute fetches the history.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}

	calculations, err := uc.calcRepo.FindByUser(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calculation history: %w", err)
	}

	return &GetHistoryOutput{Calculations: calculations}, nil
}
