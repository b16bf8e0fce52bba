// Package record contains the insurance and loan record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
)

// ListLoansInput represents the input for listing loans.
type ListLoansInput struct {
	UserID uuid.UUID
}

// ListLoansOutput represents the user's loans.
type ListLoansOutput struct {
	Loans []*entity.Loan
}

// ListLoansUseCase lists a user's loans.
type ListLoansUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewListLoansUseCase creates a new ListLoansUseCase instance.
func NewListLoansUseCase(loanRepo adapter.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{
		loanRepo: loanRepo,
	}
}

// Execute returns the user's loans.
func (uc *ListLoansUseCase) Execute(ctx context.Context, input ListLoansInput) (*ListLoansOutput, error) {
	loans, err := uc.loanRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	return &ListLoansOutput{Loans: loans}, nil
}
