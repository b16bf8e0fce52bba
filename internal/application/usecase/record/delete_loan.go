// Package record contains the insurance and loan record use cases.
package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/application/adapter"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// DeleteLoanInput represents the input for deleting a loan.
type DeleteLoanInput struct {
	UserID uuid.UUID
	LoanID uuid.UUID
}

// DeleteLoanUseCase soft-deletes a user's loan.
type DeleteLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewDeleteLoanUseCase creates a new DeleteLoanUseCase instance.
func NewDeleteLoanUseCase(loanRepo adapter.LoanRepository) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute deletes the loan after an ownership check.
func (uc *DeleteLoanUseCase) Execute(ctx context.Context, input DeleteLoanInput) error {
	loan, err := uc.loanRepo.FindByID(ctx, input.LoanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeLoanNotFound,
				"loan not found",
				domainerror.ErrLoanNotFound,
			)
		}
		return fmt.Errorf("failed to load loan: %w", err)
	}

	if loan.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeNotRecordOwner,
			"loan belongs to another user",
			domainerror.ErrNotRecordOwner,
		)
	}

	if err := uc.loanRepo.Delete(ctx, input.LoanID); err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}

	return nil
}
