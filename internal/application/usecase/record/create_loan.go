// Package record contains the insurance and loan record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// CreateLoanInput represents the input for creating a loan.
type CreateLoanInput struct {
	UserID             uuid.UUID
	LoanType           entity.LoanType
	Lender             string
	Principal          decimal.Decimal
	InterestRate       decimal.Decimal
	AnnualInterestPaid decimal.Decimal
}

// CreateLoanOutput represents the created loan.
type CreateLoanOutput struct {
	Loan *entity.Loan
}

// CreateLoanUseCase records a new loan for a user.
type CreateLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewCreateLoanUseCase creates a new CreateLoanUseCase instance.
func NewCreateLoanUseCase(loanRepo adapter.LoanRepository) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute validates and persists the loan.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, input CreateLoanInput) (*CreateLoanOutput, error) {
	if !entity.IsValidLoanType(input.LoanType) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidLoanType,
			fmt.Sprintf("loan type %q is not supported", input.LoanType),
			domainerror.ErrInvalidLoanType,
		)
	}
	if input.Principal.IsNegative() || input.InterestRate.IsNegative() || input.AnnualInterestPaid.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordAmount,
			"loan amounts must not be negative",
			domainerror.ErrInvalidRecordAmount,
		)
	}
	if input.Lender == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"lender is required",
			nil,
		)
	}

	loan := entity.NewLoan(input.UserID, input.LoanType, input.Lender, input.Principal, input.InterestRate, input.AnnualInterestPaid)
	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	return &CreateLoanOutput{Loan: loan}, nil
}
