// Package tax contains the tax computation use cases.
package tax

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/domain/entity"
)

// CompareRegimesInput represents the input for a regime comparison.
type CompareRegimesInput struct {
	UserID            uuid.UUID
	FinancialYearCode string
	GrossIncome       decimal.Decimal
	Deductions        map[string]decimal.Decimal
}

// CompareRegimesOutput represents the output of a regime comparison.
type CompareRegimesOutput struct {
	Comparison *entity.RegimeComparison
}

// CompareRegimesUseCase runs the single-regime calculator once per regime on
// the same income and deductions and recommends the cheaper regime.
type CompareRegimesUseCase struct {
	calculate *CalculateTaxUseCase
}

// NewCompareRegimesUseCase creates a new CompareRegimesUseCase instance.
func NewCompareRegimesUseCase(calculate *CalculateTaxUseCase) *CompareRegimesUseCase {
	return &CompareRegimesUseCase{
		calculate: calculate,
	}
}

// Execute performs the comparison. Comparisons are never persisted; both
// calculations run with SaveCalculation disabled. The new regime simply
// ignores the claimed deductions, which is not an error.
//
// The recommendation is based on total tax payable alone. A strict savings > 0
// is required to recommend "new"; a tie keeps the status-quo "old" regime.
func (uc *CompareRegimesUseCase) Execute(ctx context.Context, input CompareRegimesInput) (*CompareRegimesOutput, error) {
	oldOut, err := uc.calculate.Execute(ctx, CalculateTaxInput{
		UserID:            input.UserID,
		FinancialYearCode: input.FinancialYearCode,
		RegimeCode:        entity.RegimeCodeOld,
		GrossIncome:       input.GrossIncome,
		Deductions:        input.Deductions,
	})
	if err != nil {
		return nil, err
	}

	newOut, err := uc.calculate.Execute(ctx, CalculateTaxInput{
		UserID:            input.UserID,
		FinancialYearCode: input.FinancialYearCode,
		RegimeCode:        entity.RegimeCodeNew,
		GrossIncome:       input.GrossIncome,
		Deductions:        input.Deductions,
	})
	if err != nil {
		return nil, err
	}

	savings := oldOut.Calculation.TotalTax.Sub(newOut.Calculation.TotalTax)
	recommended := entity.RegimeCodeOld
	if savings.IsPositive() {
		recommended = entity.RegimeCodeNew
	}

	savingsAmount := savings.Abs()
	savingsPercentage := decimal.Zero
	if input.GrossIncome.IsPositive() {
		savingsPercentage = savingsAmount.Div(input.GrossIncome).Mul(hundred).Round(2)
	}

	return &CompareRegimesOutput{
		Comparison: &entity.RegimeComparison{
			FinancialYearCode: input.FinancialYearCode,
			GrossIncome:       input.GrossIncome,
			OldRegime:         oldOut.Calculation,
			NewRegime:         newOut.Calculation,
			RecommendedRegime: recommended,
			SavingsAmount:     savingsAmount,
			SavingsPercentage: savingsPercentage,
		},
	}, nil
}
