// Package tax contains the tax computation use cases.
package tax

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

func newCompareUseCase() (*CompareRegimesUseCase, *stubCalculationRepository) {
	rules := newFY2025Rules()
	calcRepo := &stubCalculationRepository{}
	calculate := NewCalculateTaxUseCase(rules, calcRepo, nil, nil)
	return NewCompareRegimesUseCase(calculate), calcRepo
}

func TestCompareRegimes_ConcreteScenario(t *testing.T) {
	// Gross 1,200,000, no deductions: old regime owes 163,800, new owes 71,500.
	// The new regime saves 92,300, which is 7.69% of gross income.
	uc, _ := newCompareUseCase()

	out, err := uc.Execute(context.Background(), CompareRegimesInput{
		UserID:            uuid.New(),
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(1_200_000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmp := out.Comparison
	mustEqual(t, "old total", cmp.OldRegime.TotalTax, dec(163_800))
	mustEqual(t, "new total", cmp.NewRegime.TotalTax, dec(71_500))
	if cmp.RecommendedRegime != entity.RegimeCodeNew {
		t.Errorf("expected recommendation %q, got %q", entity.RegimeCodeNew, cmp.RecommendedRegime)
	}
	mustEqual(t, "savings_amount", cmp.SavingsAmount, dec(92_300))
	mustEqual(t, "savings_percentage", cmp.SavingsPercentage, decimal.NewFromFloat(7.69))
}

func TestCompareRegimes_MatchesSingleRegimeCalculations(t *testing.T) {
	// Each side of the comparison must be field-for-field identical to a
	// standalone calculation of the same regime.
	rules := newFY2025Rules()
	calculate := NewCalculateTaxUseCase(rules, &stubCalculationRepository{}, nil, nil)
	compare := NewCompareRegimesUseCase(calculate)

	userID := uuid.New()
	deductions := map[string]decimal.Decimal{
		entity.SectionCode80C: dec(150_000),
		entity.SectionCode80D: dec(40_000),
	}

	cmpOut, err := compare.Execute(context.Background(), CompareRegimesInput{
		UserID:            userID,
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(1_800_000),
		Deductions:        deductions,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, regime := range []entity.RegimeCode{entity.RegimeCodeOld, entity.RegimeCodeNew} {
		single, err := calculate.Execute(context.Background(), CalculateTaxInput{
			UserID:            userID,
			FinancialYearCode: "FY2025_26",
			RegimeCode:        regime,
			GrossIncome:       dec(1_800_000),
			Deductions:        deductions,
		})
		if err != nil {
			t.Fatalf("unexpected error for regime %s: %v", regime, err)
		}

		got := cmpOut.Comparison.NewRegime
		if regime == entity.RegimeCodeOld {
			got = cmpOut.Comparison.OldRegime
		}
		if !reflect.DeepEqual(got, single.Calculation) {
			t.Errorf("comparison side %s differs from standalone calculation", regime)
		}
	}
}

func TestCompareRegimes_TieKeepsOldRegime(t *testing.T) {
	// Zero income taxes to zero under both regimes; a tie must not flip the
	// recommendation to "new".
	uc, _ := newCompareUseCase()

	out, err := uc.Execute(context.Background(), CompareRegimesInput{
		UserID:            uuid.New(),
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmp := out.Comparison
	if cmp.RecommendedRegime != entity.RegimeCodeOld {
		t.Errorf("expected tie to recommend %q, got %q", entity.RegimeCodeOld, cmp.RecommendedRegime)
	}
	mustEqual(t, "savings_amount", cmp.SavingsAmount, dec(0))
	mustEqual(t, "savings_percentage", cmp.SavingsPercentage, dec(0))
}

func TestCompareRegimes_OldRegimeWinsWithHeavyDeductions(t *testing.T) {
	// With every cap fully used the old regime can undercut the new one at
	// moderate incomes; the savings fields describe the winning margin.
	uc, _ := newCompareUseCase()

	out, err := uc.Execute(context.Background(), CompareRegimesInput{
		UserID:            uuid.New(),
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(950_000),
		Deductions: map[string]decimal.Decimal{
			entity.SectionCode80C: dec(150_000),
			entity.SectionCode80D: dec(100_000),
			entity.SectionCode24B: dec(200_000),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmp := out.Comparison
	// Old: 950,000 - 50,000 - 450,000 = 450,000 taxable, 5% slab tax 10,000,
	// fully rebated, total 0. New: 875,000 taxable, slab tax 37,500, no
	// rebate, cess 1,500, total 39,000.
	mustEqual(t, "old total", cmp.OldRegime.TotalTax, dec(0))
	mustEqual(t, "new total", cmp.NewRegime.TotalTax, dec(39_000))
	if cmp.RecommendedRegime != entity.RegimeCodeOld {
		t.Errorf("expected recommendation %q, got %q", entity.RegimeCodeOld, cmp.RecommendedRegime)
	}
	mustEqual(t, "savings_amount", cmp.SavingsAmount, dec(39_000))
}

func TestCompareRegimes_NeverPersists(t *testing.T) {
	uc, calcRepo := newCompareUseCase()

	_, err := uc.Execute(context.Background(), CompareRegimesInput{
		UserID:            uuid.New(),
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(1_200_000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calcRepo.saved) != 0 {
		t.Errorf("comparisons must not write history, found %d saved rows", len(calcRepo.saved))
	}
}

func TestCompareRegimes_UnknownYearPropagates(t *testing.T) {
	uc, _ := newCompareUseCase()

	_, err := uc.Execute(context.Background(), CompareRegimesInput{
		UserID:            uuid.New(),
		FinancialYearCode: "FY2098_99",
		GrossIncome:       dec(500_000),
	})

	var taxErr *domainerror.TaxError
	if !errors.As(err, &taxErr) {
		t.Fatalf("expected TaxError, got %v", err)
	}
	if taxErr.Code != domainerror.ErrCodeFinancialYearNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeFinancialYearNotFound, taxErr.Code)
	}
}
