// Package tax contains the tax computation use cases.
package tax

import (
	"context"
	"errors"
	"fmt"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// YearWithRegimes pairs a financial year with its configured regimes.
type YearWithRegimes struct {
	Year    *entity.FinancialYear
	Regimes []*entity.TaxRegime
}

// ListYearsOutput represents the output of listing supported years.
type ListYearsOutput struct {
	Years []*YearWithRegimes
}

// ListYearsUseCase lists the active financial years and their regimes so
// clients can populate year/regime pickers.
type ListYearsUseCase struct {
	ruleRepo adapter.RuleRepository
}

// NewListYearsUseCase creates a new ListYearsUseCase instance.
func NewListYearsUseCase(ruleRepo adapter.RuleRepository) *ListYearsUseCase {
	return &ListYearsUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute lists the active years. A year missing one of its regimes is still
// listed with the regimes it has; resolution errors other than not-found fail
// the listing.
func (uc *ListYearsUseCase) Execute(ctx context.Context) (*ListYearsOutput, error) {
	years, err := uc.ruleRepo.ListActiveYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial years: %w", err)
	}

	result := make([]*YearWithRegimes, 0, len(years))
	for _, year := range years {
		entry := &YearWithRegimes{Year: year}
		for _, code := range []entity.RegimeCode{entity.RegimeCodeOld, entity.RegimeCodeNew} {
			rules, err := uc.ruleRepo.FindRegimeRules(ctx, year.ID, code)
			if err != nil {
				if errors.Is(err, domainerror.ErrRegimeNotFound) {
					continue
				}
				return nil, fmt.Errorf("failed to resolve regimes for %s: %w", year.Code, err)
			}
			entry.Regimes = append(entry.Regimes, rules.Regime)
		}
		result = append(result, entry)
	}

	return &ListYearsOutput{Years: result}, nil
}
