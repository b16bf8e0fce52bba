// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/domain/entity"
)

// RegimeRules bundles a regime with its ordered slab table. Slabs are sorted by
// ascending slab order; an empty slab list for a resolved regime is a
// configuration integrity fault.
type RegimeRules struct {
	Regime *entity.TaxRegime
	Slabs  []*entity.TaxSlab
}

// RuleRepository defines read-only access to jurisdiction/year/regime
// configuration. The calculator treats it as a pure lookup dependency; it has
// no side effects.
type RuleRepository interface {
	// FindActiveYearByCode resolves an active financial year by its code.
	// Returns domainerror.ErrFinancialYearNotFound when the year is absent or inactive.
	FindActiveYearByCode(ctx context.Context, code string) (*entity.FinancialYear, error)

	// FindRegimeRules resolves a regime and its ordered slabs for a year.
	// Returns domainerror.ErrRegimeNotFound when no regime row exists.
	FindRegimeRules(ctx context.Context, financialYearID uuid.UUID, code entity.RegimeCode) (*RegimeRules, error)

	// FindDeductionRules returns the deduction-limit table of a year keyed by
	// section code.
	FindDeductionRules(ctx context.Context, financialYearID uuid.UUID) (map[string]*entity.DeductionRule, error)

	// ListActiveYears returns all active financial years, newest code first.
	ListActiveYears(ctx context.Context) ([]*entity.FinancialYear, error)
}
