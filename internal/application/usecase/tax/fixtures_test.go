// Package tax contains the tax computation use cases.
package tax

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// stubRuleRepository is a fixed in-memory rule set. Injecting it makes the
// calculator fully deterministic and I/O-free in unit tests.
type stubRuleRepository struct {
	years      map[string]*entity.FinancialYear
	regimes    map[uuid.UUID]map[entity.RegimeCode]*adapter.RegimeRules
	deductions map[uuid.UUID]map[string]*entity.DeductionRule
}

func (r *stubRuleRepository) FindActiveYearByCode(_ context.Context, code string) (*entity.FinancialYear, error) {
	year, ok := r.years[code]
	if !ok || !year.IsActive {
		return nil, domainerror.ErrFinancialYearNotFound
	}
	return year, nil
}

func (r *stubRuleRepository) FindRegimeRules(_ context.Context, financialYearID uuid.UUID, code entity.RegimeCode) (*adapter.RegimeRules, error) {
	rules, ok := r.regimes[financialYearID][code]
	if !ok {
		return nil, domainerror.ErrRegimeNotFound
	}
	return rules, nil
}

func (r *stubRuleRepository) FindDeductionRules(_ context.Context, financialYearID uuid.UUID) (map[string]*entity.DeductionRule, error) {
	return r.deductions[financialYearID], nil
}

func (r *stubRuleRepository) ListActiveYears(_ context.Context) ([]*entity.FinancialYear, error) {
	var years []*entity.FinancialYear
	for _, year := range r.years {
		if year.IsActive {
			years = append(years, year)
		}
	}
	return years, nil
}

// dec is a shorthand for integer decimal literals in tests.
func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func decPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// newFY2025Rules builds the FY2025_26 configuration used throughout the tests:
//
// new regime: standard deduction 75,000; rebate up to 25,000 below 700,000;
// slabs 0-300k@0, 300k-700k@5, 700k-1,000k@10, 1,000k-1,200k@15,
// 1,200k-1,500k@20, 1,500k+@30.
//
// old regime: standard deduction 50,000; rebate up to 12,500 below 500,000;
// slabs 0-250k@0, 250k-500k@5, 500k-1,000k@20, 1,000k+@30; deductions allowed
// with 80C capped at 150,000, 80D at 100,000, 24B at 200,000, 80E uncapped.
func newFY2025Rules() *stubRuleRepository {
	year := entity.NewFinancialYear("FY2025_26", "FY 2025-26", true)

	newRegime := entity.NewTaxRegime(year.ID, entity.RegimeCodeNew, "New Regime",
		dec(75_000), dec(700_000), dec(25_000), false)
	oldRegime := entity.NewTaxRegime(year.ID, entity.RegimeCodeOld, "Old Regime",
		dec(50_000), dec(500_000), dec(12_500), true)

	newSlabs := []*entity.TaxSlab{
		entity.NewTaxSlab(newRegime.ID, 1, dec(0), decPtr(300_000), dec(0)),
		entity.NewTaxSlab(newRegime.ID, 2, dec(300_000), decPtr(700_000), dec(5)),
		entity.NewTaxSlab(newRegime.ID, 3, dec(700_000), decPtr(1_000_000), dec(10)),
		entity.NewTaxSlab(newRegime.ID, 4, dec(1_000_000), decPtr(1_200_000), dec(15)),
		entity.NewTaxSlab(newRegime.ID, 5, dec(1_200_000), decPtr(1_500_000), dec(20)),
		entity.NewTaxSlab(newRegime.ID, 6, dec(1_500_000), nil, dec(30)),
	}
	oldSlabs := []*entity.TaxSlab{
		entity.NewTaxSlab(oldRegime.ID, 1, dec(0), decPtr(250_000), dec(0)),
		entity.NewTaxSlab(oldRegime.ID, 2, dec(250_000), decPtr(500_000), dec(5)),
		entity.NewTaxSlab(oldRegime.ID, 3, dec(500_000), decPtr(1_000_000), dec(20)),
		entity.NewTaxSlab(oldRegime.ID, 4, dec(1_000_000), nil, dec(30)),
	}

	deductions := map[string]*entity.DeductionRule{
		entity.SectionCode80C: entity.NewDeductionRule(year.ID, entity.SectionCode80C, "Investments", decPtr(150_000)),
		entity.SectionCode80D: entity.NewDeductionRule(year.ID, entity.SectionCode80D, "Health insurance premium", decPtr(100_000)),
		entity.SectionCode24B: entity.NewDeductionRule(year.ID, entity.SectionCode24B, "Home loan interest", decPtr(200_000)),
		entity.SectionCode80E: entity.NewDeductionRule(year.ID, entity.SectionCode80E, "Education loan interest", nil),
	}

	return &stubRuleRepository{
		years: map[string]*entity.FinancialYear{year.Code: year},
		regimes: map[uuid.UUID]map[entity.RegimeCode]*adapter.RegimeRules{
			year.ID: {
				entity.RegimeCodeNew: {Regime: newRegime, Slabs: newSlabs},
				entity.RegimeCodeOld: {Regime: oldRegime, Slabs: oldSlabs},
			},
		},
		deductions: map[uuid.UUID]map[string]*entity.DeductionRule{
			year.ID: deductions,
		},
	}
}

// stubCalculationRepository records saves in memory.
type stubCalculationRepository struct {
	saved   []*entity.TaxCalculation
	saveErr error
}

func (r *stubCalculationRepository) Save(_ context.Context, calculation *entity.TaxCalculation) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, calculation)
	return nil
}

func (r *stubCalculationRepository) FindByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.TaxCalculation, error) {
	var out []*entity.TaxCalculation
	for i := len(r.saved) - 1; i >= 0 && len(out) < limit; i-- {
		if r.saved[i].UserID == userID {
			out = append(out, r.saved[i])
		}
	}
	return out, nil
}

func (r *stubCalculationRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.TaxCalculation, error) {
	for _, c := range r.saved {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCalculationNotFound
}

// stubUserRepository serves a single fixed user.
type stubUserRepository struct {
	user *entity.User
}

func (r *stubUserRepository) Create(_ context.Context, _ *entity.User) error { return nil }

func (r *stubUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *stubUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *stubUserRepository) Update(_ context.Context, _ *entity.User) error { return nil }

func (r *stubUserRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return r.user != nil && r.user.Email == email, nil
}

// stubEmailService records queued summary emails.
type stubEmailService struct {
	queued []adapter.QueueCalculationSummaryInput
}

func (s *stubEmailService) QueueCalculationSummaryEmail(_ context.Context, input adapter.QueueCalculationSummaryInput) error {
	s.queued = append(s.queued, input)
	return nil
}
