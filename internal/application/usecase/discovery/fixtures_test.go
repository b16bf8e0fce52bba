// Package discovery contains the deduction discovery use cases.
package discovery

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func decPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// stubRuleRepository serves a single financial year with old-regime slabs and
// the standard deduction-limit table.
type stubRuleRepository struct {
	year       *entity.FinancialYear
	slabs      []*entity.TaxSlab
	deductions map[string]*entity.DeductionRule
}

func newStubRules() *stubRuleRepository {
	year := entity.NewFinancialYear("FY2025_26", "FY 2025-26", true)
	regimeID := uuid.New()

	return &stubRuleRepository{
		year: year,
		slabs: []*entity.TaxSlab{
			entity.NewTaxSlab(regimeID, 1, dec(0), decPtr(250_000), dec(0)),
			entity.NewTaxSlab(regimeID, 2, dec(250_000), decPtr(500_000), dec(5)),
			entity.NewTaxSlab(regimeID, 3, dec(500_000), decPtr(1_000_000), dec(20)),
			entity.NewTaxSlab(regimeID, 4, dec(1_000_000), nil, dec(30)),
		},
		deductions: map[string]*entity.DeductionRule{
			entity.SectionCode80C: entity.NewDeductionRule(year.ID, entity.SectionCode80C, "Investments", decPtr(150_000)),
			entity.SectionCode80D: entity.NewDeductionRule(year.ID, entity.SectionCode80D, "Health insurance premium", decPtr(100_000)),
			entity.SectionCode24B: entity.NewDeductionRule(year.ID, entity.SectionCode24B, "Home loan interest", decPtr(200_000)),
			entity.SectionCode80E: entity.NewDeductionRule(year.ID, entity.SectionCode80E, "Education loan interest", nil),
		},
	}
}

func (r *stubRuleRepository) FindActiveYearByCode(_ context.Context, code string) (*entity.FinancialYear, error) {
	if code != r.year.Code {
		return nil, domainerror.ErrFinancialYearNotFound
	}
	return r.year, nil
}

func (r *stubRuleRepository) FindRegimeRules(_ context.Context, _ uuid.UUID, code entity.RegimeCode) (*adapter.RegimeRules, error) {
	if code != entity.RegimeCodeOld {
		return nil, domainerror.ErrRegimeNotFound
	}
	regime := entity.NewTaxRegime(r.year.ID, entity.RegimeCodeOld, "Old Regime",
		dec(50_000), dec(500_000), dec(12_500), true)
	return &adapter.RegimeRules{Regime: regime, Slabs: r.slabs}, nil
}

func (r *stubRuleRepository) FindDeductionRules(_ context.Context, _ uuid.UUID) (map[string]*entity.DeductionRule, error) {
	return r.deductions, nil
}

func (r *stubRuleRepository) ListActiveYears(_ context.Context) ([]*entity.FinancialYear, error) {
	return []*entity.FinancialYear{r.year}, nil
}

// stubInsuranceRepository serves a fixed slice of active policies.
type stubInsuranceRepository struct {
	policies []*entity.InsurancePolicy
}

func (r *stubInsuranceRepository) Create(_ context.Context, policy *entity.InsurancePolicy) error {
	r.policies = append(r.policies, policy)
	return nil
}

func (r *stubInsuranceRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.InsurancePolicy, error) {
	for _, p := range r.policies {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrInsurancePolicyNotFound
}

func (r *stubInsuranceRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.InsurancePolicy, error) {
	var out []*entity.InsurancePolicy
	for _, p := range r.policies {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubInsuranceRepository) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.InsurancePolicy, error) {
	var out []*entity.InsurancePolicy
	for _, p := range r.policies {
		if p.UserID == userID && p.IsActive && p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubInsuranceRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

// stubLoanRepository serves a fixed slice of active loans.
type stubLoanRepository struct {
	loans []*entity.Loan
}

func (r *stubLoanRepository) Create(_ context.Context, loan *entity.Loan) error {
	r.loans = append(r.loans, loan)
	return nil
}

func (r *stubLoanRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Loan, error) {
	for _, l := range r.loans {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, domainerror.ErrLoanNotFound
}

func (r *stubLoanRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Loan, error) {
	var out []*entity.Loan
	for _, l := range r.loans {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLoanRepository) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.Loan, error) {
	var out []*entity.Loan
	for _, l := range r.loans {
		if l.UserID == userID && l.IsActive && l.DeletedAt == nil {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLoanRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

// stubSuggestionRepository is an in-memory suggestion store.
type stubSuggestionRepository struct {
	suggestions []*entity.DeductionSuggestion
	deleteCalls int
}

func (r *stubSuggestionRepository) CreateBatch(_ context.Context, suggestions []*entity.DeductionSuggestion) error {
	r.suggestions = append(r.suggestions, suggestions...)
	return nil
}

func (r *stubSuggestionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.DeductionSuggestion, error) {
	for _, s := range r.suggestions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainerror.ErrSuggestionNotFound
}

func (r *stubSuggestionRepository) FindPendingByUser(_ context.Context, userID uuid.UUID) ([]*entity.DeductionSuggestion, error) {
	var out []*entity.DeductionSuggestion
	for _, s := range r.suggestions {
		if s.UserID == userID && s.Status == entity.SuggestionStatusPending {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSuggestionRepository) Update(_ context.Context, suggestion *entity.DeductionSuggestion) error {
	for i, s := range r.suggestions {
		if s.ID == suggestion.ID {
			r.suggestions[i] = suggestion
			return nil
		}
	}
	return domainerror.ErrSuggestionNotFound
}

func (r *stubSuggestionRepository) DeletePendingByUser(_ context.Context, userID uuid.UUID) error {
	r.deleteCalls++
	kept := r.suggestions[:0]
	for _, s := range r.suggestions {
		if s.UserID == userID && s.Status == entity.SuggestionStatusPending {
			continue
		}
		kept = append(kept, s)
	}
	r.suggestions = kept
	return nil
}

// stubAdvisor is a scripted DeductionAdvisor.
type stubAdvisor struct {
	available   bool
	suggestions []*adapter.AdvisorSuggestion
	err         error
	calls       int
}

func (a *stubAdvisor) IsAvailable() bool { return a.available }

func (a *stubAdvisor) Suggest(_ context.Context, _ *adapter.AdvisorRequest) ([]*adapter.AdvisorSuggestion, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.suggestions, nil
}

var errAdvisorDown = errors.New("advisor unavailable")
