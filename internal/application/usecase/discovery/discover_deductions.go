// Package discovery contains the deduction discovery use cases.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// DiscoverDeductionsInput represents the input for a discovery scan.
type DiscoverDeductionsInput struct {
	UserID            uuid.UUID
	FinancialYearCode string
	GrossIncome       decimal.Decimal
}

// DiscoverDeductionsOutput represents the output of a discovery scan.
type DiscoverDeductionsOutput struct {
	Suggestions []*entity.DeductionSuggestion
}

// DiscoverDeductionsUseCase scans the user's insurance and loan records for
// deductions they may be entitled to under the old regime. Each scan replaces
// the user's previous pending suggestions. Accepted and dismissed suggestions
// are left untouched.
type DiscoverDeductionsUseCase struct {
	ruleRepo       adapter.RuleRepository
	insuranceRepo  adapter.InsuranceRepository
	loanRepo       adapter.LoanRepository
	suggestionRepo adapter.SuggestionRepository
	advisor        adapter.DeductionAdvisor
}

// NewDiscoverDeductionsUseCase creates a new DiscoverDeductionsUseCase
// instance. advisor may be nil when no AI advisor is configured.
func NewDiscoverDeductionsUseCase(
	ruleRepo adapter.RuleRepository,
	insuranceRepo adapter.InsuranceRepository,
	loanRepo adapter.LoanRepository,
	suggestionRepo adapter.SuggestionRepository,
	advisor adapter.DeductionAdvisor,
) *DiscoverDeductionsUseCase {
	return &DiscoverDeductionsUseCase{
		ruleRepo:       ruleRepo,
		insuranceRepo:  insuranceRepo,
		loanRepo:       loanRepo,
		suggestionRepo: suggestionRepo,
		advisor:        advisor,
	}
}

// Execute performs the discovery scan.
func (uc *DiscoverDeductionsUseCase) Execute(ctx context.Context, input DiscoverDeductionsInput) (*DiscoverDeductionsOutput, error) {
	if input.GrossIncome.IsNegative() {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeNegativeGrossIncome,
			"gross income must not be negative",
			domainerror.ErrNegativeGrossIncome,
		)
	}

	dedRules, slabs, err := uc.resolveOldRegimeRules(ctx, input.FinancialYearCode)
	if err != nil {
		return nil, err
	}

	policies, err := uc.insuranceRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load insurance policies: %w", err)
	}
	loans, err := uc.loanRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load loans: %w", err)
	}

	// Claimed deductions come off the top slab, so the savings estimate uses
	// the marginal rate at the gross income.
	rate := marginalRate(slabs, input.GrossIncome)

	suggestions := uc.buildSuggestions(input.UserID, policies, loans, dedRules, rate)
	suggestions = append(suggestions, uc.advisorSuggestions(ctx, input, policies, loans, dedRules, rate, suggestions)...)

	if err := uc.suggestionRepo.DeletePendingByUser(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to clear pending suggestions: %w", err)
	}
	if len(suggestions) > 0 {
		if err := uc.suggestionRepo.CreateBatch(ctx, suggestions); err != nil {
			return nil, fmt.Errorf("failed to save suggestions: %w", err)
		}
	}

	slog.Info("Deduction discovery completed",
		"user_id", input.UserID,
		"financial_year", input.FinancialYearCode,
		"suggestions", len(suggestions),
	)

	return &DiscoverDeductionsOutput{Suggestions: suggestions}, nil
}

// resolveOldRegimeRules loads the deduction-limit table and old-regime slabs
// for the year. Discovery always reasons in old-regime terms because the new
// regime admits no deductions.
func (uc *DiscoverDeductionsUseCase) resolveOldRegimeRules(ctx context.Context, yearCode string) (map[string]*entity.DeductionRule, []*entity.TaxSlab, error) {
	year, err := uc.ruleRepo.FindActiveYearByCode(ctx, yearCode)
	if err != nil {
		if errors.Is(err, domainerror.ErrFinancialYearNotFound) {
			return nil, nil, domainerror.NewTaxError(
				domainerror.ErrCodeFinancialYearNotFound,
				fmt.Sprintf("financial year %q is unknown or inactive", yearCode),
				domainerror.ErrFinancialYearNotFound,
			)
		}
		return nil, nil, fmt.Errorf("failed to resolve financial year: %w", err)
	}

	rules, err := uc.ruleRepo.FindRegimeRules(ctx, year.ID, entity.RegimeCodeOld)
	if err != nil {
		if errors.Is(err, domainerror.ErrRegimeNotFound) {
			return nil, nil, domainerror.NewTaxError(
				domainerror.ErrCodeRegimeNotFound,
				fmt.Sprintf("old regime is not configured for %s", yearCode),
				domainerror.ErrRegimeNotFound,
			)
		}
		return nil, nil, fmt.Errorf("failed to resolve regime rules: %w", err)
	}

	dedRules, err := uc.ruleRepo.FindDeductionRules(ctx, year.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve deduction rules: %w", err)
	}

	return dedRules, rules.Slabs, nil
}

// buildSuggestions turns the heuristic candidates into suggestion entities,
// capping each amount at the section's legal limit.
func (uc *DiscoverDeductionsUseCase) buildSuggestions(
	userID uuid.UUID,
	policies []*entity.InsurancePolicy,
	loans []*entity.Loan,
	dedRules map[string]*entity.DeductionRule,
	rate decimal.Decimal,
) []*entity.DeductionSuggestion {
	var suggestions []*entity.DeductionSuggestion
	for _, c := range scanRecords(policies, loans) {
		amount := c.amount
		if rule, ok := dedRules[c.sectionCode]; ok {
			amount = rule.Cap(amount)
		}
		if !amount.IsPositive() {
			continue
		}

		suggestions = append(suggestions, entity.NewDeductionSuggestion(
			userID,
			c.sectionCode,
			amount,
			c.confidence,
			c.source,
			c.recordIDs,
			c.reasoning,
			estimateSavings(amount, rate),
		))
	}
	return suggestions
}

// advisorSuggestions runs the optional AI advisor pass. Advisor failures are
// logged and swallowed: the heuristic suggestions stand on their own. Sections
// the heuristics already covered are skipped to avoid duplicates.
func (uc *DiscoverDeductionsUseCase) advisorSuggestions(
	ctx context.Context,
	input DiscoverDeductionsInput,
	policies []*entity.InsurancePolicy,
	loans []*entity.Loan,
	dedRules map[string]*entity.DeductionRule,
	rate decimal.Decimal,
	existing []*entity.DeductionSuggestion,
) []*entity.DeductionSuggestion {
	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return nil
	}

	request := &adapter.AdvisorRequest{
		FinancialYearCode: input.FinancialYearCode,
		GrossIncome:       input.GrossIncome,
	}
	for _, policy := range policies {
		request.Records = append(request.Records, adapter.AdvisorRecord{
			ID:       policy.ID.String(),
			Kind:     "insurance",
			Subtype:  string(policy.PolicyType),
			Provider: policy.Provider,
			Amount:   policy.AnnualPremium,
		})
	}
	for _, loan := range loans {
		request.Records = append(request.Records, adapter.AdvisorRecord{
			ID:       loan.ID.String(),
			Kind:     "loan",
			Subtype:  string(loan.LoanType),
			Provider: loan.Lender,
			Amount:   loan.AnnualInterestPaid,
		})
	}

	advised, err := uc.advisor.Suggest(ctx, request)
	if err != nil {
		slog.Warn("Deduction advisor pass failed", "error", err, "user_id", input.UserID)
		return nil
	}

	covered := map[string]bool{}
	for _, s := range existing {
		covered[s.SectionCode] = true
	}

	var suggestions []*entity.DeductionSuggestion
	for _, a := range advised {
		if covered[a.SectionCode] || !a.SuggestedAmount.IsPositive() {
			continue
		}

		amount := a.SuggestedAmount
		if rule, ok := dedRules[a.SectionCode]; ok {
			amount = rule.Cap(amount)
		}

		var recordIDs []uuid.UUID
		for _, raw := range a.SourceRecordIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			recordIDs = append(recordIDs, id)
		}

		suggestions = append(suggestions, entity.NewDeductionSuggestion(
			input.UserID,
			a.SectionCode,
			amount,
			a.Confidence,
			entity.SuggestionSourceAI,
			recordIDs,
			a.Reasoning,
			estimateSavings(amount, rate),
		))
		covered[a.SectionCode] = true
	}
	return suggestions
}
