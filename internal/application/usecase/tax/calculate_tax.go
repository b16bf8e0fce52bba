// Package tax contains the tax computation use cases.
package tax

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// CalculateTaxInput represents the input for a single-regime calculation.
type CalculateTaxInput struct {
	UserID            uuid.UUID
	FinancialYearCode string
	RegimeCode        entity.RegimeCode
	GrossIncome       decimal.Decimal
	Deductions        map[string]decimal.Decimal
	SaveCalculation   bool
}

// CalculateTaxOutput represents the output of a single-regime calculation.
type CalculateTaxOutput struct {
	Calculation *entity.TaxCalculation
	Saved       bool
}

// CalculateTaxUseCase resolves the year/regime rules and runs the single-regime
// calculation pipeline, optionally persisting the result to the append-only
// history and queueing a summary email.
type CalculateTaxUseCase struct {
	ruleRepo     adapter.RuleRepository
	calcRepo     adapter.CalculationRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewCalculateTaxUseCase creates a new CalculateTaxUseCase instance.
// emailService may be nil when summary emails are disabled.
func NewCalculateTaxUseCase(
	ruleRepo adapter.RuleRepository,
	calcRepo adapter.CalculationRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *CalculateTaxUseCase {
	return &CalculateTaxUseCase{
		ruleRepo:     ruleRepo,
		calcRepo:     calcRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute performs the calculation. A failed save is non-fatal: the computed
// breakdown is still returned with Saved=false.
func (uc *CalculateTaxUseCase) Execute(ctx context.Context, input CalculateTaxInput) (*CalculateTaxOutput, error) {
	if err := validateCalculationInput(input.RegimeCode, input.GrossIncome, input.Deductions); err != nil {
		return nil, err
	}

	rules, dedRules, err := uc.resolveRules(ctx, input.FinancialYearCode, input.RegimeCode)
	if err != nil {
		return nil, err
	}

	calculation := computeBreakdown(rules.Regime, rules.Slabs, dedRules, input.GrossIncome, input.Deductions)
	calculation.FinancialYearCode = input.FinancialYearCode

	saved := false
	if input.SaveCalculation {
		saved = uc.saveCalculation(ctx, input.UserID, calculation)
	}

	return &CalculateTaxOutput{
		Calculation: calculation,
		Saved:       saved,
	}, nil
}

// resolveRules resolves the year, regime, slabs, and deduction-limit table,
// mapping repository lookups onto the tax error taxonomy.
func (uc *CalculateTaxUseCase) resolveRules(ctx context.Context, yearCode string, regimeCode entity.RegimeCode) (*adapter.RegimeRules, map[string]*entity.DeductionRule, error) {
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

	rules, err := uc.ruleRepo.FindRegimeRules(ctx, year.ID, regimeCode)
	if err != nil {
		if errors.Is(err, domainerror.ErrRegimeNotFound) {
			return nil, nil, domainerror.NewTaxError(
				domainerror.ErrCodeRegimeNotFound,
				fmt.Sprintf("regime %q is not configured for %s", regimeCode, yearCode),
				domainerror.ErrRegimeNotFound,
			)
		}
		return nil, nil, fmt.Errorf("failed to resolve regime rules: %w", err)
	}

	if len(rules.Slabs) == 0 {
		return nil, nil, domainerror.NewTaxError(
			domainerror.ErrCodeMissingSlabConfiguration,
			fmt.Sprintf("regime %q of %s has no slab configuration", regimeCode, yearCode),
			domainerror.ErrMissingSlabConfiguration,
		)
	}

	dedRules := map[string]*entity.DeductionRule{}
	if rules.Regime.AllowsDeductions {
		dedRules, err = uc.ruleRepo.FindDeductionRules(ctx, year.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve deduction rules: %w", err)
		}
	}

	return rules, dedRules, nil
}

// saveCalculation writes the result to the history and queues the summary
// email. Failures are logged and swallowed: persistence is best-effort and the
// caller still receives the breakdown.
func (uc *CalculateTaxUseCase) saveCalculation(ctx context.Context, userID uuid.UUID, calculation *entity.TaxCalculation) bool {
	calculation.ID = uuid.New()
	calculation.UserID = userID
	calculation.CreatedAt = time.Now().UTC()

	if err := uc.calcRepo.Save(ctx, calculation); err != nil {
		slog.Error("Failed to save tax calculation",
			"error", err,
			"user_id", userID,
			"financial_year", calculation.FinancialYearCode,
		)
		return false
	}

	uc.queueSummaryEmail(ctx, userID, calculation)
	return true
}

// queueSummaryEmail queues the calculation summary for users who opted in.
func (uc *CalculateTaxUseCase) queueSummaryEmail(ctx context.Context, userID uuid.UUID, calculation *entity.TaxCalculation) {
	if uc.emailService == nil || uc.userRepo == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load user for calculation summary email", "error", err, "user_id", userID)
		return
	}
	if !user.EmailNotifications {
		return
	}

	err = uc.emailService.QueueCalculationSummaryEmail(ctx, adapter.QueueCalculationSummaryInput{
		UserEmail:         user.Email,
		UserName:          user.Name,
		FinancialYearCode: calculation.FinancialYearCode,
		RegimeCode:        string(calculation.RegimeCode),
		GrossIncome:       calculation.GrossIncome.StringFixed(0),
		TaxableIncome:     calculation.TaxableIncome.StringFixed(0),
		TotalTax:          calculation.TotalTax.StringFixed(0),
		EffectiveRate:     calculation.EffectiveRate.StringFixed(2),
	})
	if err != nil {
		slog.Warn("Failed to queue calculation summary email", "error", err, "user_id", userID)
	}
}

// validateCalculationInput rejects malformed input before any computation.
func validateCalculationInput(regimeCode entity.RegimeCode, grossIncome decimal.Decimal, deductions map[string]decimal.Decimal) error {
	if !entity.IsValidRegimeCode(regimeCode) {
		return domainerror.NewTaxError(
			domainerror.ErrCodeInvalidRegimeCode,
			`regime must be "old" or "new"`,
			domainerror.ErrInvalidRegimeCode,
		)
	}

	if grossIncome.IsNegative() {
		return domainerror.NewTaxError(
			domainerror.ErrCodeNegativeGrossIncome,
			"gross income must not be negative",
			domainerror.ErrNegativeGrossIncome,
		)
	}

	for section, amount := range deductions {
		if amount.IsNegative() {
			return domainerror.NewTaxError(
				domainerror.ErrCodeNegativeDeduction,
				fmt.Sprintf("deduction %q must not be negative", section),
				domainerror.ErrNegativeDeduction,
			)
		}
	}

	return nil
}
