// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/chronyx/backend/internal/domain/entity"
	"github.com/chronyx/backend/internal/integration/persistence/model"
)

// seedSlab is one slab row of the seed configuration. A nil max marks the
// unbounded top slab.
type seedSlab struct {
	min  int64
	max  *int64
	rate decimal.Decimal
}

// seedRegime is one regime of the seed configuration.
type seedRegime struct {
	code              entity.RegimeCode
	displayName       string
	standardDeduction int64
	rebateLimit       int64
	rebateMax         int64
	allowsDeductions  bool
	slabs             []seedSlab
}

// seedDeduction is one deduction-limit row. A nil limit marks an uncapped section.
type seedDeduction struct {
	section     string
	description string
	limit       *int64
}

func i64(v int64) *int64 { return &v }

func pct(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// fy2025Seed is the published FY2025_26 rule set.
var fy2025Seed = struct {
	code        string
	displayName string
	regimes     []seedRegime
	deductions  []seedDeduction
}{
	code:        "FY2025_26",
	displayName: "FY 2025-26",
	regimes: []seedRegime{
		{
			code:              entity.RegimeCodeNew,
			displayName:       "New Regime",
			standardDeduction: 75_000,
			rebateLimit:       700_000,
			rebateMax:         25_000,
			allowsDeductions:  false,
			slabs: []seedSlab{
				{min: 0, max: i64(300_000), rate: pct(0)},
				{min: 300_000, max: i64(700_000), rate: pct(5)},
				{min: 700_000, max: i64(1_000_000), rate: pct(10)},
				{min: 1_000_000, max: i64(1_200_000), rate: pct(15)},
				{min: 1_200_000, max: i64(1_500_000), rate: pct(20)},
				{min: 1_500_000, max: nil, rate: pct(30)},
			},
		},
		{
			code:              entity.RegimeCodeOld,
			displayName:       "Old Regime",
			standardDeduction: 50_000,
			rebateLimit:       500_000,
			rebateMax:         12_500,
			allowsDeductions:  true,
			slabs: []seedSlab{
				{min: 0, max: i64(250_000), rate: pct(0)},
				{min: 250_000, max: i64(500_000), rate: pct(5)},
				{min: 500_000, max: i64(1_000_000), rate: pct(20)},
				{min: 1_000_000, max: nil, rate: pct(30)},
			},
		},
	},
	deductions: []seedDeduction{
		{section: entity.SectionCode80C, description: "Investments (PPF, ELSS, life insurance premium)", limit: i64(150_000)},
		{section: entity.SectionCode80CCD, description: "NPS employee contribution", limit: i64(50_000)},
		{section: entity.SectionCode80D, description: "Health insurance premium", limit: i64(100_000)},
		{section: entity.SectionCode24B, description: "Home loan interest (self-occupied)", limit: i64(200_000)},
		{section: entity.SectionCode80TTA, description: "Savings account interest", limit: i64(10_000)},
		{section: entity.SectionCode80E, description: "Education loan interest", limit: nil},
		{section: entity.SectionCode80G, description: "Charitable donations", limit: nil},
	},
}

// SeedTaxRules inserts the FY2025_26 rule configuration if it is not present.
// The seed is idempotent: an existing year row short-circuits the whole seed,
// so operator edits to published rules survive restarts.
func SeedTaxRules(ctx context.Context, db *gorm.DB) error {
	var existing model.FinancialYearModel
	err := db.WithContext(ctx).Where("code = ?", fy2025Seed.code).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for seeded rules: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		year := entity.NewFinancialYear(fy2025Seed.code, fy2025Seed.displayName, true)
		if err := tx.Create(model.FinancialYearFromEntity(year)).Error; err != nil {
			return fmt.Errorf("failed to seed financial year: %w", err)
		}

		for _, sr := range fy2025Seed.regimes {
			regime := entity.NewTaxRegime(
				year.ID,
				sr.code,
				sr.displayName,
				decimal.NewFromInt(sr.standardDeduction),
				decimal.NewFromInt(sr.rebateLimit),
				decimal.NewFromInt(sr.rebateMax),
				sr.allowsDeductions,
			)
			if err := tx.Create(model.TaxRegimeFromEntity(regime)).Error; err != nil {
				return fmt.Errorf("failed to seed regime %s: %w", sr.code, err)
			}

			for i, ss := range sr.slabs {
				var maxAmount *decimal.Decimal
				if ss.max != nil {
					m := decimal.NewFromInt(*ss.max)
					maxAmount = &m
				}
				slab := entity.NewTaxSlab(regime.ID, i+1, decimal.NewFromInt(ss.min), maxAmount, ss.rate)
				if err := tx.Create(model.TaxSlabFromEntity(slab)).Error; err != nil {
					return fmt.Errorf("failed to seed slab %d of regime %s: %w", i+1, sr.code, err)
				}
			}
		}

		for _, sd := range fy2025Seed.deductions {
			var limit *decimal.Decimal
			if sd.limit != nil {
				l := decimal.NewFromInt(*sd.limit)
				limit = &l
			}
			rule := entity.NewDeductionRule(year.ID, sd.section, sd.description, limit)
			if err := tx.Create(model.DeductionRuleFromEntity(rule)).Error; err != nil {
				return fmt.Errorf("failed to seed deduction rule %s: %w", sd.section, err)
			}
		}

		slog.Info("Seeded tax rules", "financial_year", fy2025Seed.code)
		return nil
	})
}
