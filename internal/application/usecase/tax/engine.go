// Package tax contains the tax computation use cases: the single-regime
// calculator, the regime comparator, and the calculation history.
package tax

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/domain/entity"
)

// surchargeBand is one tier of the surcharge schedule. The surcharge is levied
// on tax after rebate, but the band is selected by taxable income; exactly one
// band applies (the highest threshold the income exceeds).
type surchargeBand struct {
	Threshold      decimal.Decimal
	RatePercentage decimal.Decimal
}

var surchargeBands = []surchargeBand{
	{Threshold: decimal.NewFromInt(50_000_000), RatePercentage: decimal.NewFromInt(37)},
	{Threshold: decimal.NewFromInt(20_000_000), RatePercentage: decimal.NewFromInt(25)},
	{Threshold: decimal.NewFromInt(10_000_000), RatePercentage: decimal.NewFromInt(15)},
	{Threshold: decimal.NewFromInt(5_000_000), RatePercentage: decimal.NewFromInt(10)},
}

// cessRatePercentage is the health and education cess applied on (tax + surcharge).
var cessRatePercentage = decimal.NewFromInt(4)

var hundred = decimal.NewFromInt(100)

// computeBreakdown runs the slab/rebate/surcharge/cess pipeline for a single
// regime. It is a pure function: same inputs, byte-identical output. The caller
// validates grossIncome >= 0 and resolves the regime, slabs, and deduction
// rules beforehand.
//
// Monetary amounts are rounded half-away-from-zero to whole currency units at
// each accumulation step (per slab, surcharge, cess). This per-stage rounding
// matches the historical saved calculations and must not be replaced with a
// single final rounding.
func computeBreakdown(
	regime *entity.TaxRegime,
	slabs []*entity.TaxSlab,
	deductionRules map[string]*entity.DeductionRule,
	grossIncome decimal.Decimal,
	claimedDeductions map[string]decimal.Decimal,
) *entity.TaxCalculation {
	ordered := make([]*entity.TaxSlab, len(slabs))
	copy(ordered, slabs)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].SlabOrder < ordered[j].SlabOrder })

	// Step 1: standard deduction.
	incomeAfterStd := clampZero(grossIncome.Sub(regime.StandardDeduction))

	// Step 2: deduction capping. The new regime ignores claimed deductions
	// entirely; that is not an input error.
	totalDeductions := decimal.Zero
	deductionsBreakdown := make(map[string]decimal.Decimal)
	if regime.AllowsDeductions {
		for section, claimed := range claimedDeductions {
			if !claimed.IsPositive() {
				continue
			}
			applied := claimed
			if rule, ok := deductionRules[section]; ok {
				applied = rule.Cap(claimed)
			}
			deductionsBreakdown[section] = applied
			totalDeductions = totalDeductions.Add(applied)
		}
	}

	// Step 3: taxable income.
	taxableIncome := clampZero(incomeAfterStd.Sub(totalDeductions))

	// Step 4: slab walk. Every slab is enumerated in the breakdown, including
	// ones the income never reaches, so the full bracket table can be rendered.
	remaining := taxableIncome
	taxBeforeRebate := decimal.Zero
	slabBreakdown := make([]entity.SlabTax, 0, len(ordered))
	for _, slab := range ordered {
		row := entity.SlabTax{
			SlabOrder:      slab.SlabOrder,
			MinAmount:      slab.MinAmount,
			MaxAmount:      slab.MaxAmount,
			RatePercentage: slab.RatePercentage,
			TaxableInSlab:  decimal.Zero,
			TaxInSlab:      decimal.Zero,
		}
		if remaining.IsPositive() {
			taxableInSlab := decimal.Min(remaining, slab.Width(remaining))
			taxInSlab := taxableInSlab.Mul(slab.RatePercentage).Div(hundred).Round(0)
			row.TaxableInSlab = taxableInSlab
			row.TaxInSlab = taxInSlab
			taxBeforeRebate = taxBeforeRebate.Add(taxInSlab)
			remaining = remaining.Sub(taxableInSlab)
		}
		slabBreakdown = append(slabBreakdown, row)
	}

	// Step 5: rebate.
	rebate := decimal.Zero
	if taxableIncome.LessThanOrEqual(regime.RebateLimit) && taxBeforeRebate.IsPositive() {
		rebate = decimal.Min(taxBeforeRebate, regime.RebateMax)
	}
	taxAfterRebate := clampZero(taxBeforeRebate.Sub(rebate))

	// Step 6: surcharge, tiered on taxable income, applied to tax after rebate.
	surcharge := decimal.Zero
	for _, band := range surchargeBands {
		if taxableIncome.GreaterThan(band.Threshold) {
			surcharge = taxAfterRebate.Mul(band.RatePercentage).Div(hundred).Round(0)
			break
		}
	}

	// Step 7: cess on (tax + surcharge).
	cess := taxAfterRebate.Add(surcharge).Mul(cessRatePercentage).Div(hundred).Round(0)

	// Step 8: total tax.
	totalTax := taxAfterRebate.Add(surcharge).Add(cess)

	// Step 9: effective rate, as a percentage of gross income to 2 decimals.
	effectiveRate := decimal.Zero
	if grossIncome.IsPositive() {
		effectiveRate = totalTax.Div(grossIncome).Mul(hundred).Round(2)
	}

	return &entity.TaxCalculation{
		RegimeCode:          regime.Code,
		GrossIncome:         grossIncome,
		StandardDeduction:   regime.StandardDeduction,
		TotalDeductions:     totalDeductions,
		DeductionsBreakdown: deductionsBreakdown,
		TaxableIncome:       taxableIncome,
		SlabBreakdown:       slabBreakdown,
		TaxBeforeRebate:     taxBeforeRebate,
		Rebate:              rebate,
		TaxAfterRebate:      taxAfterRebate,
		Surcharge:           surcharge,
		Cess:                cess,
		TotalTax:            totalTax,
		EffectiveRate:       effectiveRate,
	}
}

// clampZero returns d, or zero when d is negative.
func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
