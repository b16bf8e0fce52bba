// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SlabTax is one row of the per-slab breakdown of a calculation. Every slab of
// the regime appears exactly once, including slabs the taxable income never
// reached (with zero amounts), so callers can render the full bracket table.
type SlabTax struct {
	SlabOrder      int
	MinAmount      decimal.Decimal
	MaxAmount      *decimal.Decimal
	RatePercentage decimal.Decimal
	TaxableInSlab  decimal.Decimal
	TaxInSlab      decimal.Decimal
}

// TaxCalculation is the full auditable breakdown produced by the single-regime
// calculator. It is a value object: computed, returned, and optionally written
// once to the append-only calculation history. It is never mutated afterwards.
type TaxCalculation struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	FinancialYearCode   string
	RegimeCode          RegimeCode
	GrossIncome         decimal.Decimal
	StandardDeduction   decimal.Decimal
	TotalDeductions     decimal.Decimal
	DeductionsBreakdown map[string]decimal.Decimal
	TaxableIncome       decimal.Decimal
	SlabBreakdown       []SlabTax
	TaxBeforeRebate     decimal.Decimal
	Rebate              decimal.Decimal
	TaxAfterRebate      decimal.Decimal
	Surcharge           decimal.Decimal
	Cess                decimal.Decimal
	TotalTax            decimal.Decimal
	EffectiveRate       decimal.Decimal
	CreatedAt           time.Time
}

// RegimeComparison wraps the breakdowns of both regimes for the same income and
// deductions, plus the recommendation. Derived, never persisted independently
// of its two constituents.
type RegimeComparison struct {
	FinancialYearCode string
	GrossIncome       decimal.Decimal
	OldRegime         *TaxCalculation
	NewRegime         *TaxCalculation
	RecommendedRegime RegimeCode
	SavingsAmount     decimal.Decimal
	SavingsPercentage decimal.Decimal
}
