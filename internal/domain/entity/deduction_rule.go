// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common deduction section codes.
const (
	SectionCode80C   = "80C"
	SectionCode80CCD = "80CCD1B"
	SectionCode80D   = "80D"
	SectionCode80E   = "80E"
	SectionCode80G   = "80G"
	SectionCode80TTA = "80TTA"
	SectionCode24B   = "24B"
)

// DeductionRule maps a section code (e.g. "80C", "80D", "24B") to an optional
// maximum claimable limit for a financial year. A nil MaxLimit means the
// section is uncapped. Rules are only consulted when the active regime allows
// deductions.
type DeductionRule struct {
	ID              uuid.UUID
	FinancialYearID uuid.UUID
	SectionCode     string
	Description     string
	MaxLimit        *decimal.Decimal
}

// NewDeductionRule creates a new DeductionRule entity.
func NewDeductionRule(financialYearID uuid.UUID, sectionCode, description string, maxLimit *decimal.Decimal) *DeductionRule {
	return &DeductionRule{
		ID:              uuid.New(),
		FinancialYearID: financialYearID,
		SectionCode:     sectionCode,
		Description:     description,
		MaxLimit:        maxLimit,
	}
}

// Cap returns the claimable amount for a claim against this rule: the claimed
// amount unchanged when the section is uncapped, otherwise min(claimed, limit).
func (r *DeductionRule) Cap(claimed decimal.Decimal) decimal.Decimal {
	if r.MaxLimit == nil || claimed.LessThanOrEqual(*r.MaxLimit) {
		return claimed
	}
	return *r.MaxLimit
}
