// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegimeCode identifies one of the two tax regimes of a financial year.
type RegimeCode string

const (
	RegimeCodeOld RegimeCode = "old"
	RegimeCodeNew RegimeCode = "new"
)

// IsValidRegimeCode reports whether code is one of the two supported regimes.
func IsValidRegimeCode(code RegimeCode) bool {
	return code == RegimeCodeOld || code == RegimeCodeNew
}

// TaxRegime is a named, mutually exclusive tax rule set within a financial year.
// Exactly one regime row exists per (financial_year, code).
type TaxRegime struct {
	ID                uuid.UUID
	FinancialYearID   uuid.UUID
	Code              RegimeCode
	DisplayName       string
	StandardDeduction decimal.Decimal
	RebateLimit       decimal.Decimal
	RebateMax         decimal.Decimal
	AllowsDeductions  bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTaxRegime creates a new TaxRegime entity.
func NewTaxRegime(
	financialYearID uuid.UUID,
	code RegimeCode,
	displayName string,
	standardDeduction, rebateLimit, rebateMax decimal.Decimal,
	allowsDeductions bool,
) *TaxRegime {
	now := time.Now().UTC()

	return &TaxRegime{
		ID:                uuid.New(),
		FinancialYearID:   financialYearID,
		Code:              code,
		DisplayName:       displayName,
		StandardDeduction: standardDeduction,
		RebateLimit:       rebateLimit,
		RebateMax:         rebateMax,
		AllowsDeductions:  allowsDeductions,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
