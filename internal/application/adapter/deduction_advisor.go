// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// AdvisorRecord is a compact description of one user record handed to the
// deduction advisor. Amounts are annual figures.
type AdvisorRecord struct {
	ID       string
	Kind     string // "insurance" or "loan"
	Subtype  string // policy type or loan type
	Provider string
	Amount   decimal.Decimal
}

// AdvisorRequest carries the records and context for an advisory pass.
type AdvisorRequest struct {
	FinancialYearCode string
	GrossIncome       decimal.Decimal
	Records           []AdvisorRecord
}

// AdvisorSuggestion is one free-form suggestion returned by the advisor.
type AdvisorSuggestion struct {
	SectionCode     string
	SuggestedAmount decimal.Decimal
	Confidence      float64
	Reasoning       string
	SourceRecordIDs []string
}

// DeductionAdvisor defines an optional, best-effort suggestion provider layered
// on top of the rule-based heuristics. Implementations must be safe to skip:
// callers treat an unavailable or failing advisor as "no extra suggestions".
type DeductionAdvisor interface {
	// IsAvailable reports whether the advisor is configured and usable.
	IsAvailable() bool

	// Suggest returns advisory deduction suggestions for the given records.
	Suggest(ctx context.Context, request *AdvisorRequest) ([]*AdvisorSuggestion, error)
}
