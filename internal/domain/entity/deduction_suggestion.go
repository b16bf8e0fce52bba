// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SuggestionStatus represents the status of a deduction suggestion.
type SuggestionStatus string

const (
	SuggestionStatusPending   SuggestionStatus = "pending"
	SuggestionStatusAccepted  SuggestionStatus = "accepted"
	SuggestionStatusDismissed SuggestionStatus = "dismissed"
)

// SuggestionSource represents where a deduction suggestion came from.
type SuggestionSource string

const (
	SuggestionSourceInsurance SuggestionSource = "insurance"
	SuggestionSourceLoan      SuggestionSource = "loan"
	SuggestionSourceAI        SuggestionSource = "ai"
)

// DeductionSuggestion is a best-effort hint that the user may be able to claim
// a deduction, produced by scanning their insurance and loan records. It is
// advisory only: a suggestion never feeds into the calculator until a human
// accepts it and claims the section themselves.
type DeductionSuggestion struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SectionCode      string
	SuggestedAmount  decimal.Decimal
	Confidence       float64
	Source           SuggestionSource
	SourceRecordIDs  []uuid.UUID
	Reasoning        string
	EstimatedSavings decimal.Decimal
	Status           SuggestionStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewDeductionSuggestion creates a new pending DeductionSuggestion entity.
func NewDeductionSuggestion(
	userID uuid.UUID,
	sectionCode string,
	suggestedAmount decimal.Decimal,
	confidence float64,
	source SuggestionSource,
	sourceRecordIDs []uuid.UUID,
	reasoning string,
	estimatedSavings decimal.Decimal,
) *DeductionSuggestion {
	now := time.Now().UTC()

	return &DeductionSuggestion{
		ID:               uuid.New(),
		UserID:           userID,
		SectionCode:      sectionCode,
		SuggestedAmount:  suggestedAmount,
		Confidence:       confidence,
		Source:           source,
		SourceRecordIDs:  sourceRecordIDs,
		Reasoning:        reasoning,
		EstimatedSavings: estimatedSavings,
		Status:           SuggestionStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// MarkAccepted marks the suggestion as accepted by the user.
func (s *DeductionSuggestion) MarkAccepted() {
	s.Status = SuggestionStatusAccepted
	s.UpdatedAt = time.Now().UTC()
}

// MarkDismissed marks the suggestion as dismissed by the user.
func (s *DeductionSuggestion) MarkDismissed() {
	s.Status = SuggestionStatusDismissed
	s.UpdatedAt = time.Now().UTC()
}
