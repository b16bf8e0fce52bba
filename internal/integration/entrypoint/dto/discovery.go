// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/chronyx/backend/internal/domain/entity"
)

// DiscoverDeductionsRequest represents the request body for a discovery scan.
type DiscoverDeductionsRequest struct {
	FinancialYear string  `json:"financial_year" binding:"required"`
	GrossIncome   float64 `json:"gross_income"`
}

// SuggestionResponse represents a deduction suggestion in API responses.
type SuggestionResponse struct {
	ID               string    `json:"id"`
	SectionCode      string    `json:"section_code"`
	SuggestedAmount  string    `json:"suggested_amount"`
	Confidence       float64   `json:"confidence"`
	Source           string    `json:"source"`
	SourceRecordIDs  []string  `json:"source_record_ids"`
	Reasoning        string    `json:"reasoning"`
	EstimatedSavings string    `json:"estimated_savings"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// SuggestionListResponse represents a list of deduction suggestions.
type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// ToSuggestionResponse converts a domain DeductionSuggestion to its response DTO.
func ToSuggestionResponse(s *entity.DeductionSuggestion) SuggestionResponse {
	recordIDs := make([]string, 0, len(s.SourceRecordIDs))
	for _, id := range s.SourceRecordIDs {
		recordIDs = append(recordIDs, id.String())
	}

	return SuggestionResponse{
		ID:               s.ID.String(),
		SectionCode:      s.SectionCode,
		SuggestedAmount:  s.SuggestedAmount.String(),
		Confidence:       s.Confidence,
		Source:           string(s.Source),
		SourceRecordIDs:  recordIDs,
		Reasoning:        s.Reasoning,
		EstimatedSavings: s.EstimatedSavings.String(),
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
	}
}

// ToSuggestionListResponse converts suggestions to the list response DTO.
func ToSuggestionListResponse(suggestions []*entity.DeductionSuggestion) SuggestionListResponse {
	out := SuggestionListResponse{Suggestions: make([]SuggestionResponse, 0, len(suggestions))}
	for _, s := range suggestions {
		out.Suggestions = append(out.Suggestions, ToSuggestionResponse(s))
	}
	return out
}
