// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/domain/entity"
)

// DeductionSuggestionModel represents the deduction_suggestions table in the database.
type DeductionSuggestionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	SectionCode      string          `gorm:"type:varchar(10);not null"`
	SuggestedAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Confidence       float64         `gorm:"type:decimal(3,2);not null"`
	Source           string          `gorm:"type:varchar(20);not null"`
	SourceRecordIDs  pq.StringArray  `gorm:"type:uuid[]"`
	Reasoning        string          `gorm:"type:text"`
	EstimatedSavings decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DeductionSuggestionModel.
func (DeductionSuggestionModel) TableName() string {
	return "deduction_suggestions"
}

// ToEntity converts a DeductionSuggestionModel to a domain DeductionSuggestion entity.
func (m *DeductionSuggestionModel) ToEntity() *entity.DeductionSuggestion {
	suggestion := &entity.DeductionSuggestion{
		ID:               m.ID,
		UserID:           m.UserID,
		SectionCode:      m.SectionCode,
		SuggestedAmount:  m.SuggestedAmount,
		Confidence:       m.Confidence,
		Source:           entity.SuggestionSource(m.Source),
		Reasoning:        m.Reasoning,
		EstimatedSavings: m.EstimatedSavings,
		Status:           entity.SuggestionStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	suggestion.SourceRecordIDs = make([]uuid.UUID, 0, len(m.SourceRecordIDs))
	for _, idStr := range m.SourceRecordIDs {
		if id, err := uuid.Parse(idStr); err == nil {
			suggestion.SourceRecordIDs = append(suggestion.SourceRecordIDs, id)
		}
	}

	return suggestion
}

// DeductionSuggestionFromEntity creates a DeductionSuggestionModel from a domain entity.
func DeductionSuggestionFromEntity(suggestion *entity.DeductionSuggestion) *DeductionSuggestionModel {
	model := &DeductionSuggestionModel{
		ID:               suggestion.ID,
		UserID:           suggestion.UserID,
		SectionCode:      suggestion.SectionCode,
		SuggestedAmount:  suggestion.SuggestedAmount,
		Confidence:       suggestion.Confidence,
		Source:           string(suggestion.Source),
		Reasoning:        suggestion.Reasoning,
		EstimatedSavings: suggestion.EstimatedSavings,
		Status:           string(suggestion.Status),
		CreatedAt:        suggestion.CreatedAt,
		UpdatedAt:        suggestion.UpdatedAt,
	}

	model.SourceRecordIDs = make(pq.StringArray, len(suggestion.SourceRecordIDs))
	for i, id := range suggestion.SourceRecordIDs {
		model.SourceRecordIDs[i] = id.String()
	}

	return model
}
