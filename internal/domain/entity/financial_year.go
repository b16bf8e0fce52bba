// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FinancialYear identifies a tax year (e.g. "FY2025_26").
// Years are immutable once published and are looked up by code.
type FinancialYear struct {
	ID          uuid.UUID
	Code        string
	DisplayName string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFinancialYear creates a new FinancialYear entity.
func NewFinancialYear(code, displayName string, isActive bool) *FinancialYear {
	now := time.Now().UTC()

	return &FinancialYear{
		ID:          uuid.New(),
		Code:        code,
		DisplayName: displayName,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
