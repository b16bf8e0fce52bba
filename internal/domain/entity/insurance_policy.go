// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PolicyType represents the kind of insurance policy.
type PolicyType string

const (
	PolicyTypeHealth PolicyType = "health"
	PolicyTypeLife   PolicyType = "life"
	PolicyTypeTerm   PolicyType = "term"
)

// IsValidPolicyType reports whether t is a supported policy type.
func IsValidPolicyType(t PolicyType) bool {
	return t == PolicyTypeHealth || t == PolicyTypeLife || t == PolicyTypeTerm
}

// InsurancePolicy represents an insurance record owned by a user. Deduction
// discovery scans active policies for section 80C/80D candidates.
type InsurancePolicy struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PolicyType    PolicyType
	Provider      string
	PolicyNumber  string
	AnnualPremium decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewInsurancePolicy creates a new InsurancePolicy entity.
func NewInsurancePolicy(userID uuid.UUID, policyType PolicyType, provider, policyNumber string, annualPremium decimal.Decimal) *InsurancePolicy {
	now := time.Now().UTC()

	return &InsurancePolicy{
		ID:            uuid.New(),
		UserID:        userID,
		PolicyType:    policyType,
		Provider:      provider,
		PolicyNumber:  policyNumber,
		AnnualPremium: annualPremium,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
