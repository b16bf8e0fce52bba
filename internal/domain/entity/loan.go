// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanType represents the kind of loan.
type LoanType string

const (
	LoanTypeHome      LoanType = "home"
	LoanTypeEducation LoanType = "education"
	LoanTypeVehicle   LoanType = "vehicle"
	LoanTypePersonal  LoanType = "personal"
)

// IsValidLoanType reports whether t is a supported loan type.
func IsValidLoanType(t LoanType) bool {
	switch t {
	case LoanTypeHome, LoanTypeEducation, LoanTypeVehicle, LoanTypePersonal:
		return true
	}
	return false
}

// Loan represents a loan record owned by a user. Deduction discovery scans
// active loans for section 24B/80E interest candidates.
type Loan struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	LoanType           LoanType
	Lender             string
	Principal          decimal.Decimal
	InterestRate       decimal.Decimal
	AnnualInterestPaid decimal.Decimal
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft-delete support
}

// NewLoan creates a new Loan entity.
func NewLoan(
	userID uuid.UUID,
	loanType LoanType,
	lender string,
	principal, interestRate, annualInterestPaid decimal.Decimal,
) *Loan {
	now := time.Now().UTC()

	return &Loan{
		ID:                 uuid.New(),
		UserID:             userID,
		LoanType:           loanType,
		Lender:             lender,
		Principal:          principal,
		InterestRate:       interestRate,
		AnnualInterestPaid: annualInterestPaid,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
