// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/chronyx/backend/internal/domain/entity"
)

// CreateInsurancePolicyRequest represents the request body for creating an
// insurance policy record.
type CreateInsurancePolicyRequest struct {
	PolicyType    string  `json:"policy_type" binding:"required,oneof=health life term"`
	Provider      string  `json:"provider" binding:"required,min=1,max=255"`
	PolicyNumber  string  `json:"policy_number,omitempty" binding:"omitempty,max=100"`
	AnnualPremium float64 `json:"annual_premium"`
}

// InsurancePolicyResponse represents an insurance policy in API responses.
type InsurancePolicyResponse struct {
	ID            string    `json:"id"`
	PolicyType    string    `json:"policy_type"`
	Provider      string    `json:"provider"`
	PolicyNumber  string    `json:"policy_number"`
	AnnualPremium string    `json:"annual_premium"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// InsurancePolicyListResponse represents a list of insurance policies.
type InsurancePolicyListResponse struct {
	Policies []InsurancePolicyResponse `json:"policies"`
}

// CreateLoanRequest represents the request body for creating a loan record.
type CreateLoanRequest struct {
	LoanType           string  `json:"loan_type" binding:"required,oneof=home education vehicle personal"`
	Lender             string  `json:"lender" binding:"required,min=1,max=255"`
	Principal          float64 `json:"principal"`
	InterestRate       float64 `json:"interest_rate"`
	AnnualInterestPaid float64 `json:"annual_interest_paid"`
}

// LoanResponse represents a loan in API responses.
type LoanResponse struct {
	ID                 string    `json:"id"`
	LoanType           string    `json:"loan_type"`
	Lender             string    `json:"lender"`
	Principal          string    `json:"principal"`
	InterestRate       string    `json:"interest_rate"`
	AnnualInterestPaid string    `json:"annual_interest_paid"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// LoanListResponse represents a list of loans.
type LoanListResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// ToInsurancePolicyResponse converts a domain InsurancePolicy to its response DTO.
func ToInsurancePolicyResponse(policy *entity.InsurancePolicy) InsurancePolicyResponse {
	return InsurancePolicyResponse{
		ID:            policy.ID.String(),
		PolicyType:    string(policy.PolicyType),
		Provider:      policy.Provider,
		PolicyNumber:  policy.PolicyNumber,
		AnnualPremium: policy.AnnualPremium.String(),
		IsActive:      policy.IsActive,
		CreatedAt:     policy.CreatedAt,
	}
}

// ToInsurancePolicyListResponse converts policies to the list response DTO.
func ToInsurancePolicyListResponse(policies []*entity.InsurancePolicy) InsurancePolicyListResponse {
	out := InsurancePolicyListResponse{Policies: make([]InsurancePolicyResponse, 0, len(policies))}
	for _, policy := range policies {
		out.Policies = append(out.Policies, ToInsurancePolicyResponse(policy))
	}
	return out
}

// ToLoanResponse converts a domain Loan to its response DTO.
func ToLoanResponse(loan *entity.Loan) LoanResponse {
	return LoanResponse{
		ID:                 loan.ID.String(),
		LoanType:           string(loan.LoanType),
		Lender:             loan.Lender,
		Principal:          loan.Principal.String(),
		InterestRate:       loan.InterestRate.String(),
		AnnualInterestPaid: loan.AnnualInterestPaid.String(),
		IsActive:           loan.IsActive,
		CreatedAt:          loan.CreatedAt,
	}
}

// ToLoanListResponse converts loans to the list response DTO.
func ToLoanListResponse(loans []*entity.Loan) LoanListResponse {
	out := LoanListResponse{Loans: make([]LoanResponse, 0, len(loans))}
	for _, loan := range loans {
		out.Loans = append(out.Loans, ToLoanResponse(loan))
	}
	return out
}
