// Package record contains the insurance and loan record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// CreateInsurancePolicyInput represents the input for creating a policy.
type CreateInsurancePolicyInput struct {
	UserID        uuid.UUID
	PolicyType    entity.PolicyType
	Provider      string
	PolicyNumber  string
	AnnualPremium decimal.Decimal
}

// CreateInsurancePolicyOutput represents the created policy.
type CreateInsurancePolicyOutput struct {
	Policy *entity.InsurancePolicy
}

// CreateInsurancePolicyUseCase records a new insurance policy for a user.
type CreateInsurancePolicyUseCase struct {
	insuranceRepo adapter.InsuranceRepository
}

// NewCreateInsurancePolicyUseCase creates a new CreateInsurancePolicyUseCase instance.
func NewCreateInsurancePolicyUseCase(insuranceRepo adapter.InsuranceRepository) *CreateInsurancePolicyUseCase {
	return &CreateInsurancePolicyUseCase{
		insuranceRepo: insuranceRepo,
	}
}

// Execute validates and persists the policy.
func (uc *CreateInsurancePolicyUseCase) Execute(ctx context.Context, input CreateInsurancePolicyInput) (*CreateInsurancePolicyOutput, error) {
	if !entity.IsValidPolicyType(input.PolicyType) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidPolicyType,
			fmt.Sprintf("policy type %q is not supported", input.PolicyType),
			domainerror.ErrInvalidPolicyType,
		)
	}
	if input.AnnualPremium.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordAmount,
			"annual premium must not be negative",
			domainerror.ErrInvalidRecordAmount,
		)
	}
	if input.Provider == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"provider is required",
			nil,
		)
	}

	policy := entity.NewInsurancePolicy(input.UserID, input.PolicyType, input.Provider, input.PolicyNumber, input.AnnualPremium)
	if err := uc.insuranceRepo.Create(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to create insurance policy: %w", err)
	}

	return &CreateInsurancePolicyOutput{Policy: policy}, nil
}
