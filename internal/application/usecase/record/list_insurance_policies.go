// Package record contains the insurance and loan record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
)

// ListInsurancePoliciesInput represents the input for listing policies.
type ListInsurancePoliciesInput struct {
	UserID uuid.UUID
}

// ListInsurancePoliciesOutput represents the user's policies.
type ListInsurancePoliciesOutput struct {
	Policies []*entity.InsurancePolicy
}

// ListInsurancePoliciesUseCase lists a user's insurance policies.
type ListInsurancePoliciesUseCase struct {
	insuranceRepo adapter.InsuranceRepository
}

// NewListInsurancePoliciesUseCase creates a new ListInsurancePoliciesUseCase instance.
func NewListInsurancePoliciesUseCase(insuranceRepo adapter.InsuranceRepository) *ListInsurancePoliciesUseCase {
	return &ListInsurancePoliciesUseCase{
		insuranceRepo: insuranceRepo,
	}
}

// Execute returns the user's policies.
func (uc *ListInsurancePoliciesUseCase) Execute(ctx context.Context, input ListInsurancePoliciesInput) (*ListInsurancePoliciesOutput, error) {
	policies, err := uc.insuranceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance policies: %w", err)
	}

	return &ListInsurancePoliciesOutput{Policies: policies}, nil
}
