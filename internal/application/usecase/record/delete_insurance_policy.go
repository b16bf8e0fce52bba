// Package record contains the insurance and loan record use cases.
package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/application/adapter"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// DeleteInsurancePolicyInput represents the input for deleting a policy.
type DeleteInsurancePolicyInput struct {
	UserID   uuid.UUID
	PolicyID uuid.UUID
}

// DeleteInsurancePolicyUseCase soft-deletes a user's insurance policy.
type DeleteInsurancePolicyUseCase struct {
	insuranceRepo adapter.InsuranceRepository
}

// NewDeleteInsurancePolicyUseCase creates a new DeleteInsurancePolicyUseCase instance.
func NewDeleteInsurancePolicyUseCase(insuranceRepo adapter.InsuranceRepository) *DeleteInsurancePolicyUseCase {
	return &DeleteInsurancePolicyUseCase{
		insuranceRepo: insuranceRepo,
	}
}

// Execute deletes the policy after an ownership check.
func (uc *DeleteInsurancePolicyUseCase) Execute(ctx context.Context, input DeleteInsurancePolicyInput) error {
	policy, err := uc.insuranceRepo.FindByID(ctx, input.PolicyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInsurancePolicyNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeInsurancePolicyNotFound,
				"insurance policy not found",
				domainerror.ErrInsurancePolicyNotFound,
			)
		}
		return fmt.Errorf("failed to load insurance policy: %w", err)
	}

	if policy.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeNotRecordOwner,
			"insurance policy belongs to another user",
			domainerror.ErrNotRecordOwner,
		)
	}

	if err := uc.insuranceRepo.Delete(ctx, input.PolicyID); err != nil {
		return fmt.Errorf("failed to delete insurance policy: %w", err)
	}

	return nil
}
