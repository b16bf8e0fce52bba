// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/domain/entity"
)

// InsuranceRepository defines persistence for insurance policy records.
type InsuranceRepository interface {
	// Create creates a new insurance policy.
	Create(ctx context.Context, policy *entity.InsurancePolicy) error

	// FindByID retrieves a policy by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InsurancePolicy, error)

	// FindByUser retrieves all policies for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InsurancePolicy, error)

	// FindActiveByUser retrieves the user's active policies (discovery input).
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InsurancePolicy, error)

	// Delete soft-deletes a policy.
	Delete(ctx context.Context, id uuid.UUID) error
}
