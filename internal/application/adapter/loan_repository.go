// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/domain/entity"
)

// LoanRepository defines persistence for loan records.
type LoanRepository interface {
	// Create creates a new loan.
	Create(ctx context.Context, loan *entity.Loan) error

	// FindByID retrieves a loan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindByUser retrieves all loans for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error)

	// FindActiveByUser retrieves the user's active loans (discovery input).
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error)

	// Delete soft-deletes a loan.
	Delete(ctx context.Context, id uuid.UUID) error
}
