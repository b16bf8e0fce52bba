// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/domain/entity"
)

// CalculationRepository defines persistence for the append-only calculation
// history. Rows are inserted once and never updated or deleted by the engine.
type CalculationRepository interface {
	// Save inserts a calculation into the history.
	Save(ctx context.Context, calculation *entity.TaxCalculation) error

	// FindByUser retrieves the user's saved calculations, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TaxCalculation, error)

	// FindByID retrieves a single saved calculation.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TaxCalculation, error)
}
