// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
	"github.com/chronyx/backend/internal/integration/persistence/model"
)

// calculationRepository implements the adapter.CalculationRepository interface.
type calculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository creates a new calculation repository instance.
func NewCalculationRepository(db *gorm.DB) adapter.CalculationRepository {
	return &calculationRepository{
		db: db,
	}
}

// Save inserts a calculation into the append-only history.
func (r *calculationRepository) Save(ctx context.Context, calculation *entity.TaxCalculation) error {
	calcModel := model.TaxCalculationFromEntity(calculation)
	result := r.db.WithContext(ctx).Create(calcModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves a user's saved calculations, newest first.
func (r *calculationRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TaxCalculation, error) {
	var calcModels []model.TaxCalculationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&calcModels)
	if result.Error != nil {
		return nil, result.Error
	}

	calculations := make([]*entity.TaxCalculation, 0, len(calcModels))
	for i := range calcModels {
		calculations = append(calculations, calcModels[i].ToEntity())
	}
	return calculations, nil
}

// FindByID retrieves a saved calculation by its ID.
func (r *calculationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TaxCalculation, error) {
	var calcModel model.TaxCalculationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&calcModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCalculationNotFound
		}
		return nil, result.Error
	}
	return calcModel.ToEntity(), nil
}
