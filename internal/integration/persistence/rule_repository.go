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

// ruleRepository implements the adapter.RuleRepository interface.
type ruleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new rule repository instance.
func NewRuleRepository(db *gorm.DB) adapter.RuleRepository {
	return &ruleRepository{
		db: db,
	}
}

// FindActiveYearByCode resolves an active financial year by its code.
func (r *ruleRepository) FindActiveYearByCode(ctx context.Context, code string) (*entity.FinancialYear, error) {
	var yearModel model.FinancialYearModel
	result := r.db.WithContext(ctx).Where("code = ? AND is_active = ?", code, true).First(&yearModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFinancialYearNotFound
		}
		return nil, result.Error
	}
	return yearModel.ToEntity(), nil
}

// FindRegimeRules resolves a regime and its ordered slabs for a year.
func (r *ruleRepository) FindRegimeRules(ctx context.Context, financialYearID uuid.UUID, code entity.RegimeCode) (*adapter.RegimeRules, error) {
	var regimeModel model.TaxRegimeModel
	result := r.db.WithContext(ctx).
		Where("financial_year_id = ? AND code = ?", financialYearID, string(code)).
		First(&regimeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRegimeNotFound
		}
		return nil, result.Error
	}

	var slabModels []model.TaxSlabModel
	result = r.db.WithContext(ctx).
		Where("regime_id = ?", regimeModel.ID).
		Order("slab_order ASC").
		Find(&slabModels)
	if result.Error != nil {
		return nil, result.Error
	}

	slabs := make([]*entity.TaxSlab, 0, len(slabModels))
	for i := range slabModels {
		slabs = append(slabs, slabModels[i].ToEntity())
	}

	return &adapter.RegimeRules{
		Regime: regimeModel.ToEntity(),
		Slabs:  slabs,
	}, nil
}

// FindDeductionRules returns the deduction-limit table of a year keyed by section code.
func (r *ruleRepository) FindDeductionRules(ctx context.Context, financialYearID uuid.UUID) (map[string]*entity.DeductionRule, error) {
	var ruleModels []model.DeductionRuleModel
	result := r.db.WithContext(ctx).
		Where("financial_year_id = ?", financialYearID).
		Find(&ruleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rules := make(map[string]*entity.DeductionRule, len(ruleModels))
	for i := range ruleModels {
		rule := ruleModels[i].ToEntity()
		rules[rule.SectionCode] = rule
	}
	return rules, nil
}

// ListActiveYears returns all active financial years, newest code first.
func (r *ruleRepository) ListActiveYears(ctx context.Context) ([]*entity.FinancialYear, error) {
	var yearModels []model.FinancialYearModel
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("code DESC").
		Find(&yearModels)
	if result.Error != nil {
		return nil, result.Error
	}

	years := make([]*entity.FinancialYear, 0, len(yearModels))
	for i := range yearModels {
		years = append(years, yearModels[i].ToEntity())
	}
	return years, nil
}
