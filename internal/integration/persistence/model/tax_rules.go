// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/domain/entity"
)

// FinancialYearModel represents the financial_years table in the database.
type FinancialYearModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	DisplayName string    `gorm:"type:varchar(50);not null"`
	IsActive    bool      `gorm:"default:true;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the FinancialYearModel.
func (FinancialYearModel) TableName() string {
	return "financial_years"
}

// ToEntity converts a FinancialYearModel to a domain FinancialYear entity.
func (m *FinancialYearModel) ToEntity() *entity.FinancialYear {
	return &entity.FinancialYear{
		ID:          m.ID,
		Code:        m.Code,
		DisplayName: m.DisplayName,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FinancialYearFromEntity creates a FinancialYearModel from a domain entity.
func FinancialYearFromEntity(year *entity.FinancialYear) *FinancialYearModel {
	return &FinancialYearModel{
		ID:          year.ID,
		Code:        year.Code,
		DisplayName: year.DisplayName,
		IsActive:    year.IsActive,
		CreatedAt:   year.CreatedAt,
		UpdatedAt:   year.UpdatedAt,
	}
}

// TaxRegimeModel represents the tax_regimes table in the database.
type TaxRegimeModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FinancialYearID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_regime_year_code,unique"`
	Code              string          `gorm:"type:varchar(10);not null;index:idx_regime_year_code,unique"`
	DisplayName       string          `gorm:"type:varchar(50);not null"`
	StandardDeduction decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RebateLimit       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RebateMax         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AllowsDeductions  bool            `gorm:"not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TaxRegimeModel.
func (TaxRegimeModel) TableName() string {
	return "tax_regimes"
}

// ToEntity converts a TaxRegimeModel to a domain TaxRegime entity.
func (m *TaxRegimeModel) ToEntity() *entity.TaxRegime {
	return &entity.TaxRegime{
		ID:                m.ID,
		FinancialYearID:   m.FinancialYearID,
		Code:              entity.RegimeCode(m.Code),
		DisplayName:       m.DisplayName,
		StandardDeduction: m.StandardDeduction,
		RebateLimit:       m.RebateLimit,
		RebateMax:         m.RebateMax,
		AllowsDeductions:  m.AllowsDeductions,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// TaxRegimeFromEntity creates a TaxRegimeModel from a domain entity.
func TaxRegimeFromEntity(regime *entity.TaxRegime) *TaxRegimeModel {
	return &TaxRegimeModel{
		ID:                regime.ID,
		FinancialYearID:   regime.FinancialYearID,
		Code:              string(regime.Code),
		DisplayName:       regime.DisplayName,
		StandardDeduction: regime.StandardDeduction,
		RebateLimit:       regime.RebateLimit,
		RebateMax:         regime.RebateMax,
		AllowsDeductions:  regime.AllowsDeductions,
		CreatedAt:         regime.CreatedAt,
		UpdatedAt:         regime.UpdatedAt,
	}
}

// TaxSlabModel represents the tax_slabs table in the database.
type TaxSlabModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	RegimeID       uuid.UUID        `gorm:"type:uuid;not null;index:idx_slab_regime_order,unique"`
	SlabOrder      int              `gorm:"not null;index:idx_slab_regime_order,unique"`
	MinAmount      decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	MaxAmount      *decimal.Decimal `gorm:"type:decimal(15,2)"`
	RatePercentage decimal.Decimal  `gorm:"type:decimal(5,2);not null"`
}

// TableName returns the table name for the TaxSlabModel.
func (TaxSlabModel) TableName() string {
	return "tax_slabs"
}

// ToEntity converts a TaxSlabModel to a domain TaxSlab entity.
func (m *TaxSlabModel) ToEntity() *entity.TaxSlab {
	return &entity.TaxSlab{
		ID:             m.ID,
		RegimeID:       m.RegimeID,
		SlabOrder:      m.SlabOrder,
		MinAmount:      m.MinAmount,
		MaxAmount:      m.MaxAmount,
		RatePercentage: m.RatePercentage,
	}
}

// TaxSlabFromEntity creates a TaxSlabModel from a domain entity.
func TaxSlabFromEntity(slab *entity.TaxSlab) *TaxSlabModel {
	return &TaxSlabModel{
		ID:             slab.ID,
		RegimeID:       slab.RegimeID,
		SlabOrder:      slab.SlabOrder,
		MinAmount:      slab.MinAmount,
		MaxAmount:      slab.MaxAmount,
		RatePercentage: slab.RatePercentage,
	}
}

// DeductionRuleModel represents the deduction_rules table in the database.
type DeductionRuleModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	FinancialYearID uuid.UUID        `gorm:"type:uuid;not null;index:idx_deduction_year_section,unique"`
	SectionCode     string           `gorm:"type:varchar(10);not null;index:idx_deduction_year_section,unique"`
	Description     string           `gorm:"type:varchar(255);not null"`
	MaxLimit        *decimal.Decimal `gorm:"type:decimal(15,2)"`
}

// TableName returns the table name for the DeductionRuleModel.
func (DeductionRuleModel) TableName() string {
	return "deduction_rules"
}

// ToEntity converts a DeductionRuleModel to a domain DeductionRule entity.
func (m *DeductionRuleModel) ToEntity() *entity.DeductionRule {
	return &entity.DeductionRule{
		ID:              m.ID,
		FinancialYearID: m.FinancialYearID,
		SectionCode:     m.SectionCode,
		Description:     m.Description,
		MaxLimit:        m.MaxLimit,
	}
}

// DeductionRuleFromEntity creates a DeductionRuleModel from a domain entity.
func DeductionRuleFromEntity(rule *entity.DeductionRule) *DeductionRuleModel {
	return &DeductionRuleModel{
		ID:              rule.ID,
		FinancialYearID: rule.FinancialYearID,
		SectionCode:     rule.SectionCode,
		Description:     rule.Description,
		MaxLimit:        rule.MaxLimit,
	}
}
