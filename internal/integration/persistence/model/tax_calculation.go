// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/domain/entity"
)

// DeductionsJSON represents the JSONB structure of applied deductions keyed by
// section code.
type DeductionsJSON map[string]decimal.Decimal

// Value implements the driver.Valuer interface.
func (d DeductionsJSON) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface.
func (d *DeductionsJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, d)
}

// SlabTaxJSON is one row of the persisted per-slab breakdown.
type SlabTaxJSON struct {
	SlabOrder      int              `json:"slab_order"`
	MinAmount      decimal.Decimal  `json:"min_amount"`
	MaxAmount      *decimal.Decimal `json:"max_amount"`
	RatePercentage decimal.Decimal  `json:"rate_percentage"`
	TaxableInSlab  decimal.Decimal  `json:"taxable_in_slab"`
	TaxInSlab      decimal.Decimal  `json:"tax_in_slab"`
}

// SlabBreakdownJSON represents the JSONB structure of the slab breakdown.
type SlabBreakdownJSON []SlabTaxJSON

// Value implements the driver.Valuer interface.
func (s SlabBreakdownJSON) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface.
func (s *SlabBreakdownJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}

// TaxCalculationModel represents the tax_calculations table in the database.
// The table is append-only: rows are inserted by saved calculations and read
// back as history, never updated.
type TaxCalculationModel struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID         `gorm:"type:uuid;not null;index"`
	FinancialYearCode   string            `gorm:"type:varchar(20);not null"`
	RegimeCode          string            `gorm:"type:varchar(10);not null"`
	GrossIncome         decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	StandardDeduction   decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	TotalDeductions     decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	DeductionsBreakdown DeductionsJSON    `gorm:"type:jsonb"`
	TaxableIncome       decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	SlabBreakdown       SlabBreakdownJSON `gorm:"type:jsonb"`
	TaxBeforeRebate     decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	Rebate              decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	TaxAfterRebate      decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	Surcharge           decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	Cess                decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	TotalTax            decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	EffectiveRate       decimal.Decimal   `gorm:"type:decimal(7,2);not null"`
	CreatedAt           time.Time         `gorm:"not null;index"`
}

// TableName returns the table name for the TaxCalculationModel.
func (TaxCalculationModel) TableName() string {
	return "tax_calculations"
}

// ToEntity converts a TaxCalculationModel to a domain TaxCalculation entity.
func (m *TaxCalculationModel) ToEntity() *entity.TaxCalculation {
	calculation := &entity.TaxCalculation{
		ID:                m.ID,
		UserID:            m.UserID,
		FinancialYearCode: m.FinancialYearCode,
		RegimeCode:        entity.RegimeCode(m.RegimeCode),
		GrossIncome:       m.GrossIncome,
		StandardDeduction: m.StandardDeduction,
		TotalDeductions:   m.TotalDeductions,
		TaxableIncome:     m.TaxableIncome,
		TaxBeforeRebate:   m.TaxBeforeRebate,
		Rebate:            m.Rebate,
		TaxAfterRebate:    m.TaxAfterRebate,
		Surcharge:         m.Surcharge,
		Cess:              m.Cess,
		TotalTax:          m.TotalTax,
		EffectiveRate:     m.EffectiveRate,
		CreatedAt:         m.CreatedAt,
	}

	calculation.DeductionsBreakdown = make(map[string]decimal.Decimal, len(m.DeductionsBreakdown))
	for section, amount := range m.DeductionsBreakdown {
		calculation.DeductionsBreakdown[section] = amount
	}

	calculation.SlabBreakdown = make([]entity.SlabTax, 0, len(m.SlabBreakdown))
	for _, row := range m.SlabBreakdown {
		calculation.SlabBreakdown = append(calculation.SlabBreakdown, entity.SlabTax{
			SlabOrder:      row.SlabOrder,
			MinAmount:      row.MinAmount,
			MaxAmount:      row.MaxAmount,
			RatePercentage: row.RatePercentage,
			TaxableInSlab:  row.TaxableInSlab,
			TaxInSlab:      row.TaxInSlab,
		})
	}

	return calculation
}

// TaxCalculationFromEntity creates a TaxCalculationModel from a domain entity.
func TaxCalculationFromEntity(calculation *entity.TaxCalculation) *TaxCalculationModel {
	model := &TaxCalculationModel{
		ID:                calculation.ID,
		UserID:            calculation.UserID,
		FinancialYearCode: calculation.FinancialYearCode,
		RegimeCode:        string(calculation.RegimeCode),
		GrossIncome:       calculation.GrossIncome,
		StandardDeduction: calculation.StandardDeduction,
		TotalDeductions:   calculation.TotalDeductions,
		TaxableIncome:     calculation.TaxableIncome,
		TaxBeforeRebate:   calculation.TaxBeforeRebate,
		Rebate:            calculation.Rebate,
		TaxAfterRebate:    calculation.TaxAfterRebate,
		Surcharge:         calculation.Surcharge,
		Cess:              calculation.Cess,
		TotalTax:          calculation.TotalTax,
		EffectiveRate:     calculation.EffectiveRate,
		CreatedAt:         calculation.CreatedAt,
	}

	model.DeductionsBreakdown = make(DeductionsJSON, len(calculation.DeductionsBreakdown))
	for section, amount := range calculation.DeductionsBreakdown {
		model.DeductionsBreakdown[section] = amount
	}

	model.SlabBreakdown = make(SlabBreakdownJSON, 0, len(calculation.SlabBreakdown))
	for _, row := range calculation.SlabBreakdown {
		model.SlabBreakdown = append(model.SlabBreakdown, SlabTaxJSON{
			SlabOrder:      row.SlabOrder,
			MinAmount:      row.MinAmount,
			MaxAmount:      row.MaxAmount,
			RatePercentage: row.RatePercentage,
			TaxableInSlab:  row.TaxableInSlab,
			TaxInSlab:      row.TaxInSlab,
		})
	}

	return model
}
