// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/usecase/tax"
	"github.com/chronyx/backend/internal/domain/entity"
)

// CalculateTaxRequest represents the request body for a single-regime
// calculation.
type CalculateTaxRequest struct {
	FinancialYear   string             `json:"financial_year" binding:"required"`
	Regime          string             `json:"regime" binding:"required,oneof=old new"`
	GrossIncome     float64            `json:"gross_income"`
	Deductions      map[string]float64 `json:"deductions,omitempty"`
	SaveCalculation bool               `json:"save_calculation,omitempty"`
}

// CompareRegimesRequest represents the request body for a regime comparison.
// No regime field: both regimes are always computed.
type CompareRegimesRequest struct {
	FinancialYear string             `json:"financial_year" binding:"required"`
	GrossIncome   float64            `json:"gross_income"`
	Deductions    map[string]float64 `json:"deductions,omitempty"`
}

// SlabTaxResponse represents one row of the per-slab breakdown. Every slab of
// the regime appears, including slabs the income never reached.
type SlabTaxResponse struct {
	SlabOrder      int     `json:"slab_order"`
	MinAmount      string  `json:"min_amount"`
	MaxAmount      *string `json:"max_amount"`
	RatePercentage string  `json:"rate_percentage"`
	TaxableInSlab  string  `json:"taxable_in_slab"`
	TaxInSlab      string  `json:"tax_in_slab"`
}

// CalculationResponse represents the full breakdown of a single-regime
// calculation in API responses.
type CalculationResponse struct {
	ID                  string            `json:"id,omitempty"`
	FinancialYear       string            `json:"financial_year"`
	Regime              string            `json:"regime"`
	GrossIncome         string            `json:"gross_income"`
	StandardDeduction   string            `json:"standard_deduction"`
	TotalDeductions     string            `json:"total_deductions"`
	DeductionsBreakdown map[string]string `json:"deductions_breakdown"`
	TaxableIncome       string            `json:"taxable_income"`
	SlabBreakdown       []SlabTaxResponse `json:"slab_breakdown"`
	TaxBeforeRebate     string            `json:"tax_before_rebate"`
	Rebate87A           string            `json:"rebate_87a"`
	TaxAfterRebate      string            `json:"tax_after_rebate"`
	Surcharge           string            `json:"surcharge"`
	Cess                string            `json:"cess"`
	TotalTax            string            `json:"total_tax"`
	EffectiveRate       string            `json:"effective_rate"`
	Saved               bool              `json:"saved,omitempty"`
	CreatedAt           *time.Time        `json:"created_at,omitempty"`
}

// ComparisonResponse represents the response for a regime comparison.
type ComparisonResponse struct {
	FinancialYear     string              `json:"financial_year"`
	GrossIncome       string              `json:"gross_income"`
	OldRegime         CalculationResponse `json:"old_regime"`
	NewRegime         CalculationResponse `json:"new_regime"`
	RecommendedRegime string              `json:"recommended_regime"`
	SavingsAmount     string              `json:"savings_amount"`
	SavingsPercentage string              `json:"savings_percentage"`
}

// RegimeResponse represents a regime in the year listing.
type RegimeResponse struct {
	Code              string `json:"code"`
	DisplayName       string `json:"display_name"`
	StandardDeduction string `json:"standard_deduction"`
	AllowsDeductions  bool   `json:"allows_deductions"`
}

// FinancialYearResponse represents a financial year and its regimes.
type FinancialYearResponse struct {
	Code        string           `json:"code"`
	DisplayName string           `json:"display_name"`
	Regimes     []RegimeResponse `json:"regimes"`
}

// ListYearsResponse represents the response for listing supported years.
type ListYearsResponse struct {
	Years []FinancialYearResponse `json:"years"`
}

// HistoryResponse represents the response for calculation history.
type HistoryResponse struct {
	Calculations []CalculationResponse `json:"calculations"`
}

// ToDecimalMap converts request deduction amounts to decimals.
func ToDecimalMap(in map[string]float64) map[string]decimal.Decimal {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]decimal.Decimal, len(in))
	for section, amount := range in {
		out[section] = decimal.NewFromFloat(amount)
	}
	return out
}

// ToCalculationResponse converts a domain TaxCalculation to its response DTO.
func ToCalculationResponse(calc *entity.TaxCalculation, saved bool) CalculationResponse {
	breakdown := make(map[string]string, len(calc.DeductionsBreakdown))
	for section, amount := range calc.DeductionsBreakdown {
		breakdown[section] = amount.String()
	}

	slabs := make([]SlabTaxResponse, 0, len(calc.SlabBreakdown))
	for _, slab := range calc.SlabBreakdown {
		row := SlabTaxResponse{
			SlabOrder:      slab.SlabOrder,
			MinAmount:      slab.MinAmount.String(),
			RatePercentage: slab.RatePercentage.String(),
			TaxableInSlab:  slab.TaxableInSlab.String(),
			TaxInSlab:      slab.TaxInSlab.String(),
		}
		if slab.MaxAmount != nil {
			max := slab.MaxAmount.String()
			row.MaxAmount = &max
		}
		slabs = append(slabs, row)
	}

	resp := CalculationResponse{
		FinancialYear:       calc.FinancialYearCode,
		Regime:              string(calc.RegimeCode),
		GrossIncome:         calc.GrossIncome.String(),
		StandardDeduction:   calc.StandardDeduction.String(),
		TotalDeductions:     calc.TotalDeductions.String(),
		DeductionsBreakdown: breakdown,
		TaxableIncome:       calc.TaxableIncome.String(),
		SlabBreakdown:       slabs,
		TaxBeforeRebate:     calc.TaxBeforeRebate.String(),
		Rebate87A:           calc.Rebate.String(),
		TaxAfterRebate:      calc.TaxAfterRebate.String(),
		Surcharge:           calc.Surcharge.String(),
		Cess:                calc.Cess.String(),
		TotalTax:            calc.TotalTax.String(),
		EffectiveRate:       calc.EffectiveRate.String(),
		Saved:               saved,
	}

	if saved {
		resp.ID = calc.ID.String()
		createdAt := calc.CreatedAt
		resp.CreatedAt = &createdAt
	}

	return resp
}

// ToHistoryItemResponse converts a saved calculation to a history row. Saved
// rows always carry their ID and timestamp.
func ToHistoryItemResponse(calc *entity.TaxCalculation) CalculationResponse {
	resp := ToCalculationResponse(calc, false)
	resp.ID = calc.ID.String()
	createdAt := calc.CreatedAt
	resp.CreatedAt = &createdAt
	return resp
}

// ToComparisonResponse converts a domain RegimeComparison to its response DTO.
func ToComparisonResponse(comparison *entity.RegimeComparison) ComparisonResponse {
	return ComparisonResponse{
		FinancialYear:     comparison.FinancialYearCode,
		GrossIncome:       comparison.GrossIncome.String(),
		OldRegime:         ToCalculationResponse(comparison.OldRegime, false),
		NewRegime:         ToCalculationResponse(comparison.NewRegime, false),
		RecommendedRegime: string(comparison.RecommendedRegime),
		SavingsAmount:     comparison.SavingsAmount.String(),
		SavingsPercentage: comparison.SavingsPercentage.String(),
	}
}

// ToListYearsResponse converts listed years with their regimes to the response DTO.
func ToListYearsResponse(years []*tax.YearWithRegimes) ListYearsResponse {
	out := ListYearsResponse{Years: make([]FinancialYearResponse, 0, len(years))}
	for _, y := range years {
		regimes := make([]RegimeResponse, 0, len(y.Regimes))
		for _, r := range y.Regimes {
			regimes = append(regimes, RegimeResponse{
				Code:              string(r.Code),
				DisplayName:       r.DisplayName,
				StandardDeduction: r.StandardDeduction.String(),
				AllowsDeductions:  r.AllowsDeductions,
			})
		}
		out.Years = append(out.Years, FinancialYearResponse{
			Code:        y.Year.Code,
			DisplayName: y.Year.DisplayName,
			Regimes:     regimes,
		})
	}
	return out
}
