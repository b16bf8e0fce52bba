// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxSlab is one progressive bracket within a regime. Slabs are evaluated in
// ascending SlabOrder; MinAmount is inclusive, MaxAmount is the exclusive upper
// bound and nil for the unbounded last slab. Slabs of a regime are contiguous
// and non-overlapping.
type TaxSlab struct {
	ID             uuid.UUID
	RegimeID       uuid.UUID
	SlabOrder      int
	MinAmount      decimal.Decimal
	MaxAmount      *decimal.Decimal
	RatePercentage decimal.Decimal
}

// NewTaxSlab creates a new TaxSlab entity.
func NewTaxSlab(regimeID uuid.UUID, slabOrder int, minAmount decimal.Decimal, maxAmount *decimal.Decimal, ratePercentage decimal.Decimal) *TaxSlab {
	return &TaxSlab{
		ID:             uuid.New(),
		RegimeID:       regimeID,
		SlabOrder:      slabOrder,
		MinAmount:      minAmount,
		MaxAmount:      maxAmount,
		RatePercentage: ratePercentage,
	}
}

// Width returns the taxable width of the slab, or the remaining amount when the
// slab is unbounded.
func (s *TaxSlab) Width(remaining decimal.Decimal) decimal.Decimal {
	if s.MaxAmount == nil {
		return remaining
	}
	return s.MaxAmount.Sub(s.MinAmount)
}
