// Package error defines domain-specific errors for the Chronyx application.
package error

import "errors"

// Tax engine domain errors.
var (
	// ErrNegativeGrossIncome is returned when a calculation is requested for a negative income.
	ErrNegativeGrossIncome = errors.New("gross income must not be negative")

	// ErrInvalidRegimeCode is returned when the regime code is not "old" or "new".
	ErrInvalidRegimeCode = errors.New("invalid regime code")

	// ErrNegativeDeduction is returned when a claimed deduction amount is negative.
	ErrNegativeDeduction = errors.New("deduction amounts must not be negative")

	// ErrFinancialYearNotFound is returned when the financial year is unknown or inactive.
	ErrFinancialYearNotFound = errors.New("financial year not found or inactive")

	// ErrRegimeNotFound is returned when no regime row exists for the resolved year.
	ErrRegimeNotFound = errors.New("regime not found for financial year")

	// ErrMissingSlabConfiguration is returned when a resolved regime has no slabs.
	// This is a configuration integrity fault, not a user input error.
	ErrMissingSlabConfiguration = errors.New("regime has no slab configuration")

	// ErrCalculationNotFound is returned when a saved calculation is not found.
	ErrCalculationNotFound = errors.New("calculation not found")
)

// TaxErrorCode defines error codes for tax engine errors.
// Format: TAX-XXYYYY where XX is category and YYYY is specific error.
type TaxErrorCode string

const (
	// Validation errors (01XXXX) — the caller must correct the input.
	ErrCodeNegativeGrossIncome TaxErrorCode = "TAX-010001"
	ErrCodeInvalidRegimeCode   TaxErrorCode = "TAX-010002"
	ErrCodeNegativeDeduction   TaxErrorCode = "TAX-010003"
	ErrCodeMissingTaxFields    TaxErrorCode = "TAX-010004"

	// Not-found errors (02XXXX) — the caller requested an unsupported year/regime.
	ErrCodeFinancialYearNotFound TaxErrorCode = "TAX-020001"
	ErrCodeRegimeNotFound        TaxErrorCode = "TAX-020002"
	ErrCodeCalculationNotFound   TaxErrorCode = "TAX-020003"

	// Configuration errors (03XXXX) — the rule store is incomplete; operator attention.
	ErrCodeMissingSlabConfiguration TaxErrorCode = "TAX-030001"
)

// TaxError represents a tax engine error with code and message.
type TaxError struct {
	Code    TaxErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaxError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaxError) Unwrap() error {
	return e.Err
}

// NewTaxError creates a new TaxError with the given code and message.
func NewTaxError(code TaxErrorCode, message string, err error) *TaxError {
	return &TaxError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
