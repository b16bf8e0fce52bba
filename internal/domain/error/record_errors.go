// Package error defines domain-specific errors for the Chronyx application.
package error

import "errors"

// Record (insurance/loan) and suggestion domain errors.
var (
	// ErrInsurancePolicyNotFound is returned when an insurance policy is not found.
	ErrInsurancePolicyNotFound = errors.New("insurance policy not found")

	// ErrLoanNotFound is returned when a loan is not found.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrSuggestionNotFound is returned when a deduction suggestion is not found.
	ErrSuggestionNotFound = errors.New("deduction suggestion not found")

	// ErrSuggestionAlreadyResolved is returned when accepting or dismissing a
	// suggestion that is no longer pending.
	ErrSuggestionAlreadyResolved = errors.New("deduction suggestion already resolved")

	// ErrInvalidPolicyType is returned when the policy type is invalid.
	ErrInvalidPolicyType = errors.New("invalid policy type")

	// ErrInvalidLoanType is returned when the loan type is invalid.
	ErrInvalidLoanType = errors.New("invalid loan type")

	// ErrInvalidRecordAmount is returned when a premium or interest amount is negative.
	ErrInvalidRecordAmount = errors.New("record amounts must not be negative")

	// ErrNotRecordOwner is returned when a user touches a record they do not own.
	ErrNotRecordOwner = errors.New("not authorized to modify record")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPolicyType   RecordErrorCode = "REC-010001"
	ErrCodeInvalidLoanType     RecordErrorCode = "REC-010002"
	ErrCodeInvalidRecordAmount RecordErrorCode = "REC-010003"
	ErrCodeMissingRecordFields RecordErrorCode = "REC-010004"

	// Not-found / authorization errors (02XXXX)
	ErrCodeInsurancePolicyNotFound   RecordErrorCode = "REC-020001"
	ErrCodeLoanNotFound              RecordErrorCode = "REC-020002"
	ErrCodeSuggestionNotFound        RecordErrorCode = "REC-020003"
	ErrCodeSuggestionAlreadyResolved RecordErrorCode = "REC-020004"
	ErrCodeNotRecordOwner            RecordErrorCode = "REC-020005"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
