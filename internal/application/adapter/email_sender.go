// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueCalculationSummaryInput represents the input for queueing a calculation
// summary email.
type QueueCalculationSummaryInput struct {
	UserEmail         string
	UserName          string
	FinancialYearCode string
	RegimeCode        string
	GrossIncome       string
	TaxableIncome     string
	TotalTax          string
	EffectiveRate     string
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueCalculationSummaryEmail queues a calculation summary email.
	QueueCalculationSummaryEmail(ctx context.Context, input QueueCalculationSummaryInput) error
}
