// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueCalculationSummaryEmail queues a calculation summary email.
func (s *Service) QueueCalculationSummaryEmail(ctx context.Context, input adapter.QueueCalculationSummaryInput) error {
	subject := fmt.Sprintf("Your %s tax calculation - Chronyx", input.FinancialYearCode)

	templateData := map[string]interface{}{
		"user_name":           input.UserName,
		"financial_year_code": input.FinancialYearCode,
		"regime_code":         input.RegimeCode,
		"gross_income":        input.GrossIncome,
		"taxable_income":      input.TaxableIncome,
		"total_tax":           input.TotalTax,
		"effective_rate":      input.EffectiveRate,
	}

	job := entity.NewEmailJob(
		entity.TemplateCalculationSummary,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue calculation summary email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
