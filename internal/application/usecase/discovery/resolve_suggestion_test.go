// Package discovery contains the deduction discovery use cases.
package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
)

func newPendingSuggestion(userID uuid.UUID) *entity.DeductionSuggestion {
	return entity.NewDeductionSuggestion(userID, entity.SectionCode80D, dec(25_000), 0.9,
		entity.SuggestionSourceInsurance, nil, "health premium", dec(5_000))
}

func TestResolveSuggestion_Accept(t *testing.T) {
	userID := uuid.New()
	suggestion := newPendingSuggestion(userID)
	repo := &stubSuggestionRepository{suggestions: []*entity.DeductionSuggestion{suggestion}}
	uc := NewResolveSuggestionUseCase(repo)

	out, err := uc.Execute(context.Background(), ResolveSuggestionInput{
		UserID:       userID,
		SuggestionID: suggestion.ID,
		Resolution:   ResolutionAccept,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Suggestion.Status != entity.SuggestionStatusAccepted {
		t.Errorf("status = %s, want accepted", out.Suggestion.Status)
	}

	stored, _ := repo.FindByID(context.Background(), suggestion.ID)
	if stored.Status != entity.SuggestionStatusAccepted {
		t.Error("accepted status must be persisted")
	}
}

func TestResolveSuggestion_Dismiss(t *testing.T) {
	userID := uuid.New()
	suggestion := newPendingSuggestion(userID)
	repo := &stubSuggestionRepository{suggestions: []*entity.DeductionSuggestion{suggestion}}
	uc := NewResolveSuggestionUseCase(repo)

	out, err := uc.Execute(context.Background(), ResolveSuggestionInput{
		UserID:       userID,
		SuggestionID: suggestion.ID,
		Resolution:   ResolutionDismiss,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Suggestion.Status != entity.SuggestionStatusDismissed {
		t.Errorf("status = %s, want dismissed", out.Suggestion.Status)
	}
}

func TestResolveSuggestion_NotFound(t *testing.T) {
	uc := NewResolveSuggestionUseCase(&stubSuggestionRepository{})

	_, err := uc.Execute(context.Background(), ResolveSuggestionInput{
		UserID:       uuid.New(),
		SuggestionID: uuid.New(),
		Resolution:   ResolutionAccept,
	})

	var recErr *domainerror.RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected RecordError, got %v", err)
	}
	if recErr.Code != domainerror.ErrCodeSuggestionNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeSuggestionNotFound, recErr.Code)
	}
}

func TestResolveSuggestion_WrongOwner(t *testing.T) {
	suggestion := newPendingSuggestion(uuid.New())
	repo := &stubSuggestionRepository{suggestions: []*entity.DeductionSuggestion{suggestion}}
	uc := NewResolveSuggestionUseCase(repo)

	_, err := uc.Execute(context.Background(), ResolveSuggestionInput{
		UserID:       uuid.New(),
		SuggestionID: suggestion.ID,
		Resolution:   ResolutionAccept,
	})

	var recErr *domainerror.RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected RecordError, got %v", err)
	}
	if recErr.Code != domainerror.ErrCodeNotRecordOwner {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotRecordOwner, recErr.Code)
	}
}

func TestResolveSuggestion_AlreadyResolved(t *testing.T) {
	userID := uuid.New()
	suggestion := newPendingSuggestion(userID)
	suggestion.MarkDismissed()
	repo := &stubSuggestionRepository{suggestions: []*entity.DeductionSuggestion{suggestion}}
	uc := NewResolveSuggestionUseCase(repo)

	_, err := uc.Execute(context.Background(), ResolveSuggestionInput{
		UserID:       userID,
		SuggestionID: suggestion.ID,
		Resolution:   ResolutionAccept,
	})

	var recErr *domainerror.RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected RecordError, got %v", err)
	}
	if recErr.Code != domainerror.ErrCodeSuggestionAlreadyResolved {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeSuggestionAlreadyResolved, recErr.Code)
	}
}
