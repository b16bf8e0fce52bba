// Package discovery contains the deduction discovery use cases.
package discovery

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/chronyx/backend/internal/application/adapter"
	"github.com/chronyx/backend/internal/domain/entity"
)

func findSuggestion(t *testing.T, suggestions []*entity.DeductionSuggestion, section string) *entity.DeductionSuggestion {
	t.Helper()
	for _, s := range suggestions {
		if s.SectionCode == section {
			return s
		}
	}
	t.Fatalf("no suggestion for section %s", section)
	return nil
}

func TestDiscoverDeductions_HeuristicMapping(t *testing.T) {
	userID := uuid.New()
	insuranceRepo := &stubInsuranceRepository{policies: []*entity.InsurancePolicy{
		entity.NewInsurancePolicy(userID, entity.PolicyTypeHealth, "Acme Health", "H-1", dec(28_000)),
		entity.NewInsurancePolicy(userID, entity.PolicyTypeTerm, "Acme Life", "T-1", dec(35_000)),
	}}
	loanRepo := &stubLoanRepository{loans: []*entity.Loan{
		entity.NewLoan(userID, entity.LoanTypeHome, "First Bank", dec(4_000_000), dec(8), dec(180_000)),
		entity.NewLoan(userID, entity.LoanTypeEducation, "Edu Bank", dec(800_000), dec(10), dec(60_000)),
	}}
	suggestionRepo := &stubSuggestionRepository{}
	uc := NewDiscoverDeductionsUseCase(newStubRules(), insuranceRepo, loanRepo, suggestionRepo, nil)

	out, err := uc.Execute(context.Background(), DiscoverDeductionsInput{
		UserID:            userID,
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(1_500_000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Suggestions) != 4 {
		t.Fatalf("expected 4 suggestions, got %d", len(out.Suggestions))
	}

	// Gross 1,500,000 sits in the 30% old-regime slab.
	cases := []struct {
		section    string
		amount     int64
		confidence float64
		source     entity.SuggestionSource
		savings    int64
	}{
		{entity.SectionCode80D, 28_000, 0.9, entity.SuggestionSourceInsurance, 8_400},
		{entity.SectionCode80C, 35_000, 0.8, entity.SuggestionSourceInsurance, 10_500},
		{entity.SectionCode24B, 180_000, 0.9, entity.SuggestionSourceLoan, 54_000},
		{entity.SectionCode80E, 60_000, 0.85, entity.SuggestionSourceLoan, 18_000},
	}
	for _, tc := range cases {
		s := findSuggestion(t, out.Suggestions, tc.section)
		if !s.SuggestedAmount.Equal(dec(tc.amount)) {
			t.Errorf("%s amount = %s, want %d", tc.section, s.SuggestedAmount, tc.amount)
		}
		if s.Confidence != tc.confidence {
			t.Errorf("%s confidence = %v, want %v", tc.section, s.Confidence, tc.confidence)
		}
		if s.Source != tc.source {
			t.Errorf("%s source = %s, want %s", tc.section, s.Source, tc.source)
		}
		if !s.EstimatedSavings.Equal(dec(tc.savings)) {
			t.Errorf("%s estimated savings = %s, want %d", tc.section, s.EstimatedSavings, tc.savings)
		}
		if s.Status != entity.SuggestionStatusPending {
			t.Errorf("%s status = %s, want pending", tc.section, s.Status)
		}
		if len(s.SourceRecordIDs) != 1 {
			t.Errorf("%s expected 1 source record, got %d", tc.section, len(s.SourceRecordIDs))
		}
	}

	if len(suggestionRepo.suggestions) != 4 {
		t.Errorf("expected suggestions to be persisted, store holds %d", len(suggestionRepo.suggestions))
	}
}

func TestDiscoverDeductions_CapsAtSectionLimit(t *testing.T) {
	userID := uuid.New()
	loanRepo := &stubLoanRepository{loans: []*entity.Loan{
		entity.NewLoan(userID, entity.LoanTypeHome, "First Bank", dec(9_000_000), dec(9), dec(450_000)),
	}}
	uc := NewDiscoverDeductionsUseCase(newStubRules(), &stubInsuranceRepository{}, loanRepo, &stubSuggestionRepository{}, nil)

	out, err := uc.Execute(context.Background(), DiscoverDeductionsInput{
		UserID:            userID,
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(2_000_000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := findSuggestion(t, out.Suggestions, entity.SectionCode24B)
	if !s.SuggestedAmount.Equal(dec(200_000)) {
		t.Errorf("24B suggestion = %s, want capped 200000", s.SuggestedAmount)
	}
	// Savings estimate uses the capped amount, not the raw interest.
	if !s.EstimatedSavings.Equal(dec(60_000)) {
		t.Errorf("24B estimated savings = %s, want 60000", s.EstimatedSavings)
	}
}

func TestDiscoverDeductions_AggregatesSameSection(t *testing.T) {
	userID := uuid.New()
	insuranceRepo := &stubInsuranceRepository{policies: []*entity.InsurancePolicy{
		entity.NewInsurancePolicy(userID, entity.PolicyTypeLife, "Acme Life", "L-1", dec(90_000)),
		entity.NewInsurancePolicy(userID, entity.PolicyTypeTerm, "Other Life", "T-9", dec(80_000)),
	}}
	uc := NewDiscoverDeductionsUseCase(newStubRules(), insuranceRepo, &stubLoanRepository{}, &stubSuggestionRepository{}, nil)

	out, err := uc.Execute(context.Background(), DiscoverDeductionsInput{
		UserID:            userID,
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(900_000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Suggestions) != 1 {
		t.Fatalf("expected one aggregated 80C suggestion, got %d", len(out.Suggestions))
	}
	s := out.Suggestions[0]
	// 90,000 + 80,000 = 170,000 caps at the 150,000 80C limit.
	if !s.SuggestedAmount.Equal(dec(150_000)) {
		t.Errorf("80C amount = %s, want 150000", s.SuggestedAmount)
	}
	if len(s.SourceRecordIDs) != 2 {
		t.Errorf("expected 2 source records, got %d", len(s.SourceRecordIDs))
	}
	// Gross 900,000 is in the 20% slab.
	if !s.EstimatedSavings.Equal(dec(30_000)) {
		t.Errorf("estimated savings = %s, want 30000", s.EstimatedSavings)
	}
}

func TestDiscoverDeductions_IgnoresNonDeductibleRecords(t *testing.T) {
	userID := uuid.New()
	loanRepo := &stubLoanRepository{loans: []*entity.Loan{
		entity.NewLoan(userID, entity.LoanTypeVehicle, "Car Bank", dec(700_000), dec(11), dec(50_000)),
		entity.NewLoan(userID, entity.LoanTypePersonal, "Any Bank", dec(200_000), dec(14), dec(22_000)),
	}}
	uc := NewDiscoverDeductionsUseCase(newStubRules(), &stubInsuranceRepository{}, loanRepo, &stubSuggestionRepository{}, nil)

	out, err := uc.Execute(context.Background(), DiscoverDeductionsInput{
		UserID:            userID,
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(1_000_000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Suggestions) != 0 {
		t.Errorf("vehicle and personal loans must not produce suggestions, got %d", len(out.Suggestions))
	}
}

func TestDiscoverDeductions_RescanReplacesPending(t *testing.T) {
	userID := uuid.New()
	insuranceRepo := &stubInsuranceRepository{policies: []*entity.InsurancePolicy{
		entity.NewInsurancePolicy(userID, entity.PolicyTypeHealth, "Acme Health", "H-1", dec(20_000)),
	}}
	suggestionRepo := &stubSuggestionRepository{}

	accepted := entity.NewDeductionSuggestion(userID, entity.SectionCode80C, dec(50_000), 0.8,
		entity.SuggestionSourceInsurance, nil, "old scan", dec(10_000))
	accepted.MarkAccepted()
	stale := entity.NewDeductionSuggestion(userID, entity.SectionCode24B, dec(100_000), 0.9,
		entity.SuggestionSourceLoan, nil, "old scan", dec(20_000))
	suggestionRepo.suggestions = []*entity.DeductionSuggestion{accepted, stale}

	uc := NewDiscoverDeductionsUseCase(newStubRules(), insuranceRepo, &stubLoanRepository{}, suggestionRepo, nil)

	out, err := uc.Execute(context.Background(), DiscoverDeductionsInput{
		UserID:            userID,
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(800_000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Suggestions) != 1 {
		t.Fatalf("expected 1 fresh suggestion, got %d", len(out.Suggestions))
	}
	if suggestionRepo.deleteCalls != 1 {
		t.Errorf("expected pending suggestions to be cleared once, got %d", suggestionRepo.deleteCalls)
	}

	pending, _ := suggestionRepo.FindPendingByUser(context.Background(), userID)
	if len(pending) != 1 || pending[0].SectionCode != entity.SectionCode80D {
		t.Errorf("stale pending suggestion must be replaced by the fresh 80D one")
	}
	if _, err := suggestionRepo.FindByID(context.Background(), accepted.ID); err != nil {
		t.Error("accepted suggestions must survive a rescan")
	}
}

func TestDiscoverDeductions_AdvisorAddsUncoveredSections(t *testing.T) {
	userID := uuid.New()
	insuranceRepo := &stubInsuranceRepository{policies: []*entity.InsurancePolicy{
		entity.NewInsurancePolicy(userID, entity.PolicyTypeHealth, "Acme Health", "H-1", dec(25_000)),
	}}
	advisor := &stubAdvisor{
		available: true,
		suggestions: []*adapter.AdvisorSuggestion{
			// Duplicates the heuristic 80D; must be dropped.
			{SectionCode: entity.SectionCode80D, SuggestedAmount: dec(40_000), Confidence: 0.7, Reasoning: "health premium"},
			// New section; must be kept and capped.
			{SectionCode: entity.SectionCode80C, SuggestedAmount: dec(500_000), Confidence: 0.6, Reasoning: "possible ELSS investments"},
		},
	}
	uc := NewDiscoverDeductionsUseCase(newStubRules(), insuranceRepo, &stubLoanRepository{}, &stubSuggestionRepository{}, advisor)

	out, err := uc.Execute(context.Background(), DiscoverDeductionsInput{
		UserID:            userID,
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(1_200_000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Suggestions) != 2 {
		t.Fatalf("expected heuristic 80D plus advisor 80C, got %d suggestions", len(out.Suggestions))
	}

	s80d := findSuggestion(t, out.Suggestions, entity.SectionCode80D)
	if s80d.Source != entity.SuggestionSourceInsurance {
		t.Errorf("80D must come from the heuristic scan, got source %s", s80d.Source)
	}

	s80c := findSuggestion(t, out.Suggestions, entity.SectionCode80C)
	if s80c.Source != entity.SuggestionSourceAI {
		t.Errorf("80C source = %s, want ai", s80c.Source)
	}
	if !s80c.SuggestedAmount.Equal(dec(150_000)) {
		t.Errorf("advisor 80C must be capped at 150000, got %s", s80c.SuggestedAmount)
	}
}

func TestDiscoverDeductions_AdvisorFailureDegradesGracefully(t *testing.T) {
	userID := uuid.New()
	insuranceRepo := &stubInsuranceRepository{policies: []*entity.InsurancePolicy{
		entity.NewInsurancePolicy(userID, entity.PolicyTypeHealth, "Acme Health", "H-1", dec(25_000)),
	}}
	advisor := &stubAdvisor{available: true, err: errAdvisorDown}
	uc := NewDiscoverDeductionsUseCase(newStubRules(), insuranceRepo, &stubLoanRepository{}, &stubSuggestionRepository{}, advisor)

	out, err := uc.Execute(context.Background(), DiscoverDeductionsInput{
		UserID:            userID,
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(1_000_000),
	})
	if err != nil {
		t.Fatalf("advisor failure must not fail discovery: %v", err)
	}

	if advisor.calls != 1 {
		t.Errorf("expected one advisor call, got %d", advisor.calls)
	}
	if len(out.Suggestions) != 1 {
		t.Errorf("heuristic suggestions must survive an advisor failure, got %d", len(out.Suggestions))
	}
}

func TestDiscoverDeductions_UnavailableAdvisorIsSkipped(t *testing.T) {
	advisor := &stubAdvisor{available: false}
	uc := NewDiscoverDeductionsUseCase(newStubRules(), &stubInsuranceRepository{}, &stubLoanRepository{}, &stubSuggestionRepository{}, advisor)

	_, err := uc.Execute(context.Background(), DiscoverDeductionsInput{
		UserID:            uuid.New(),
		FinancialYearCode: "FY2025_26",
		GrossIncome:       dec(1_000_000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advisor.calls != 0 {
		t.Errorf("unavailable advisor must not be called, got %d calls", advisor.calls)
	}
}

func TestMarginalRate(t *testing.T) {
	slabs := newStubRules().slabs

	cases := []struct {
		income int64
		rate   int64
	}{
		{0, 0},
		{200_000, 0},
		{250_000, 0},
		{250_001, 5},
		{500_000, 5},
		{500_001, 20},
		{1_000_000, 20},
		{1_000_001, 30},
		{50_000_000, 30},
	}
	for _, tc := range cases {
		got := marginalRate(slabs, dec(tc.income))
		if !got.Equal(dec(tc.rate)) {
			t.Errorf("marginalRate(%d) = %s, want %d", tc.income, got, tc.rate)
		}
	}
}
