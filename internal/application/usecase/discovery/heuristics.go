// Package discovery contains the deduction discovery use cases.
package discovery

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// candidate is a per-section accumulation of record amounts before capping.
type candidate struct {
	sectionCode string
	amount      decimal.Decimal
	confidence  float64
	source      entity.SuggestionSource
	recordIDs   []uuid.UUID
	reasoning   string
}

// policySection maps a policy type onto its deduction section and confidence.
// Health premiums are a clean 80D fit; life and term premiums qualify under
// 80C but compete with other 80C investments, hence the lower confidence.
func policySection(policyType entity.PolicyType) (string, float64, bool) {
	switch policyType {
	case entity.PolicyTypeHealth:
		return entity.SectionCode80D, 0.9, true
	case entity.PolicyTypeLife, entity.PolicyTypeTerm:
		return entity.SectionCode80C, 0.8, true
	}
	return "", 0, false
}

// loanSection maps a loan type onto its interest-deduction section. Only the
// annual interest qualifies, never the principal.
func loanSection(loanType entity.LoanType) (string, float64, bool) {
	switch loanType {
	case entity.LoanTypeHome:
		return entity.SectionCode24B, 0.9, true
	case entity.LoanTypeEducation:
		return entity.SectionCode80E, 0.85, true
	}
	return "", 0, false
}

// scanRecords aggregates the user's active policies and loans into one
// candidate per section. Amounts within a section are summed; the section
// confidence is the lowest confidence among its contributing records.
func scanRecords(policies []*entity.InsurancePolicy, loans []*entity.Loan) []*candidate {
	bySection := map[string]*candidate{}

	add := func(section string, confidence float64, source entity.SuggestionSource, recordID uuid.UUID, amount decimal.Decimal, label string) {
		if !amount.IsPositive() {
			return
		}
		c, ok := bySection[section]
		if !ok {
			c = &candidate{
				sectionCode: section,
				confidence:  confidence,
				source:      source,
				reasoning:   label,
			}
			bySection[section] = c
		}
		c.amount = c.amount.Add(amount)
		c.recordIDs = append(c.recordIDs, recordID)
		if confidence < c.confidence {
			c.confidence = confidence
		}
	}

	for _, policy := range policies {
		section, confidence, ok := policySection(policy.PolicyType)
		if !ok {
			continue
		}
		add(section, confidence, entity.SuggestionSourceInsurance, policy.ID, policy.AnnualPremium,
			fmt.Sprintf("annual premiums of active %s insurance policies", policy.PolicyType))
	}

	for _, loan := range loans {
		section, confidence, ok := loanSection(loan.LoanType)
		if !ok {
			continue
		}
		add(section, confidence, entity.SuggestionSourceLoan, loan.ID, loan.AnnualInterestPaid,
			fmt.Sprintf("annual interest paid on active %s loans", loan.LoanType))
	}

	candidates := make([]*candidate, 0, len(bySection))
	for _, c := range bySection {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].sectionCode < candidates[j].sectionCode
	})
	return candidates
}

// marginalRate walks the old-regime slab table to find the rate applying to
// the last unit of taxable income. It drives the savings estimate: shaving
// one unit off taxable income saves roughly the marginal rate of that unit.
func marginalRate(slabs []*entity.TaxSlab, taxableIncome decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	for _, slab := range slabs {
		if taxableIncome.GreaterThan(slab.MinAmount) {
			rate = slab.RatePercentage
		}
	}
	return rate
}

// estimateSavings approximates the tax saved by claiming amount at the given
// marginal rate, rounded to whole currency units.
func estimateSavings(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred).Round(0)
}
