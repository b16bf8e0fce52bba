// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/chronyx/backend/internal/application/adapter"
)

// GeminiAdvisor implements the adapter.DeductionAdvisor interface using Google
// Gemini. It is strictly best-effort: any failure is returned to the caller,
// which treats it as "no extra suggestions".
type GeminiAdvisor struct {
	apiKey    string
	modelName string
}

// NewGeminiAdvisor creates a new Gemini advisor instance.
func NewGeminiAdvisor(apiKey string) *GeminiAdvisor {
	return &GeminiAdvisor{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini advisor is configured.
func (s *GeminiAdvisor) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest analyzes the user's records and returns advisory deduction suggestions.
func (s *GeminiAdvisor) Suggest(ctx context.Context, request *adapter.AdvisorRequest) ([]*adapter.AdvisorSuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini advisor is not configured")
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	// Get the model
	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	// Build the prompt
	prompt := s.buildPrompt(request)

	// Generate response
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	// Parse response
	suggestions, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestions, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiAdvisor) buildPrompt(request *adapter.AdvisorRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert on Indian income tax deductions under the old regime. Your task is to review a taxpayer's insurance and loan records and point out deduction sections they may be entitled to claim.

VALID SECTION CODES (use ONLY these):
- 80C: life/term insurance premiums, ELSS, PPF (limit 150000)
- 80CCD1B: NPS employee contribution (limit 50000)
- 80D: health insurance premiums (limit 100000)
- 24B: home loan interest, self-occupied (limit 200000)
- 80E: education loan interest (no limit)
- 80TTA: savings account interest (limit 10000)
- 80G: charitable donations (no limit)

RULES:
- Only suggest a section when a record plausibly supports it
- Amounts are annual figures in whole rupees
- Confidence reflects how directly the record maps onto the section
- Keep reasoning to one short sentence
`)

	sb.WriteString(fmt.Sprintf("\nFINANCIAL YEAR: %s\nGROSS INCOME: %s\n", request.FinancialYearCode, request.GrossIncome))

	sb.WriteString("\nRECORDS:\n")
	for _, record := range request.Records {
		sb.WriteString(fmt.Sprintf("- ID: %s, Kind: %s, Subtype: %s, Provider: %s, Amount: %s\n",
			record.ID, record.Kind, record.Subtype, record.Provider, record.Amount))
	}

	sb.WriteString(`
Respond with a JSON array of suggestions. Each suggestion must have:
{
  "section_code": "one of the valid section codes",
  "suggested_amount": "amount as a decimal string",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence",
  "source_record_ids": ["IDs of the supporting records"]
}

RESPONSE FORMAT: Return only the JSON array, no additional text.
`)

	return sb.String()
}

// geminiAdvice represents the raw response from Gemini.
type geminiAdvice struct {
	SectionCode     string   `json:"section_code"`
	SuggestedAmount string   `json:"suggested_amount"`
	Confidence      float64  `json:"confidence"`
	Reasoning       string   `json:"reasoning"`
	SourceRecordIDs []string `json:"source_record_ids"`
}

// parseResponse parses the Gemini response into advisor suggestions.
func (s *GeminiAdvisor) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.AdvisorSuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	// Get the text content from the response
	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	// Parse JSON
	var advice []geminiAdvice
	if err := json.Unmarshal([]byte(textContent), &advice); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
	}

	suggestions := make([]*adapter.AdvisorSuggestion, 0, len(advice))
	for _, a := range advice {
		amount, err := decimal.NewFromString(a.SuggestedAmount)
		if err != nil {
			continue
		}

		suggestions = append(suggestions, &adapter.AdvisorSuggestion{
			SectionCode:     a.SectionCode,
			SuggestedAmount: amount,
			Confidence:      a.Confidence,
			Reasoning:       a.Reasoning,
			SourceRecordIDs: a.SourceRecordIDs,
		})
	}

	return suggestions, nil
}
