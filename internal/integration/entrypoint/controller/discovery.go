// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/usecase/discovery"
	domainerror "github.com/chronyx/backend/internal/domain/error"
	"github.com/chronyx/backend/internal/integration/entrypoint/dto"
	"github.com/chronyx/backend/internal/integration/entrypoint/middleware"
)

// DiscoveryController handles deduction discovery endpoints.
type DiscoveryController struct {
	discoverUseCase *discovery.DiscoverDeductionsUseCase
	listUseCase     *discovery.GetSuggestionsUseCase
	resolveUseCase  *discovery.ResolveSuggestionUseCase
}

// NewDiscoveryController creates a new discovery controller instance.
func NewDiscoveryController(
	discoverUseCase *discovery.DiscoverDeductionsUseCase,
	listUseCase *discovery.GetSuggestionsUseCase,
	resolveUseCase *discovery.ResolveSuggestionUseCase,
) *DiscoveryController {
	return &DiscoveryController{
		discoverUseCase: discoverUseCase,
		listUseCase:     listUseCase,
		resolveUseCase:  resolveUseCase,
	}
}

// Discover handles POST /tax/deductions/discover requests.
func (c *DiscoveryController) Discover(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.DiscoverDeductionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTaxFields),
		})
		return
	}

	input := discovery.DiscoverDeductionsInput{
		UserID:            userID,
		FinancialYearCode: req.FinancialYear,
		GrossIncome:       decimal.NewFromFloat(req.GrossIncome),
	}

	output, err := c.discoverUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDiscoveryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionListResponse(output.Suggestions))
}

// ListSuggestions handles GET /tax/deductions/suggestions requests.
func (c *DiscoveryController) ListSuggestions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), discovery.GetSuggestionsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve suggestions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionListResponse(output.Suggestions))
}

// AcceptSuggestion handles POST /tax/deductions/suggestions/:id/accept requests.
func (c *DiscoveryController) AcceptSuggestion(ctx *gin.Context) {
	c.resolve(ctx, discovery.ResolutionAccept)
}

// DismissSuggestion handles POST /tax/deductions/suggestions/:id/dismiss requests.
func (c *DiscoveryController) DismissSuggestion(ctx *gin.Context) {
	c.resolve(ctx, discovery.ResolutionDismiss)
}

func (c *DiscoveryController) resolve(ctx *gin.Context, resolution discovery.SuggestionResolution) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	suggestionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid suggestion ID",
			Code:  string(domainerror.ErrCodeSuggestionNotFound),
		})
		return
	}

	output, err := c.resolveUseCase.Execute(ctx.Request.Context(), discovery.ResolveSuggestionInput{
		UserID:       userID,
		SuggestionID: suggestionID,
		Resolution:   resolution,
	})
	if err != nil {
		c.handleDiscoveryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionResponse(output.Suggestion))
}

// handleDiscoveryError handles discovery errors and returns appropriate HTTP responses.
func (c *DiscoveryController) handleDiscoveryError(ctx *gin.Context, err error) {
	var taxErr *domainerror.TaxError
	if errors.As(err, &taxErr) {
		statusCode := getStatusCodeForDiscoveryTaxError(taxErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taxErr.Message,
			Code:  string(taxErr.Code),
		})
		return
	}

	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		statusCode := getStatusCodeForRecordError(recordErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func getStatusCodeForDiscoveryTaxError(code domainerror.TaxErrorCode) int {
	switch code {
	case domainerror.ErrCodeNegativeGrossIncome,
		domainerror.ErrCodeMissingTaxFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeFinancialYearNotFound,
		domainerror.ErrCodeRegimeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
