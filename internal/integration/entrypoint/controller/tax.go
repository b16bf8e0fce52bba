// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/usecase/tax"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
	"github.com/chronyx/backend/internal/integration/entrypoint/dto"
	"github.com/chronyx/backend/internal/integration/entrypoint/middleware"
)

// TaxController handles tax calculation endpoints.
type TaxController struct {
	calculateUseCase *tax.CalculateTaxUseCase
	compareUseCase   *tax.CompareRegimesUseCase
	listYearsUseCase *tax.ListYearsUseCase
	historyUseCase   *tax.GetHistoryUseCase
}

// NewTaxController creates a new tax controller instance.
func NewTaxController(
	calculateUseCase *tax.CalculateTaxUseCase,
	compareUseCase *tax.CompareRegimesUseCase,
	listYearsUseCase *tax.ListYearsUseCase,
	historyUseCase *tax.GetHistoryUseCase,
) *TaxController {
	return &TaxController{
		calculateUseCase: calculateUseCase,
		compareUseCase:   compareUseCase,
		listYearsUseCase: listYearsUseCase,
		historyUseCase:   historyUseCase,
	}
}

// Calculate handles POST /tax/calculate requests.
func (c *TaxController) Calculate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CalculateTaxRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTaxFields),
		})
		return
	}

	input := tax.CalculateTaxInput{
		UserID:            userID,
		FinancialYearCode: req.FinancialYear,
		RegimeCode:        entity.RegimeCode(req.Regime),
		GrossIncome:       decimal.NewFromFloat(req.GrossIncome),
		Deductions:        dto.ToDecimalMap(req.Deductions),
		SaveCalculation:   req.SaveCalculation,
	}

	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalculationResponse(output.Calculation, output.Saved))
}

// Compare handles POST /tax/compare requests.
func (c *TaxController) Compare(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CompareRegimesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTaxFields),
		})
		return
	}

	input := tax.CompareRegimesInput{
		UserID:            userID,
		FinancialYearCode: req.FinancialYear,
		GrossIncome:       decimal.NewFromFloat(req.GrossIncome),
		Deductions:        dto.ToDecimalMap(req.Deductions),
	}

	output, err := c.compareUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComparisonResponse(output.Comparison))
}

// ListYears handles GET /tax/years requests.
func (c *TaxController) ListYears(ctx *gin.Context) {
	output, err := c.listYearsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list financial years",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListYearsResponse(output.Years))
}

// History handles GET /tax/history requests.
func (c *TaxController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := tax.GetHistoryInput{UserID: userID}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve calculation history",
		})
		return
	}

	response := dto.HistoryResponse{
		Calculations: make([]dto.CalculationResponse, 0, len(output.Calculations)),
	}
	for _, calc := range output.Calculations {
		response.Calculations = append(response.Calculations, dto.ToHistoryItemResponse(calc))
	}

	ctx.JSON(http.StatusOK, response)
}

// handleTaxError handles tax engine errors and returns appropriate HTTP responses.
func (c *TaxController) handleTaxError(ctx *gin.Context, err error) {
	var taxErr *domainerror.TaxError
	if errors.As(err, &taxErr) {
		statusCode := c.getStatusCodeForTaxError(taxErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taxErr.Message,
			Code:  string(taxErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTaxError maps tax error codes to HTTP status codes.
func (c *TaxController) getStatusCodeForTaxError(code domainerror.TaxErrorCode) int {
	switch code {
	case domainerror.ErrCodeNegativeGrossIncome,
		domainerror.ErrCodeInvalidRegimeCode,
		domainerror.ErrCodeNegativeDeduction,
		domainerror.ErrCodeMissingTaxFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeFinancialYearNotFound,
		domainerror.ErrCodeRegimeNotFound,
		domainerror.ErrCodeCalculationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingSlabConfiguration:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
