// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronyx/backend/internal/application/usecase/record"
	"github.com/chronyx/backend/internal/domain/entity"
	domainerror "github.com/chronyx/backend/internal/domain/error"
	"github.com/chronyx/backend/internal/integration/entrypoint/dto"
	"github.com/chronyx/backend/internal/integration/entrypoint/middleware"
)

// InsuranceController handles insurance policy endpoints.
type InsuranceController struct {
	createUseCase *record.CreateInsurancePolicyUseCase
	listUseCase   *record.ListInsurancePoliciesUseCase
	deleteUseCase *record.DeleteInsurancePolicyUseCase
}

// NewInsuranceController creates a new insurance controller instance.
func NewInsuranceController(
	createUseCase *record.CreateInsurancePolicyUseCase,
	listUseCase *record.ListInsurancePoliciesUseCase,
	deleteUseCase *record.DeleteInsurancePolicyUseCase,
) *InsuranceController {
	return &InsuranceController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /insurance requests.
func (c *InsuranceController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateInsurancePolicyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := record.CreateInsurancePolicyInput{
		UserID:        userID,
		PolicyType:    entity.PolicyType(req.PolicyType),
		Provider:      req.Provider,
		PolicyNumber:  req.PolicyNumber,
		AnnualPremium: decimal.NewFromFloat(req.AnnualPremium),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInsurancePolicyResponse(output.Policy))
}

// List handles GET /insurance requests.
func (c *InsuranceController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListInsurancePoliciesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve insurance policies",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsurancePolicyListResponse(output.Policies))
}

// Delete handles DELETE /insurance/:id requests.
func (c *InsuranceController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	policyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid policy ID",
			Code:  string(domainerror.ErrCodeInsurancePolicyNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteInsurancePolicyInput{
		UserID:   userID,
		PolicyID: policyID,
	}); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Insurance policy deleted",
	})
}

// handleRecordError handles record errors and returns appropriate HTTP responses.
func handleRecordError(ctx *gin.Context, err error) {
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

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPolicyType,
		domainerror.ErrCodeInvalidLoanType,
		domainerror.ErrCodeInvalidRecordAmount,
		domainerror.ErrCodeMissingRecordFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsurancePolicyNotFound,
		domainerror.ErrCodeLoanNotFound,
		domainerror.ErrCodeSuggestionNotFound,
		domainerror.ErrCodeNotRecordOwner:
		return http.StatusNotFound
	case domainerror.ErrCodeSuggestionAlreadyResolved:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
