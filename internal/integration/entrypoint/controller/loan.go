// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
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

// LoanController handles loan endpoints.
type LoanController struct {
	createUseCase *record.CreateLoanUseCase
	listUseCase   *record.ListLoansUseCase
	deleteUseCase *record.DeleteLoanUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(
	createUseCase *record.CreateLoanUseCase,
	listUseCase *record.ListLoansUseCase,
	deleteUseCase *record.DeleteLoanUseCase,
) *LoanController {
	return &LoanController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /loans requests.
func (c *LoanController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := record.CreateLoanInput{
		UserID:             userID,
		LoanType:           entity.LoanType(req.LoanType),
		Lender:             req.Lender,
		Principal:          decimal.NewFromFloat(req.Principal),
		InterestRate:       decimal.NewFromFloat(req.InterestRate),
		AnnualInterestPaid: decimal.NewFromFloat(req.AnnualInterestPaid),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan))
}

// List handles GET /loans requests.
func (c *LoanController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListLoansInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve loans",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanListResponse(output.Loans))
}

// Delete handles DELETE /loans/:id requests.
func (c *LoanController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid loan ID",
			Code:  string(domainerror.ErrCodeLoanNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteLoanInput{
		UserID: userID,
		LoanID: loanID,
	}); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Loan deleted",
	})
}
