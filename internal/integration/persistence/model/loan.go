// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/chronyx/backend/internal/domain/entity"
)

// LoanModel represents the loans table in the database.
type LoanModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	LoanType           string          `gorm:"type:varchar(20);not null"`
	Lender             string          `gorm:"type:varchar(100);not null"`
	Principal          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InterestRate       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	AnnualInterestPaid decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IsActive           bool            `gorm:"default:true"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	loan := &entity.Loan{
		ID:                 m.ID,
		UserID:             m.UserID,
		LoanType:           entity.LoanType(m.LoanType),
		Lender:             m.Lender,
		Principal:          m.Principal,
		InterestRate:       m.InterestRate,
		AnnualInterestPaid: m.AnnualInterestPaid,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		loan.DeletedAt = &deletedAt
	}

	return loan
}

// LoanFromEntity creates a LoanModel from a domain entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	model := &LoanModel{
		ID:                 loan.ID,
		UserID:             loan.UserID,
		LoanType:           string(loan.LoanType),
		Lender:             loan.Lender,
		Principal:          loan.Principal,
		InterestRate:       loan.InterestRate,
		AnnualInterestPaid: loan.AnnualInterestPaid,
		IsActive:           loan.IsActive,
		CreatedAt:          loan.CreatedAt,
		UpdatedAt:          loan.UpdatedAt,
	}

	if loan.DeletedAt != nil {
		model.DeletedAt = gorm.DeletedAt{Time: *loan.DeletedAt, Valid: true}
	}

	return model
}
