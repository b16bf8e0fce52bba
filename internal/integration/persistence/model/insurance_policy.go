// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/chronyx/backend/internal/domain/entity"
)

// InsurancePolicyModel represents the insurance_policies table in the database.
type InsurancePolicyModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	PolicyType    string          `gorm:"type:varchar(20);not null"`
	Provider      string          `gorm:"type:varchar(100);not null"`
	PolicyNumber  string          `gorm:"type:varchar(100)"`
	AnnualPremium decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IsActive      bool            `gorm:"default:true"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the InsurancePolicyModel.
func (InsurancePolicyModel) TableName() string {
	return "insurance_policies"
}

// ToEntity converts an InsurancePolicyModel to a domain InsurancePolicy entity.
func (m *InsurancePolicyModel) ToEntity() *entity.InsurancePolicy {
	policy := &entity.InsurancePolicy{
		ID:            m.ID,
		UserID:        m.UserID,
		PolicyType:    entity.PolicyType(m.PolicyType),
		Provider:      m.Provider,
		PolicyNumber:  m.PolicyNumber,
		AnnualPremium: m.AnnualPremium,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		policy.DeletedAt = &deletedAt
	}

	return policy
}

// InsurancePolicyFromEntity creates an InsurancePolicyModel from a domain entity.
func InsurancePolicyFromEntity(policy *entity.InsurancePolicy) *InsurancePolicyModel {
	model := &InsurancePolicyModel{
		ID:            policy.ID,
		UserID:        policy.UserID,
		PolicyType:    string(policy.PolicyType),
		Provider:      policy.Provider,
		PolicyNumber:  policy.PolicyNumber,
		AnnualPremium: policy.AnnualPremium,
		IsActive:      policy.IsActive,
		CreatedAt:     policy.CreatedAt,
		UpdatedAt:     policy.UpdatedAt,
	}

	if policy.DeletedAt != nil {
		model.DeletedAt = gorm.DeletedAt{Time: *policy.DeletedAt, Valid: true}
	}

	return model
}
