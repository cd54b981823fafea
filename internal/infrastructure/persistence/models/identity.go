package models

import (
	"github.com/pickleworks/backend/internal/domain/identity"
	"github.com/pickleworks/backend/internal/domain/shared"
)

// AccountModel is the persistence model for the Account aggregate
type AccountModel struct {
	BaseModel
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain Account
func (m *AccountModel) ToDomain() *identity.Account {
	return &identity.Account{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
		},
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
	}
}

// AccountModelFromDomain creates a persistence model from a domain Account
func AccountModelFromDomain(a *identity.Account) *AccountModel {
	model := &AccountModel{
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
	}
	model.FromDomainBaseEntity(a.BaseEntity)
	return model
}
