// Package model holds the GORM persistence models. Domain entities never
// carry GORM tags; repositories map between the two.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&RememberMeTokenModel{},
		&AccessTokenModel{},
	}
}
