package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessTokenModel mirrors the 'auth_access_tokens' table. TokenableID references users.id.
type AccessTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TokenableID uuid.UUID `gorm:"type:uuid;index:idx_access_tokens_owner,priority:2;not null"`
	Type        string    `gorm:"type:varchar(64);index:idx_access_tokens_owner,priority:1;not null"`
	Name        *string   `gorm:"type:varchar(255)"`
	Hash        string    `gorm:"type:char(64);not null"`
	Abilities   []string  `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ExpiresAt   *time.Time `gorm:"index"`
	LastUsedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessTokenModel) TableName() string {
	return "auth_access_tokens"
}
