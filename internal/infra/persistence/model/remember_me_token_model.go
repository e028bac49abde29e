package model

import (
	"time"

	"github.com/google/uuid"
)

// RememberMeTokenModel mirrors the 'remember_me_tokens' table. UserID references users.id.
type RememberMeTokenModel struct {
	Series    string    `gorm:"type:varchar(64);primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Guard     string    `gorm:"type:varchar(64);not null"`
	Hash      string    `gorm:"type:char(64);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RememberMeTokenModel) TableName() string {
	return "remember_me_tokens"
}
