package handler

import (
	"time"

	"gatehouse/internal/domain/entity"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// AccessTokenResponse describes a token without its secret.
type AccessTokenResponse struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Name       *string    `json:"name,omitempty"`
	Abilities  []string   `json:"abilities"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

func newAccessTokenResponse(accessToken *entity.AccessToken) AccessTokenResponse {
	return AccessTokenResponse{
		ID:         accessToken.Identifier.String(),
		Type:       accessToken.Type,
		Name:       accessToken.Name,
		Abilities:  accessToken.Abilities,
		CreatedAt:  accessToken.CreatedAt,
		ExpiresAt:  accessToken.ExpiresAt,
		LastUsedAt: accessToken.LastUsedAt,
	}
}

// IssuedAccessTokenResponse carries the plaintext token. It is returned once.
type IssuedAccessTokenResponse struct {
	AccessTokenResponse
	Token string `json:"token"`
}
