package dto

import "github.com/google/uuid"

type RegisterResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserType     string    `json:"user_type"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

type LoginResponse struct {
	UserType     string `json:"user_type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
