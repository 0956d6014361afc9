package dto

import "github.com/emzola/bookmanager/data"

// RegisterRequestBody defines the request body for registering a user.
type RegisterRequestBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequestBody defines the request body for logging in.
type LoginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the payload of a successful login.
type AuthResponse struct {
	User         data.User `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}
