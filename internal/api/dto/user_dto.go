package dto

import "time"

// UserResponse is the serialized user record; credentials never appear here.
type UserResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	MobileNetwork string `json:"mobile_network"`
	State         string `json:"state"`
	LGA           string `json:"lga"`
	Ward          string `json:"ward"`
}

// LoginRequest payload for credential authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
