package v1

import (
	"github.com/billtrack/backend/internal/models"
	"github.com/google/uuid"
)

// RegisterRequest is the request body for creating a new user account.
type RegisterRequest struct {
	Name     string `json:"name" example:"Jane Doe" default:""`              // Display name of the user
	Email    string `json:"email" example:"jane@example.com"`                // Email address, used for login
	Password string `json:"password" example:"correct horse battery staple"` // Password for the account
}

// LoginRequest is the request body for opening a session.
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`                // Email address of the account
	Password string `json:"password" example:"correct horse battery staple"` // Password for the account
}

// AuthUser is the representation of a user in API v1.
type AuthUser struct {
	ID    uuid.UUID `json:"id" example:"d3c4b8a1-6f2e-4b51-92c3-8a07ff53e591"` // ID of the user
	Name  string    `json:"name" example:"Jane Doe"`                           // Display name of the user
	Email string    `json:"email" example:"jane@example.com"`                  // Email address of the user
}

func newAuthUser(model models.User) AuthUser {
	return AuthUser{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
	}
}

// SessionData is the representation of an open session in API v1.
type SessionData struct {
	Token string   `json:"token" example:"207c25e5-9fc7-4f37-b6d9-cb52b579fb60"` // Bearer token for the session
	User  AuthUser `json:"user"`                                                 // The user the session belongs to
}

type SessionResponse struct {
	Error *string      `json:"error" example:"the credentials are invalid"` // The error, if any occurred
	Data  *SessionData `json:"data"`                                        // The session data
}

type UserResponse struct {
	Error *string   `json:"error" example:"a user with this email address already exists"` // The error, if any occurred
	Data  *AuthUser `json:"data"`                                                          // The user data
}
