package auth

import (
	"time"

	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/services"
)

type RegisterInput struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password1 string `json:"password1" binding:"required,min=8"`
	Password2 string `json:"password2" binding:"required"`
}

type TokenInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	Refresh string `json:"refresh" binding:"required"`
}

type PasswordChangeInput struct {
	OTP      string `json:"otp" binding:"required"`
	UUIDB64  string `json:"uuidb64" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse defines the response structure for user information.
type UserResponse struct {
	ID          uint      `json:"id"`
	UUID        string    `json:"uuid"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	Admin       bool      `json:"admin,omitempty"`
	DateJoined  time.Time `json:"date_joined"`
}

// TokenResponse is returned by the token and login endpoints.
type TokenResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		UUID:       u.UUID.String(),
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   u.FullName(),
		Email:      u.Email,
		IsActive:   u.IsActive,
		IsStaff:    u.IsStaff,
		Admin:      u.IsSuperuser,
		DateJoined: u.DateJoined,
	}
}

func newTokenResponse(pair *services.TokenPair, u *models.User) TokenResponse {
	return TokenResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    NewUserResponse(u),
	}
}
