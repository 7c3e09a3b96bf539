package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessMe       = "user retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedMe       = "failed to retrieve user"

	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrReservedIdentifier = errors.New("reserved identifier")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientCredit = errors.New("insufficient credit")
)

type (
	RegisterRequest struct {
		Identifier string `json:"identifier" validate:"required,min=3"`
		Password   string `json:"password" validate:"required,min=4"`
	}

	LoginRequest struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token      string `json:"token"`
		Identifier string `json:"identifier"`
		Role       string `json:"role"`
		Credit     int    `json:"credit"`
	}

	UserResponse struct {
		ID         string `json:"id"`
		Identifier string `json:"identifier"`
		Role       string `json:"role"`
		Credit     int    `json:"credit"`
	}
)
