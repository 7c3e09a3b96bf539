package domain

import (
	"errors"
)

const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleKitchen = "kitchen"

	DateLayout = "2006-01-02"
)

// StaffRoles may access the admin and kitchen route groups.
var StaffRoles = []string{RoleAdmin, RoleManager, RoleKitchen}

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "token invalid"
	MessageUserNotAllowed       = "user not allowed"
	MessageServerError          = "server error"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
)
