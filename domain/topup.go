package domain

import (
	"errors"
)

var (
	MessageSuccessRequestTopup = "topup created successfully"
	MessageSuccessTopupStatus  = "topup status retrieved successfully"
	MessageSuccessConfirmTopup = "topup confirmed successfully"

	MessageFailedRequestTopup = "failed to create topup"
	MessageFailedTopupStatus  = "failed to retrieve topup status"
	MessageFailedConfirmTopup = "failed to confirm topup"

	ErrTopupNotFound      = errors.New("topup not found")
	ErrInvalidTopupAmount = errors.New("topup amount must be positive")
)

type (
	RequestTopupRequest struct {
		Amount int `json:"amount" validate:"required,min=1"`
	}

	RequestTopupResponse struct {
		PaymentID string `json:"paymentId"`
		QR        string `json:"qr"`
	}

	TopupStatusResponse struct {
		Done   bool `json:"done"`
		Credit int  `json:"credit"`
	}
)
