package handlers

import (
	"errors"

	"cafeteria-backend/domain"
)

// businessErrors are rejected requests, not failures: they map to 400 with a
// structured reason the frontend can branch on. Anything else is a server
// error and must not leak internals.
var businessErrors = []error{
	domain.ErrEmptyOrder,
	domain.ErrInsufficientStock,
	domain.ErrInsufficientCredit,
	domain.ErrOrderNotFound,
	domain.ErrOrderCancelled,
	domain.ErrOrderShown,
	domain.ErrOrderNotShown,
	domain.ErrOrderIssued,
	domain.ErrOrderNotActive,
	domain.ErrTooLateToCancel,
	domain.ErrUserNotFound,
	domain.ErrUserAlreadyExists,
	domain.ErrReservedIdentifier,
	domain.ErrInvalidCredentials,
	domain.ErrTopupNotFound,
	domain.ErrInvalidTopupAmount,
	domain.ErrFoodNotFound,
	domain.ErrMenuEntryNotFound,
	domain.ErrInvalidPrice,
	domain.ErrInvalidDate,
	domain.ErrParseUUID,
}

func isBusinessError(err error) bool {
	for _, be := range businessErrors {
		if errors.Is(err, be) {
			return true
		}
	}
	return false
}

func errorStatus(err error) (int, error) {
	if isBusinessError(err) {
		return 400, err
	}
	return 500, errors.New(domain.MessageServerError)
}
