package handlers

import (
	"cafeteria-backend/domain"
	"cafeteria-backend/internal/api/presenters"
	"cafeteria-backend/pkg/topup"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TopupHandler interface {
		RequestTopup(c *fiber.Ctx) error
		TopupStatus(c *fiber.Ctx) error
		ConfirmTopup(c *fiber.Ctx) error
	}

	topupHandler struct {
		topupService topup.TopupService
		validator    *validator.Validate
	}
)

func NewTopupHandler(topupService topup.TopupService, validator *validator.Validate) TopupHandler {
	return &topupHandler{
		topupService: topupService,
		validator:    validator,
	}
}

func (h *topupHandler) RequestTopup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RequestTopupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestTopup, err)
	}

	resp, err := h.topupService.RequestTopup(c.Context(), *req, userID)
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedRequestTopup, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRequestTopup)
}

// TopupStatus is the client poll; confirming on poll mirrors the original
// payment flow, where scanning the QR is the payment.
func (h *topupHandler) TopupStatus(c *fiber.Ctx) error {
	resp, err := h.topupService.ConfirmTopup(c.Context(), c.Query("id"))
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedTopupStatus, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessTopupStatus)
}

// ConfirmTopup is the staff/webhook trigger for the same idempotent transition.
func (h *topupHandler) ConfirmTopup(c *fiber.Ctx) error {
	resp, err := h.topupService.ConfirmTopup(c.Context(), c.Params("id"))
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedConfirmTopup, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessConfirmTopup)
}
