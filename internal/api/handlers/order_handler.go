package handlers

import (
	"cafeteria-backend/domain"
	"cafeteria-backend/internal/api/presenters"
	"cafeteria-backend/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		CancelOrder(c *fiber.Ctx) error
		ShowOrder(c *fiber.Ctx) error
		IssueOrder(c *fiber.Ctx) error
		GetOrderHistory(c *fiber.Ctx) error
		GetKitchenQueue(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.PlaceOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlaceOrder, err)
	}

	resp, err := h.orderService.PlaceOrder(c.Context(), *req, userID)
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedPlaceOrder, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessPlaceOrder)
}

func (h *orderHandler) CancelOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CancelOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCancelOrder, err)
	}

	resp, err := h.orderService.CancelOrder(c.Context(), *req, userID)
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedCancelOrder, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessCancelOrder)
}

func (h *orderHandler) ShowOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	resp, err := h.orderService.MarkShown(c.Context(), orderID, userID)
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedShowOrder, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessShowOrder)
}

func (h *orderHandler) IssueOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	if err := h.orderService.IssueOrder(c.Context(), orderID); err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedIssueOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessIssueOrder)
}

func (h *orderHandler) GetOrderHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	resp, err := h.orderService.GetOrderHistory(c.Context(), userID)
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetOrderHistory, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetOrderHistory)
}

func (h *orderHandler) GetKitchenQueue(c *fiber.Ctx) error {
	resp, err := h.orderService.GetKitchenQueue(c.Context())
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetKitchenQueue, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetKitchenQueue)
}
