package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPlaceOrder      = "order placed successfully"
	MessageSuccessCancelOrder     = "order cancelled successfully"
	MessageSuccessShowOrder       = "order shown to kitchen"
	MessageSuccessIssueOrder      = "order issued"
	MessageSuccessGetOrderHistory = "order history retrieved successfully"
	MessageSuccessGetKitchenQueue = "kitchen queue retrieved successfully"

	MessageFailedPlaceOrder      = "failed to place order"
	MessageFailedCancelOrder     = "failed to cancel order"
	MessageFailedShowOrder       = "failed to show order"
	MessageFailedIssueOrder      = "failed to issue order"
	MessageFailedGetOrderHistory = "failed to retrieve order history"
	MessageFailedGetKitchenQueue = "failed to retrieve kitchen queue"

	ErrEmptyOrder        = errors.New("empty order")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderCancelled    = errors.New("order already cancelled")
	ErrOrderShown        = errors.New("order already shown to kitchen")
	ErrOrderNotShown     = errors.New("order not yet shown to kitchen")
	ErrOrderIssued       = errors.New("order already issued")
	ErrTooLateToCancel   = errors.New("orders can only be cancelled a day in advance")
	ErrOrderNotActive    = errors.New("order is not active")
)

type (
	OrderItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	}

	PlaceOrderRequest struct {
		Date  string             `json:"date" validate:"required"`
		Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	PlaceOrderResponse struct {
		OrderID string `json:"order_id"`
		Total   int    `json:"total"`
		Credit  int    `json:"credit"`
	}

	CancelOrderRequest struct {
		OrderID string `json:"orderId" validate:"required,uuid"`
	}

	CancelOrderResponse struct {
		Credit int `json:"credit"`
	}

	ShowOrderResponse struct {
		PickupCode string `json:"pickupCode"`
	}

	OrderLineResponse struct {
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
		UnitPrice int    `json:"unit_price"`
	}

	OrderHistoryResponse struct {
		ID     string              `json:"id"`
		Date   string              `json:"date"`
		Items  []OrderLineResponse `json:"items"`
		Total  int                 `json:"total"`
		Status string              `json:"status"`
		Shown  bool                `json:"shown"`
	}

	KitchenOrderResponse struct {
		ID         string              `json:"id"`
		Date       string              `json:"date"`
		Items      []OrderLineResponse `json:"items"`
		ShownAt    *time.Time          `json:"shown_at"`
		PickupCode string              `json:"pickup_code"`
	}
)
