package order

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"cafeteria-backend/domain"
	"cafeteria-backend/entities"

	"github.com/google/uuid"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.PlaceOrderResponse, error)
		CancelOrder(ctx context.Context, req domain.CancelOrderRequest, userID string) (*domain.CancelOrderResponse, error)
		MarkShown(ctx context.Context, orderID string, userID string) (*domain.ShowOrderResponse, error)
		IssueOrder(ctx context.Context, orderID string) error
		GetOrderHistory(ctx context.Context, userID string) ([]*domain.OrderHistoryResponse, error)
		GetKitchenQueue(ctx context.Context) ([]*domain.KitchenOrderResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
	}
)

func NewOrderService(orderRepository OrderRepository) OrderService {
	return &orderService{orderRepository: orderRepository}
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.PlaceOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	items := make([]requestedItem, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, requestedItem{name: it.Name, quantity: qty})
	}

	order, newCredit, err := s.orderRepository.PlaceOrder(ctx, userUUID, date, groupItems(items))
	if err != nil {
		return nil, err
	}

	return &domain.PlaceOrderResponse{
		OrderID: order.ID.String(),
		Total:   order.Total,
		Credit:  newCredit,
	}, nil
}

func (s *orderService) CancelOrder(ctx context.Context, req domain.CancelOrderRequest, userID string) (*domain.CancelOrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	orderUUID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	newCredit, err := s.orderRepository.CancelOrder(ctx, userUUID, orderUUID, domain.Today())
	if err != nil {
		return nil, err
	}
	return &domain.CancelOrderResponse{Credit: newCredit}, nil
}

func (s *orderService) MarkShown(ctx context.Context, orderID string, userID string) (*domain.ShowOrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	code := generatePickupCode()
	if err := s.orderRepository.MarkShown(ctx, userUUID, orderUUID, code, time.Now()); err != nil {
		return nil, err
	}
	return &domain.ShowOrderResponse{PickupCode: code}, nil
}

func (s *orderService) IssueOrder(ctx context.Context, orderID string) error {
	orderUUID, err := uuid.Parse(orderID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.orderRepository.IssueOrder(ctx, orderUUID)
}

func (s *orderService) GetOrderHistory(ctx context.Context, userID string) ([]*domain.OrderHistoryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orders, err := s.orderRepository.GetUserOrders(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.OrderHistoryResponse, 0, len(orders))
	for _, ord := range orders {
		result = append(result, &domain.OrderHistoryResponse{
			ID:     ord.ID.String(),
			Date:   domain.FormatDate(ord.Date),
			Items:  mapOrderLines(ord.Items),
			Total:  ord.Total,
			Status: ord.Status,
			Shown:  ord.Shown,
		})
	}
	return result, nil
}

func (s *orderService) GetKitchenQueue(ctx context.Context) ([]*domain.KitchenOrderResponse, error) {
	orders, err := s.orderRepository.GetKitchenQueue(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.KitchenOrderResponse, 0, len(orders))
	for _, ord := range orders {
		result = append(result, &domain.KitchenOrderResponse{
			ID:         ord.ID.String(),
			Date:       domain.FormatDate(ord.Date),
			Items:      mapOrderLines(ord.Items),
			ShownAt:    ord.ShownAt,
			PickupCode: ord.PickupCode,
		})
	}
	return result, nil
}

func mapOrderLines(items []entities.OrderItem) []domain.OrderLineResponse {
	lines := make([]domain.OrderLineResponse, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.OrderLineResponse{
			Name:      it.FoodName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return lines
}

// generatePickupCode returns a short display code for the kitchen hand-off.
// Display-only; uniqueness is not guaranteed.
func generatePickupCode() string {
	return fmt.Sprintf("A-%d", 100+rand.Intn(900))
}
