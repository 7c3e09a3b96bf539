package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cafeteria-backend/domain"
	"cafeteria-backend/entities"
	"cafeteria-backend/pkg/credit"
	"cafeteria-backend/pkg/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// OrderRepository runs every mutation inside one database transaction.
	// The transaction is the only synchronization primitive: contended user
	// and menu rows are locked FOR UPDATE so concurrent orders against the
	// same day's stock serialize instead of jointly overselling.
	OrderRepository interface {
		PlaceOrder(ctx context.Context, userID uuid.UUID, date time.Time, requested map[string]int) (*entities.Order, int, error)
		CancelOrder(ctx context.Context, userID, orderID uuid.UUID, today time.Time) (int, error)
		MarkShown(ctx context.Context, userID, orderID uuid.UUID, code string, shownAt time.Time) error
		IssueOrder(ctx context.Context, orderID uuid.UUID) error
		GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error)
		GetKitchenQueue(ctx context.Context) ([]*entities.Order, error)
	}

	orderRepository struct {
		db     *gorm.DB
		ledger credit.Ledger
	}
)

func NewOrderRepository(db *gorm.DB, ledger credit.Ledger) OrderRepository {
	return &orderRepository{db: db, ledger: ledger}
}

// loadMenuForUpdate locks the menu rows for date (ordered by food id, so two
// competing orders always acquire locks in the same sequence) and joins in
// each food's name and catalog price.
func loadMenuForUpdate(tx *gorm.DB, date time.Time) (map[string]*menuLine, error) {
	var entries []entities.MenuEntry
	if err := database.LockForUpdate(tx).
		Where("date = ?", date).
		Order("food_id").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	foodIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		foodIDs = append(foodIDs, e.FoodID)
	}

	snapshot := make(map[string]*menuLine, len(entries))
	if len(foodIDs) == 0 {
		return snapshot, nil
	}

	var foods []entities.Food
	if err := tx.Where("id IN ?", foodIDs).Find(&foods).Error; err != nil {
		return nil, err
	}
	foodByID := make(map[uuid.UUID]*entities.Food, len(foods))
	for i := range foods {
		foodByID[foods[i].ID] = &foods[i]
	}

	for i := range entries {
		food, ok := foodByID[entries[i].FoodID]
		if !ok {
			continue
		}
		snapshot[food.Name] = &menuLine{
			entry: &entries[i],
			name:  food.Name,
			price: food.Price,
		}
	}
	return snapshot, nil
}

// PlaceOrder atomically admits the requested units against the day's stock,
// debits the user's credit and records the order with its line items. Prices
// come from the catalog snapshot, never from the client. All-or-nothing: any
// rejection rolls the whole transaction back.
func (r *orderRepository) PlaceOrder(ctx context.Context, userID uuid.UUID, date time.Time, requested map[string]int) (*entities.Order, int, error) {
	var (
		order     *entities.Order
		newCredit int
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snapshot, err := loadMenuForUpdate(tx, date)
		if err != nil {
			return err
		}

		if name, ok := admit(snapshot, requested); !ok {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, name)
		}

		total := 0
		for name, qty := range requested {
			total += snapshot[name].price * qty
		}

		newCredit, err = r.ledger.Debit(
			tx, userID, total,
			fmt.Sprintf("Order for %s", domain.FormatDate(date)),
		)
		if err != nil {
			return err
		}

		for name, qty := range requested {
			line := snapshot[name]
			if err := tx.Model(&entities.MenuEntry{}).
				Where("id = ?", line.entry.ID).
				Update("ordered", gorm.Expr("ordered + ?", qty)).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		order = &entities.Order{
			ID:     uuid.New(),
			UserID: userID,
			Date:   date,
			Total:  total,
			Status: entities.OrderStatusOk,
			Timestamp: entities.Timestamp{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for name, qty := range requested {
			line := snapshot[name]
			item := entities.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				FoodID:    line.entry.FoodID,
				FoodName:  name,
				Quantity:  qty,
				UnitPrice: line.price,
				Timestamp: entities.Timestamp{
					CreatedAt: now,
					UpdatedAt: now,
				},
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return order, newCredit, nil
}

// CancelOrder reverses a placement: ordered counters are decremented, credit
// is refunded and the order transitions ok -> cancelled. Only permitted while
// the order has not been shown to the kitchen and its date is strictly after
// today (same-day prep guarantee).
func (r *orderRepository) CancelOrder(ctx context.Context, userID, orderID uuid.UUID, today time.Time) (int, error) {
	var newCredit int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ord entities.Order
		if err := database.LockForUpdate(tx).
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&ord).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}

		if ord.Status != entities.OrderStatusOk {
			return domain.ErrOrderCancelled
		}
		if ord.Shown {
			return domain.ErrOrderShown
		}
		if !ord.Date.After(today) {
			return domain.ErrTooLateToCancel
		}

		var items []entities.OrderItem
		if err := tx.Where("order_id = ?", ord.ID).Find(&items).Error; err != nil {
			return err
		}

		// UPDATE takes its own row locks; no preceding read is needed here.
		for _, it := range items {
			if err := tx.Model(&entities.MenuEntry{}).
				Where("date = ? AND food_id = ?", ord.Date, it.FoodID).
				Update("ordered", gorm.Expr("ordered - ?", it.Quantity)).Error; err != nil {
				return err
			}
		}

		var err error
		newCredit, err = r.ledger.Credit(
			tx, userID, credit.TypeRefund, ord.Total,
			fmt.Sprintf("Refund for cancelled order %s", ord.ID),
		)
		if err != nil {
			return err
		}

		return tx.Model(&entities.Order{}).
			Where("id = ?", ord.ID).
			Update("status", entities.OrderStatusCancelled).Error
	})
	if err != nil {
		return 0, err
	}
	return newCredit, nil
}

// MarkShown is the hand-off to the kitchen; after it succeeds the order can
// no longer be cancelled.
func (r *orderRepository) MarkShown(ctx context.Context, userID, orderID uuid.UUID, code string, shownAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ord entities.Order
		if err := database.LockForUpdate(tx).
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&ord).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}

		if ord.Status != entities.OrderStatusOk {
			return domain.ErrOrderNotActive
		}
		if ord.Shown {
			return domain.ErrOrderShown
		}

		return tx.Model(&entities.Order{}).
			Where("id = ?", ord.ID).
			Updates(map[string]interface{}{
				"shown":       true,
				"shown_at":    shownAt,
				"pickup_code": code,
			}).Error
	})
}

// IssueOrder transitions a shown order to issued, dropping it out of the
// kitchen's pending queue. Terminal.
func (r *orderRepository) IssueOrder(ctx context.Context, orderID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ord entities.Order
		if err := database.LockForUpdate(tx).
			Where("id = ?", orderID).
			First(&ord).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}

		if ord.Status != entities.OrderStatusOk {
			return domain.ErrOrderNotActive
		}
		if !ord.Shown {
			return domain.ErrOrderNotShown
		}
		if ord.Issued {
			return domain.ErrOrderIssued
		}

		return tx.Model(&entities.Order{}).
			Where("id = ?", ord.ID).
			Update("issued", true).Error
	})
}

func (r *orderRepository) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetKitchenQueue(ctx context.Context) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("shown = ? AND status = ? AND issued = ?", true, entities.OrderStatusOk, false).
		Order("shown_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
