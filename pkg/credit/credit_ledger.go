package credit

import (
	"errors"
	"time"

	"cafeteria-backend/domain"
	"cafeteria-backend/entities"
	"cafeteria-backend/pkg/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeOrder  = "Order"
	TypeRefund = "Refund"
	TypeTopup  = "Topup"
)

type (
	// Ledger mutates a single user's credit balance. Every mutation runs
	// against the caller's open transaction so the balance change commits
	// or rolls back together with the state transition it pays for.
	Ledger interface {
		Debit(tx *gorm.DB, userID uuid.UUID, amount int, description string) (int, error)
		Credit(tx *gorm.DB, userID uuid.UUID, txType string, amount int, description string) (int, error)
	}

	ledger struct{}
)

func NewLedger() Ledger {
	return &ledger{}
}

// Debit locks the user row, checks the balance and subtracts amount.
// The balance can never go negative.
func (l *ledger) Debit(tx *gorm.DB, userID uuid.UUID, amount int, description string) (int, error) {
	var user entities.User
	if err := database.LockForUpdate(tx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrUserNotFound
		}
		return 0, err
	}

	if user.Credit < amount {
		return 0, domain.ErrInsufficientCredit
	}

	newBalance := user.Credit - amount
	if err := tx.Model(&entities.User{}).Where("id = ?", userID).Update("credit", newBalance).Error; err != nil {
		return 0, err
	}

	if err := l.record(tx, userID, -amount, TypeOrder, description, newBalance); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Credit adds amount to the user's balance. Crediting cannot be
// oversubscribed, but it still locks the row so the recorded balance is exact.
func (l *ledger) Credit(tx *gorm.DB, userID uuid.UUID, txType string, amount int, description string) (int, error) {
	var user entities.User
	if err := database.LockForUpdate(tx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrUserNotFound
		}
		return 0, err
	}

	newBalance := user.Credit + amount
	if err := tx.Model(&entities.User{}).Where("id = ?", userID).Update("credit", newBalance).Error; err != nil {
		return 0, err
	}

	if err := l.record(tx, userID, amount, txType, description, newBalance); err != nil {
		return 0, err
	}
	return newBalance, nil
}

func (l *ledger) record(tx *gorm.DB, userID uuid.UUID, amount int, txType, description string, balance int) error {
	return tx.Create(&entities.CreditTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: description,
		Balance:     balance,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}).Error
}
