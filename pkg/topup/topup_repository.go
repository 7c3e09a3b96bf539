package topup

import (
	"context"
	"errors"
	"fmt"

	"cafeteria-backend/domain"
	"cafeteria-backend/entities"
	"cafeteria-backend/pkg/credit"
	"cafeteria-backend/pkg/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TopupRepository interface {
		CreateTopup(ctx context.Context, topup *entities.Topup) error
		// Confirm transitions pending -> done and credits the user once.
		// Confirming an already-done topup is a no-op that returns the
		// user's current balance.
		Confirm(ctx context.Context, topupID uuid.UUID) (int, error)
	}

	topupRepository struct {
		db     *gorm.DB
		ledger credit.Ledger
	}
)

func NewTopupRepository(db *gorm.DB, ledger credit.Ledger) TopupRepository {
	return &topupRepository{db: db, ledger: ledger}
}

func (r *topupRepository) CreateTopup(ctx context.Context, topup *entities.Topup) error {
	return r.db.WithContext(ctx).Create(topup).Error
}

func (r *topupRepository) Confirm(ctx context.Context, topupID uuid.UUID) (int, error) {
	var balance int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var top entities.Topup
		if err := database.LockForUpdate(tx).Where("id = ?", topupID).First(&top).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTopupNotFound
			}
			return err
		}

		if top.Done {
			var u entities.User
			if err := tx.Where("id = ?", top.UserID).First(&u).Error; err != nil {
				return err
			}
			balance = u.Credit
			return nil
		}

		// the done flag and the balance credit commit together, so a crash
		// between them can never credit twice
		if err := tx.Model(&entities.Topup{}).
			Where("id = ?", top.ID).
			Update("done", true).Error; err != nil {
			return err
		}

		newBalance, err := r.ledger.Credit(
			tx, top.UserID, credit.TypeTopup, top.Amount,
			fmt.Sprintf("Topup %s", top.ID),
		)
		if err != nil {
			return err
		}
		balance = newBalance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}
