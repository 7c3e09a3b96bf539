package credit

import (
	"fmt"
	"testing"

	migration "cafeteria-backend/cmd/database/migrate"
	"cafeteria-backend/domain"
	"cafeteria-backend/entities"
	"cafeteria-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, balance int) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:         uuid.New(),
		Identifier: fmt.Sprintf("user-%s", uuid.NewString()[:8]),
		Role:       domain.RoleUser,
		Credit:     balance,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestDebit(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger()
	u := seedUser(t, db, 100)

	err := db.Transaction(func(tx *gorm.DB) error {
		balance, err := ledger.Debit(tx, u.ID, 60, "order")
		require.NoError(t, err)
		assert.Equal(t, 40, balance)
		return nil
	})
	require.NoError(t, err)

	t.Run("never goes negative", func(t *testing.T) {
		err := db.Transaction(func(tx *gorm.DB) error {
			_, err := ledger.Debit(tx, u.ID, 41, "order")
			return err
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientCredit)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := db.Transaction(func(tx *gorm.DB) error {
			_, err := ledger.Debit(tx, uuid.New(), 1, "order")
			return err
		})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestCreditWritesAuditTrail(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger()
	u := seedUser(t, db, 0)

	err := db.Transaction(func(tx *gorm.DB) error {
		balance, err := ledger.Credit(tx, u.ID, TypeTopup, 50, "topup")
		require.NoError(t, err)
		assert.Equal(t, 50, balance)
		return nil
	})
	require.NoError(t, err)

	var rows []entities.CreditTransaction
	require.NoError(t, db.Where("user_id = ?", u.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 50, rows[0].Amount)
	assert.Equal(t, TypeTopup, rows[0].Type)
	assert.Equal(t, 50, rows[0].Balance)
}

func TestFailedTransactionLeavesNoTrace(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger()
	u := seedUser(t, db, 100)

	// the debit lands inside the transaction, then a later step fails;
	// the rollback must take the balance change and the audit row with it
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := ledger.Debit(tx, u.ID, 60, "order"); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	var stored entities.User
	require.NoError(t, db.Where("id = ?", u.ID).First(&stored).Error)
	assert.Equal(t, 100, stored.Credit)

	var count int64
	require.NoError(t, db.Model(&entities.CreditTransaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
