package topup

import (
	"context"
	"fmt"
	"testing"

	migration "cafeteria-backend/cmd/database/migrate"
	"cafeteria-backend/domain"
	"cafeteria-backend/entities"
	"cafeteria-backend/pkg/credit"
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

func userCredit(t *testing.T, db *gorm.DB, userID uuid.UUID) int {
	t.Helper()
	var u entities.User
	require.NoError(t, db.Where("id = ?", userID).First(&u).Error)
	return u.Credit
}

func TestConfirmCreditsExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopupRepository(db, credit.NewLedger())
	ctx := context.Background()

	u := seedUser(t, db, 10)
	top := &entities.Topup{ID: uuid.New(), UserID: u.ID, Amount: 50}
	require.NoError(t, repo.CreateTopup(ctx, top))

	balance, err := repo.Confirm(ctx, top.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, balance)
	assert.Equal(t, 60, userCredit(t, db, u.ID))

	// second confirm with the same id is a no-op
	balance, err = repo.Confirm(ctx, top.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, balance)
	assert.Equal(t, 60, userCredit(t, db, u.ID))

	var stored entities.Topup
	require.NoError(t, db.Where("id = ?", top.ID).First(&stored).Error)
	assert.True(t, stored.Done)
}

func TestConfirmUnknownTopup(t *testing.T) {
	db := newTestDB(t)
	repo := NewTopupRepository(db, credit.NewLedger())

	_, err := repo.Confirm(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrTopupNotFound)
}

func TestRequestTopupService(t *testing.T) {
	db := newTestDB(t)
	svc := NewTopupService(NewTopupRepository(db, credit.NewLedger()))
	ctx := context.Background()

	u := seedUser(t, db, 0)

	t.Run("creates a pending topup with a QR reference", func(t *testing.T) {
		resp, err := svc.RequestTopup(ctx, domain.RequestTopupRequest{Amount: 50}, u.ID.String())
		require.NoError(t, err)
		assert.NotEmpty(t, resp.PaymentID)
		assert.Contains(t, resp.QR, resp.PaymentID)

		status, err := svc.ConfirmTopup(ctx, resp.PaymentID)
		require.NoError(t, err)
		assert.True(t, status.Done)
		assert.Equal(t, 50, status.Credit)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := svc.RequestTopup(ctx, domain.RequestTopupRequest{Amount: 0}, u.ID.String())
		assert.ErrorIs(t, err, domain.ErrInvalidTopupAmount)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		_, err := svc.ConfirmTopup(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrParseUUID)
	})
}
