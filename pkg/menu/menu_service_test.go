package menu

import (
	"context"
	"fmt"
	"testing"
	"time"

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

func newTestService(t *testing.T) (MenuService, *gorm.DB) {
	db := newTestDB(t)
	return NewMenuService(NewMenuRepository(db), nil), db
}

func seedFood(t *testing.T, db *gorm.DB, name string, price int) *entities.Food {
	t.Helper()
	f := &entities.Food{ID: uuid.New(), Name: name, Price: price}
	require.NoError(t, db.Create(f).Error)
	return f
}

func TestGetMenuRemaining(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	day := domain.Today().AddDate(0, 0, 1)

	f := seedFood(t, db, "soup", 35)
	require.NoError(t, db.Create(&entities.MenuEntry{
		ID:       uuid.New(),
		Date:     day,
		FoodID:   f.ID,
		MaxCount: 10,
		Ordered:  3,
	}).Error)

	items, err := svc.GetMenu(ctx, domain.FormatDate(day))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "soup", items[0].Name)
	assert.Equal(t, 35, items[0].Price)
	assert.Equal(t, 10, items[0].MaxCount)
	assert.Equal(t, 7, items[0].Remaining)
}

func TestGetMenuRejectsBadDate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetMenu(context.Background(), "31-12-2026")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestAddFood(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.AddFood(ctx, domain.AddFoodRequest{Name: "lasagne", Price: 145})
	require.NoError(t, err)
	assert.Equal(t, "lasagne", resp.Name)
	assert.Equal(t, 145, resp.Price)

	_, err = svc.AddFood(ctx, domain.AddFoodRequest{Name: "free lunch", Price: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestSeedFoodsIsRerunnable(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedFoods(ctx))
	require.NoError(t, svc.SeedFoods(ctx))

	var count int64
	require.NoError(t, db.Model(&entities.Food{}).Count(&count).Error)
	assert.Equal(t, int64(len(seedCatalog)), count)
}

func TestMenuEntryAdminFlow(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	day := domain.Today().AddDate(0, 0, 1)

	f := seedFood(t, db, "steak", 140)

	items, err := svc.AddMenuEntry(ctx, domain.AddMenuEntryRequest{
		Date:     domain.FormatDate(day),
		FoodID:   f.ID.String(),
		MaxCount: 20,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "steak", items[0].Name)
	assert.Equal(t, 20, items[0].MaxCount)
	assert.Equal(t, 0, items[0].Ordered)

	err = svc.UpdateMenuEntry(ctx, domain.UpdateMenuEntryRequest{ID: items[0].ID, MaxCount: 15})
	require.NoError(t, err)

	updated, err := svc.GetAdminMenu(ctx, domain.FormatDate(day))
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, 15, updated[0].MaxCount)

	err = svc.UpdateMenuEntry(ctx, domain.UpdateMenuEntryRequest{ID: uuid.NewString(), MaxCount: 5})
	assert.ErrorIs(t, err, domain.ErrMenuEntryNotFound)

	require.NoError(t, svc.DeleteMenuEntry(ctx, domain.DeleteMenuEntryRequest{ID: items[0].ID}))

	empty, err := svc.GetAdminMenu(ctx, domain.FormatDate(day))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAddMenuEntryUnknownFood(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddMenuEntry(context.Background(), domain.AddMenuEntryRequest{
		Date:     domain.FormatDate(time.Now()),
		FoodID:   uuid.NewString(),
		MaxCount: 5,
	})
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}
