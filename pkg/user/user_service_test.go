package user

import (
	"context"
	"fmt"
	"testing"

	migration "cafeteria-backend/cmd/database/migrate"
	"cafeteria-backend/domain"
	"cafeteria-backend/pkg/database"
	"cafeteria-backend/pkg/jwt"

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

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	db := newTestDB(t)
	return NewUserService(NewUserRepository(db), jwt.NewJWTService()), db
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("creates a user with zero credit", func(t *testing.T) {
		resp, err := svc.Register(ctx, domain.RegisterRequest{Identifier: "novak", Password: "tajne"})
		require.NoError(t, err)
		assert.Equal(t, "novak", resp.Identifier)
		assert.Equal(t, domain.RoleUser, resp.Role)
		assert.Equal(t, 0, resp.Credit)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := svc.Register(ctx, domain.RegisterRequest{Identifier: "novak", Password: "jine"})
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})

	t.Run("rejects reserved identifiers", func(t *testing.T) {
		for _, name := range []string{"admin", "Admin", "manager", "kitchen"} {
			_, err := svc.Register(ctx, domain.RegisterRequest{Identifier: name, Password: "heslo"})
			assert.ErrorIs(t, err, domain.ErrReservedIdentifier)
		}
	})
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Identifier: "svoboda", Password: "heslo123"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, domain.LoginRequest{Identifier: "svoboda", Password: "heslo123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	// one uniform error for both cases, never revealing which field was wrong
	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{Identifier: "svoboda", Password: "spatne"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{Identifier: "neznamy", Password: "heslo123"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestMe(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Identifier: "dvorak", Password: "heslo"})
	require.NoError(t, err)

	var stored struct{ ID uuid.UUID }
	require.NoError(t, db.Table("users").Where("identifier = ?", "dvorak").Select("id").Scan(&stored).Error)

	resp, err := svc.Me(ctx, stored.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "dvorak", resp.Identifier)

	_, err = svc.Me(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
