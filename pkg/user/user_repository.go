package user

import (
	"context"

	"cafeteria-backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error)
		CheckIdentifierExists(ctx context.Context, identifier string) (bool, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("identifier = ?", identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckIdentifierExists(ctx context.Context, identifier string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("identifier = ?", identifier).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
