package menu

import (
	"context"
	"time"

	"cafeteria-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MenuRepository interface {
		GetMenuByDate(ctx context.Context, date time.Time) ([]*entities.MenuEntry, error)
		GetFoods(ctx context.Context) ([]*entities.Food, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		CreateFood(ctx context.Context, food *entities.Food) error
		SeedFoods(ctx context.Context, foods []*entities.Food) error
		CreateMenuEntry(ctx context.Context, entry *entities.MenuEntry) error
		UpdateMenuEntryMaxCount(ctx context.Context, id string, maxCount int) error
		DeleteMenuEntry(ctx context.Context, id string) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetMenuByDate(ctx context.Context, date time.Time) ([]*entities.MenuEntry, error) {
	var entries []*entities.MenuEntry
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("date = ?", date).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *menuRepository) GetFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *menuRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *menuRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *menuRepository) SeedFoods(ctx context.Context, foods []*entities.Food) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&foods).Error
}

func (r *menuRepository) CreateMenuEntry(ctx context.Context, entry *entities.MenuEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *menuRepository) UpdateMenuEntryMaxCount(ctx context.Context, id string, maxCount int) error {
	res := r.db.WithContext(ctx).Model(&entities.MenuEntry{}).
		Where("id = ?", id).
		Update("max_count", maxCount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepository) DeleteMenuEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MenuEntry{}).Error
}
