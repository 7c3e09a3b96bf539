package menu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cafeteria-backend/domain"
	"cafeteria-backend/entities"
	"cafeteria-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		GetMenu(ctx context.Context, date string) ([]*domain.MenuItemResponse, error)
		GetAdminMenu(ctx context.Context, date string) ([]*domain.AdminMenuItemResponse, error)
		GetFoods(ctx context.Context) ([]*domain.FoodResponse, error)
		AddFood(ctx context.Context, req domain.AddFoodRequest) (*domain.FoodResponse, error)
		SeedFoods(ctx context.Context) error
		AddMenuEntry(ctx context.Context, req domain.AddMenuEntryRequest) ([]*domain.AdminMenuItemResponse, error)
		UpdateMenuEntry(ctx context.Context, req domain.UpdateMenuEntryRequest) error
		DeleteMenuEntry(ctx context.Context, req domain.DeleteMenuEntryRequest) error
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
	}
}

func (s *menuService) GetMenu(ctx context.Context, date string) ([]*domain.MenuItemResponse, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	entries, err := s.menuRepository.GetMenuByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.MenuItemResponse, 0, len(entries))
	for _, e := range entries {
		if e.Food == nil {
			continue
		}
		result = append(result, &domain.MenuItemResponse{
			Name:      e.Food.Name,
			Price:     e.Food.Price,
			MaxCount:  e.MaxCount,
			Remaining: e.MaxCount - e.Ordered,
		})
	}
	return result, nil
}

func (s *menuService) GetAdminMenu(ctx context.Context, date string) ([]*domain.AdminMenuItemResponse, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	entries, err := s.menuRepository.GetMenuByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	return mapAdminMenu(entries), nil
}

func (s *menuService) GetFoods(ctx context.Context) ([]*domain.FoodResponse, error) {
	foods, err := s.menuRepository.GetFoods(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FoodResponse, 0, len(foods))
	for _, f := range foods {
		result = append(result, &domain.FoodResponse{
			ID:       f.ID.String(),
			Name:     f.Name,
			Price:    f.Price,
			ImageURL: f.ImageURL,
		})
	}
	return result, nil
}

func (s *menuService) AddFood(ctx context.Context, req domain.AddFoodRequest) (*domain.FoodResponse, error) {
	if req.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	foodID := uuid.New()

	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("food-%s", foodID.String()),
			req.Image,
			"foods",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	food := &entities.Food{
		ID:       foodID,
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: imageURL,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	if err := s.menuRepository.CreateFood(ctx, food); err != nil {
		return nil, err
	}

	return &domain.FoodResponse{
		ID:       food.ID.String(),
		Name:     food.Name,
		Price:    food.Price,
		ImageURL: food.ImageURL,
	}, nil
}

// SeedFoods inserts the starter catalog, skipping names that already exist.
func (s *menuService) SeedFoods(ctx context.Context) error {
	existing, err := s.menuRepository.GetFoods(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(existing))
	for _, f := range existing {
		known[f.Name] = true
	}

	foods := make([]*entities.Food, 0, len(seedCatalog))
	for _, f := range seedCatalog {
		if known[f.name] {
			continue
		}
		foods = append(foods, &entities.Food{
			ID:    uuid.New(),
			Name:  f.name,
			Price: f.price,
			Timestamp: entities.Timestamp{
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		})
	}
	if len(foods) == 0 {
		return nil
	}
	return s.menuRepository.SeedFoods(ctx, foods)
}

func (s *menuService) AddMenuEntry(ctx context.Context, req domain.AddMenuEntryRequest) ([]*domain.AdminMenuItemResponse, error) {
	day, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	food, err := s.menuRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}

	entry := &entities.MenuEntry{
		ID:       uuid.New(),
		Date:     day,
		FoodID:   food.ID,
		MaxCount: req.MaxCount,
		Ordered:  0,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if err := s.menuRepository.CreateMenuEntry(ctx, entry); err != nil {
		return nil, err
	}

	entries, err := s.menuRepository.GetMenuByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	return mapAdminMenu(entries), nil
}

func (s *menuService) UpdateMenuEntry(ctx context.Context, req domain.UpdateMenuEntryRequest) error {
	if err := s.menuRepository.UpdateMenuEntryMaxCount(ctx, req.ID, req.MaxCount); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuEntryNotFound
		}
		return err
	}
	return nil
}

// DeleteMenuEntry removes a day's menu row. Orders already placed against it
// are not touched; cleaning those up is left to the admin.
func (s *menuService) DeleteMenuEntry(ctx context.Context, req domain.DeleteMenuEntryRequest) error {
	return s.menuRepository.DeleteMenuEntry(ctx, req.ID)
}

func mapAdminMenu(entries []*entities.MenuEntry) []*domain.AdminMenuItemResponse {
	result := make([]*domain.AdminMenuItemResponse, 0, len(entries))
	for _, e := range entries {
		if e.Food == nil {
			continue
		}
		result = append(result, &domain.AdminMenuItemResponse{
			ID:       e.ID.String(),
			Name:     e.Food.Name,
			Price:    e.Food.Price,
			MaxCount: e.MaxCount,
			Ordered:  e.Ordered,
		})
	}
	return result
}

var seedCatalog = []struct {
	name  string
	price int
}{
	{"Polévka – Gulášová", 39},
	{"Polévka – Česnečka", 35},
	{"Polévka – Kuřecí vývar", 34},
	{"Polévka – Dršťková", 42},
	{"Polévka – Rajská", 33},
	{"Polévka – Zelná", 36},
	{"Polévka – Bramboračka", 37},
	{"Polévka – Hovězí vývar", 38},
	{"Polévka – Fazolová", 35},
	{"Polévka – Kulajda", 40},
	{"Hlavní – Smažený sýr s hranolky", 129},
	{"Hlavní – Kuřecí řízek s bramborem", 135},
	{"Hlavní – Vepřový řízek s kaší", 139},
	{"Hlavní – Svíčková na smetaně", 155},
	{"Hlavní – Hovězí guláš s knedlíkem", 145},
	{"Hlavní – Kuřecí steak s rýží", 142},
	{"Hlavní – Těstoviny s kuřecím masem", 129},
	{"Hlavní – Smažené kuřecí stripsy", 134},
	{"Hlavní – Segedínský guláš", 139},
	{"Hlavní – Pečené kuře s nádivkou", 148},
	{"Hlavní – Vepřová pečeně se zelím", 149},
	{"Hlavní – Hovězí na houbách", 152},
	{"Hlavní – Kuřecí na paprice", 138},
	{"Hlavní – Smažený květák", 119},
	{"Hlavní – Špagety Carbonara", 135},
	{"Hlavní – Lasagne", 145},
	{"Hlavní – Rizoto s kuřecím masem", 132},
	{"Hlavní – Vepřový plátek na hořčici", 141},
	{"Hlavní – Kuřecí burger s hranolky", 149},
	{"Hlavní – Hranolky se sýrovou omáčkou", 109},
}
